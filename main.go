package main

import (
	"fmt"
	"os"

	"github.com/pradella/helpline/cmd/helpline"
)

func main() {
	if err := helpline.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
