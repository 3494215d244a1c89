package helpline

import (
	"context"
	"flag"
	"fmt"

	"github.com/pradella/helpline/pkg/launcher"
)

func handleWebCommand(args []string) error {
	appCfg := loadConfigOrWarn()

	webCmd := flag.NewFlagSet("web", flag.ExitOnError)
	var opts engineOptions
	registerEngineFlags(webCmd, appCfg, &opts)
	port := webCmd.Int("port", 8080, "Port for the web server")
	if err := webCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	eng, err := buildEngine(context.Background(), appCfg, &opts)
	if err != nil {
		return err
	}

	return launcher.RunWeb(&launcher.WebConfig{
		Engine: eng,
		Port:   *port,
	})
}
