package helpline

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Version information
const (
	Version = "0.3.0"
	Name    = "Helpline Fraud Support Client"
	GitHub  = "https://github.com/pradella/helpline"
)

var asciiLogo = `
    __  __     __      ___
   / / / /__  / /___  / (_)___  ___
  / /_/ / _ \/ / __ \/ / / __ \/ _ \
 / __  /  __/ / /_/ / / / / / /  __/
/_/ /_/\___/_/ .___/_/_/_/ /_/\___/
            /_/
`

func printVersion() {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Underline(true)

	fmt.Println(logoStyle.Render(asciiLogo))
	fmt.Println()

	fmt.Println(labelStyle.Render(Name))
	fmt.Printf("%s %s\n", labelStyle.Render("Version:"), valueStyle.Render(Version))
	fmt.Printf("%s %s\n", labelStyle.Render("GitHub:"), linkStyle.Render(GitHub))
	fmt.Println()
}
