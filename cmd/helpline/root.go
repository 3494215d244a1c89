package helpline

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the CLI. Running with no arguments
// starts the chat.
func Execute() error {
	if len(os.Args) < 2 {
		return handleChatCommand(nil)
	}

	command := os.Args[1]
	switch command {
	case "-h", "--help":
		printUsage()
		return nil
	case "chat":
		return handleChatCommand(os.Args[2:])
	case "web":
		return handleWebCommand(os.Args[2:])
	case "session":
		return handleSessionCommand(os.Args[2:])
	case "setup":
		return handleSetupCommand()
	case "config":
		return handleConfigCommand(os.Args[2:])
	case "version", "--version", "-v":
		printVersion()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("usage: helpline [-h] {chat,web,session,setup,config,version} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {chat,web,session,setup,config,version}")
	fmt.Println("                        Helpline CLI commands")
	fmt.Println("    chat                Talk to the support agent in the terminal (default)")
	fmt.Println("    web                 Serve the browser chat interface")
	fmt.Println("    session             Manage agent sessions")
	fmt.Println("    setup               Run interactive setup")
	fmt.Println("    config              Manage configuration")
	fmt.Println("    version             Show version information")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}
