package helpline

import (
	"context"
	"flag"
	"fmt"

	"github.com/pradella/helpline/pkg/chat"
)

func handleSessionCommand(args []string) error {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		printSessionUsage()
		return nil
	}

	switch args[0] {
	case "create":
		return handleSessionCreate(args[1:])
	default:
		printSessionUsage()
		return fmt.Errorf("unknown session subcommand: %s", args[0])
	}
}

func printSessionUsage() {
	fmt.Println("usage: helpline session [-h] {create} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {create}")
	fmt.Println("                        Session management commands")
	fmt.Println("    create              Create a session against the agent service and print it")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}

func handleSessionCreate(args []string) error {
	appCfg := loadConfigOrWarn()

	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	var opts engineOptions
	registerEngineFlags(createCmd, appCfg, &opts)
	userID := createCmd.String("user", appCfg.Engine.UserID, "Pin the user identity instead of generating one")
	if err := createCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	ctx := context.Background()
	eng, err := buildEngine(ctx, appCfg, &opts)
	if err != nil {
		return err
	}

	var ctrlOpts []chat.Option
	if *userID != "" {
		ctrlOpts = append(ctrlOpts, chat.WithUserID(*userID))
	}
	ctrl := chat.New(eng, ctrlOpts...)

	sess, err := ctrl.CreateSession(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("id:             %s\n", sess.ID)
	fmt.Printf("user:           %s\n", sess.UserID)
	fmt.Printf("app:            %s\n", sess.AppName)
	fmt.Printf("lastUpdateTime: %f\n", sess.LastUpdateTime)
	return nil
}
