package helpline

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/pradella/helpline/pkg/config"
	"github.com/pradella/helpline/pkg/engine"
	"github.com/pradella/helpline/pkg/launcher"
	"github.com/pradella/helpline/pkg/provider"
)

const chatTitle = "Fraud Support Helpline"

// engineOptions collects the flags shared by the chat, web and session
// commands.
type engineOptions struct {
	engineURL    string
	agentRef     string
	local        bool
	demo         bool
	providerName string
	modelName    string
}

func registerEngineFlags(fs *flag.FlagSet, appCfg *config.AppConfig, opts *engineOptions) {
	fs.StringVar(&opts.engineURL, "engine", appCfg.Engine.URL, "Agent API server URL")
	fs.StringVar(&opts.agentRef, "agent", appCfg.Engine.AgentRef, "Deployed agent reference")
	fs.BoolVar(&opts.local, "local", false, "Run the agent in-process instead of calling the remote service")
	fs.BoolVar(&opts.demo, "demo", false, "Use a scripted agent, no network or API key needed")
	fs.StringVar(&opts.providerName, "provider", appCfg.General.DefaultProvider, "LLM provider for -local (gemini, openai, openrouter, ollama)")
	fs.StringVar(&opts.modelName, "model", appCfg.General.DefaultModel, "Model name for -local")
}

// buildEngine picks the conversation backend: scripted for -demo, in-process
// for -local, remote otherwise.
func buildEngine(ctx context.Context, appCfg *config.AppConfig, opts *engineOptions) (engine.Engine, error) {
	if opts.demo {
		return engine.NewScripted(), nil
	}

	if opts.local {
		providerName := opts.providerName
		if providerName == "" {
			providerName = "gemini"
		}
		llm, err := provider.GetProvider(ctx, providerName, opts.modelName, appCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider: %w", err)
		}
		return engine.NewLocal(engine.LocalConfig{
			AppName: opts.agentRef,
			Model:   llm,
		})
	}

	return engine.NewRemote(opts.engineURL, opts.agentRef), nil
}

func loadConfigOrWarn() *config.AppConfig {
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to load config: %v\n", err)
		appCfg = &config.AppConfig{Providers: make(map[string]config.ProviderConfig)}
	}
	config.SetupAllProviderEnv(appCfg)
	return appCfg
}

func handleChatCommand(args []string) error {
	appCfg := loadConfigOrWarn()

	chatCmd := flag.NewFlagSet("chat", flag.ExitOnError)
	var opts engineOptions
	registerEngineFlags(chatCmd, appCfg, &opts)
	userID := chatCmd.String("user", appCfg.Engine.UserID, "Pin the user identity instead of generating one")
	plain := chatCmd.Bool("plain", false, "Line-oriented output instead of the full-screen UI")
	if err := chatCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	ctx := context.Background()
	eng, err := buildEngine(ctx, appCfg, &opts)
	if err != nil {
		return err
	}

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return launcher.RunConsole(ctx, &launcher.ConsoleConfig{
			Engine: eng,
			UserID: *userID,
			Title:  chatTitle,
		})
	}

	return launcher.RunTUI(&launcher.TUIConfig{
		Engine: eng,
		UserID: *userID,
		Title:  chatTitle,
	})
}
