package helpline

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/huh"

	"github.com/pradella/helpline/pkg/config"
	"github.com/pradella/helpline/pkg/provider"
	"github.com/pradella/helpline/pkg/provider/google"
	openai_provider "github.com/pradella/helpline/pkg/provider/openai"
	"github.com/pradella/helpline/pkg/ui"
)

func handleSetupCommand() error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return err
	}

	// Engine block: where the hosted agent lives.
	engineURL := cfg.Engine.URL
	agentRef := cfg.Engine.AgentRef
	configureProvider := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Agent API server URL").
				Value(&engineURL),
			huh.NewInput().
				Title("Deployed agent reference").
				Value(&agentRef),
			huh.NewConfirm().
				Title("Configure an LLM provider for local mode?").
				Value(&configureProvider),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	cfg.Engine.URL = engineURL
	cfg.Engine.AgentRef = agentRef

	if configureProvider {
		if err := runProviderSetup(cfg); err != nil {
			return err
		}
	}

	if err := config.SaveAppConfig(cfg); err != nil {
		fmt.Printf("Error saving config: %v\n", err)
		return err
	}

	fmt.Println("Configuration saved successfully!")
	return nil
}

func runProviderSetup(cfg *config.AppConfig) error {
	ids := provider.GetProviderIDs()
	sort.Strings(ids)

	selected, err := ui.ReadSelection(ids, "Select a provider to configure")
	if err != nil {
		return err
	}
	fmt.Printf("Configuring %s...\n", provider.GetProviderDisplayName(selected))

	if cfg.Providers[selected] == nil {
		cfg.Providers[selected] = make(config.ProviderConfig)
	}
	pCfg := cfg.Providers[selected]

	switch selected {
	case "gemini":
		if err := promptSecret(pCfg, "api_key", "Enter Google API Key"); err != nil {
			return err
		}
	case "openai":
		if err := promptSecret(pCfg, "api_key", "Enter OpenAI API Key"); err != nil {
			return err
		}
	case "openrouter":
		if err := promptSecret(pCfg, "api_key", "Enter OpenRouter API Key"); err != nil {
			return err
		}
	case "ollama":
		base, err := ui.ReadInput("Ollama base URL", "http://localhost:11434")
		if err != nil {
			return err
		}
		pCfg["base_url"] = base
	}

	cfg.General.DefaultProvider = selected
	fmt.Printf("Set %s as default provider.\n", selected)

	// Offer a model picker where the provider can enumerate models.
	models := fetchModels(selected, pCfg["api_key"])
	if len(models) > 0 {
		model, err := ui.ReadSelection(models, "Select a default model")
		if err != nil {
			return err
		}
		cfg.General.DefaultModel = model
	} else {
		model, err := ui.ReadInput("Default model", cfg.General.DefaultModel)
		if err != nil {
			return err
		}
		cfg.General.DefaultModel = model
	}
	return nil
}

func promptSecret(pCfg config.ProviderConfig, key, title string) error {
	value := pCfg[key]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if value != "" {
		pCfg[key] = value
	}
	return nil
}

func fetchModels(providerName, apiKey string) []string {
	ctx := context.Background()
	var models []string
	var err error

	switch providerName {
	case "gemini":
		models, err = google.ListModels(ctx, apiKey)
	case "openai":
		models, err = openai_provider.ListModels(ctx, apiKey)
	default:
		return nil
	}
	if err != nil {
		fmt.Printf("Warning: Failed to fetch models: %v\n", err)
		return nil
	}
	return models
}
