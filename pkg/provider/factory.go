package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/adk/model"

	"github.com/pradella/helpline/pkg/config"
	"github.com/pradella/helpline/pkg/provider/google"
	openai_provider "github.com/pradella/helpline/pkg/provider/openai"
)

// ProviderDisplayNames maps provider IDs to their display names, used by
// both the setup form and the CLI.
var ProviderDisplayNames = map[string]string{
	"gemini":     "Google GenAI",
	"openai":     "OpenAI",
	"openrouter": "Openrouter",
	"ollama":     "Ollama",
}

// GetProviderDisplayName returns the display name for a provider ID, or the
// ID itself when unknown.
func GetProviderDisplayName(providerID string) string {
	if name, ok := ProviderDisplayNames[providerID]; ok {
		return name
	}
	return providerID
}

// GetProviderIDs returns all known provider IDs.
func GetProviderIDs() []string {
	ids := make([]string, 0, len(ProviderDisplayNames))
	for id := range ProviderDisplayNames {
		ids = append(ids, id)
	}
	return ids
}

// GetProvider builds an LLM for the named provider. API keys resolve from
// the environment first, then the stored config.
func GetProvider(ctx context.Context, name string, modelName string, cfg *config.AppConfig) (model.LLM, error) {
	switch name {
	case "google_genai", "gemini":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" && cfg != nil {
			apiKey = cfg.Providers["gemini"]["api_key"]
		}
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY not set")
		}
		if modelName == "" {
			modelName = "gemini-1.5-flash"
		}
		return google.NewProvider(ctx, modelName, apiKey)

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" && cfg != nil {
			apiKey = cfg.Providers["openai"]["api_key"]
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		if modelName == "" {
			modelName = "gpt-4"
		}
		client := openai.NewClient(apiKey)
		return openai_provider.NewProvider(client, modelName), nil

	case "openrouter":
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" && cfg != nil {
			apiKey = cfg.Providers["openrouter"]["api_key"]
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
		}
		if modelName == "" {
			return nil, fmt.Errorf("model name required for openrouter")
		}

		clientCfg := openai.DefaultConfig(apiKey)
		clientCfg.BaseURL = "https://openrouter.ai/api/v1"
		client := openai.NewClientWithConfig(clientCfg)
		return openai_provider.NewProvider(client, modelName), nil

	case "ollama":
		baseURL := "http://localhost:11434"
		if cfg != nil && cfg.Providers["ollama"] != nil {
			if val, ok := cfg.Providers["ollama"]["base_url"]; ok && val != "" {
				baseURL = val
			}
		}
		if modelName == "" {
			return nil, fmt.Errorf("model name required for ollama")
		}

		// Ollama's OpenAI-compatible endpoint lives under /v1 and wants a
		// non-empty key it never checks.
		clientCfg := openai.DefaultConfig("ollama")
		clientCfg.BaseURL = fmt.Sprintf("%s/v1", baseURL)
		client := openai.NewClientWithConfig(clientCfg)
		return openai_provider.NewProvider(client, modelName), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
}
