package config

import "os"

// ProviderEnvMapping maps provider config keys to environment variable names.
// Single source of truth for how stored keys reach the provider clients.
var ProviderEnvMapping = map[string]map[string]string{
	"gemini": {
		"api_key": "GOOGLE_API_KEY",
	},
	"openai": {
		"api_key": "OPENAI_API_KEY",
	},
	"openrouter": {
		"api_key": "OPENROUTER_API_KEY",
	},
}

// SetupProviderEnv exports the stored keys of one provider as env vars. Vars
// already set in the environment win.
func SetupProviderEnv(providerName string, providerCfg ProviderConfig) {
	if mapping, ok := ProviderEnvMapping[providerName]; ok {
		for cfgKey, envKey := range mapping {
			if val, ok := providerCfg[cfgKey]; ok && val != "" {
				if os.Getenv(envKey) == "" {
					os.Setenv(envKey, val)
				}
			}
		}
	}
}

// SetupAllProviderEnv exports the stored keys of every configured provider.
func SetupAllProviderEnv(appCfg *AppConfig) {
	if appCfg == nil || appCfg.Providers == nil {
		return
	}
	for providerName, providerCfg := range appCfg.Providers {
		SetupProviderEnv(providerName, providerCfg)
	}
}
