package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is missing or partial.
const (
	DefaultEngineURL = "http://localhost:8000"
	DefaultAgentRef  = "fraud_support_agent"
)

type AppConfig struct {
	General   GeneralConfig             `yaml:"general"`
	Engine    EngineConfig              `yaml:"engine"`
	Providers map[string]ProviderConfig `yaml:"providers"`
}

type GeneralConfig struct {
	DefaultProvider string `yaml:"default_provider"`
	DefaultModel    string `yaml:"default_model"`
}

// EngineConfig points the client at a hosted agent deployment.
type EngineConfig struct {
	// URL of the agent API server.
	URL string `yaml:"url"`
	// AgentRef is the opaque reference of the deployed agent.
	AgentRef string `yaml:"agent_ref"`
	// UserID pins the user identity; normally empty so one is generated.
	UserID string `yaml:"user_id,omitempty"`
}

type ProviderConfig map[string]string

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "helpline"), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func LoadAppConfig() (*AppConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return loadAppConfigFrom(path)
}

func loadAppConfigFrom(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Providers: make(map[string]ProviderConfig),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills unset fields and lets HELPLINE_* env vars override the
// engine block.
func (cfg *AppConfig) applyDefaults() {
	if cfg.Engine.URL == "" {
		cfg.Engine.URL = DefaultEngineURL
	}
	if cfg.Engine.AgentRef == "" {
		cfg.Engine.AgentRef = DefaultAgentRef
	}
	if v := os.Getenv("HELPLINE_ENGINE_URL"); v != "" {
		cfg.Engine.URL = v
	}
	if v := os.Getenv("HELPLINE_AGENT_REF"); v != "" {
		cfg.Engine.AgentRef = v
	}
}

func SaveAppConfig(cfg *AppConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return saveAppConfigTo(cfg, path)
}

func saveAppConfigTo(cfg *AppConfig, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
