package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := loadAppConfigFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loading missing config failed: %v", err)
	}
	if cfg.Engine.URL != DefaultEngineURL {
		t.Errorf("engine url = %s, expected default %s", cfg.Engine.URL, DefaultEngineURL)
	}
	if cfg.Engine.AgentRef != DefaultAgentRef {
		t.Errorf("agent ref = %s, expected default %s", cfg.Engine.AgentRef, DefaultAgentRef)
	}
	if cfg.Providers == nil {
		t.Error("providers map not initialized")
	}
}

func TestAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &AppConfig{
		General: GeneralConfig{DefaultProvider: "gemini", DefaultModel: "gemini-1.5-flash"},
		Engine: EngineConfig{
			URL:      "http://agents.internal:8000",
			AgentRef: "3854843786517544960",
			UserID:   "user-fixed",
		},
		Providers: map[string]ProviderConfig{
			"gemini": {"api_key": "secret"},
		},
	}
	if err := saveAppConfigTo(in, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := loadAppConfigFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out.General.DefaultProvider != "gemini" || out.General.DefaultModel != "gemini-1.5-flash" {
		t.Errorf("general = %+v", out.General)
	}
	if out.Engine.URL != "http://agents.internal:8000" {
		t.Errorf("engine url = %s", out.Engine.URL)
	}
	if out.Engine.AgentRef != "3854843786517544960" {
		t.Errorf("agent ref = %s", out.Engine.AgentRef)
	}
	if out.Engine.UserID != "user-fixed" {
		t.Errorf("user id = %s", out.Engine.UserID)
	}
	if out.Providers["gemini"]["api_key"] != "secret" {
		t.Errorf("providers = %+v", out.Providers)
	}
}

func TestEngineEnvOverrides(t *testing.T) {
	t.Setenv("HELPLINE_ENGINE_URL", "http://override:9000")
	t.Setenv("HELPLINE_AGENT_REF", "override_agent")

	cfg, err := loadAppConfigFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Engine.URL != "http://override:9000" {
		t.Errorf("engine url = %s, expected override", cfg.Engine.URL)
	}
	if cfg.Engine.AgentRef != "override_agent" {
		t.Errorf("agent ref = %s, expected override", cfg.Engine.AgentRef)
	}
}

func TestSetupProviderEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	os.Unsetenv("GOOGLE_API_KEY")

	SetupProviderEnv("gemini", ProviderConfig{"api_key": "from-config"})
	if got := os.Getenv("GOOGLE_API_KEY"); got != "from-config" {
		t.Errorf("GOOGLE_API_KEY = %s", got)
	}

	// An already-set variable wins over the stored key.
	t.Setenv("GOOGLE_API_KEY", "from-env")
	SetupProviderEnv("gemini", ProviderConfig{"api_key": "from-config"})
	if got := os.Getenv("GOOGLE_API_KEY"); got != "from-env" {
		t.Errorf("GOOGLE_API_KEY = %s, expected env value to win", got)
	}
}
