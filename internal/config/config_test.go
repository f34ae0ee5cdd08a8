package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "deepseek-chat" {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("expected file backend, got %q", cfg.Store.Backend)
	}
	if cfg.Memory.DefaultRetention != 5 {
		t.Errorf("expected retention 5, got %d", cfg.Memory.DefaultRetention)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEVIATHAN_MODEL", "gpt-4o")
	t.Setenv("LEVIATHAN_STORE_BACKEND", "sqlite")
	t.Setenv("LEVIATHAN_MEMORY_DEFAULT_RETENTION", "9")
	t.Setenv("LEVIATHAN_API_KEY", "sk-from-env")
	t.Setenv("LEVIATHAN_API_BASE_URL", "https://llm.example.com/v1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("expected env model, got %q", cfg.Model)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("expected env backend, got %q", cfg.Store.Backend)
	}
	if cfg.Memory.DefaultRetention != 9 {
		t.Errorf("expected env retention, got %d", cfg.Memory.DefaultRetention)
	}
	if cfg.API.Key != "sk-from-env" {
		t.Errorf("expected env api key, got %q", cfg.API.Key)
	}
	if cfg.API.BaseURL != "https://llm.example.com/v1" {
		t.Errorf("expected env base url, got %q", cfg.API.BaseURL)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
model: qwen-max
store:
  backend: sqlite
  path: /tmp/mind.db
memory:
  conversation_retention: 3
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "qwen-max" {
		t.Errorf("expected file model, got %q", cfg.Model)
	}
	if cfg.Store.Path != "/tmp/mind.db" {
		t.Errorf("expected file store path, got %q", cfg.Store.Path)
	}
	if cfg.Memory.ConversationRetention != 3 {
		t.Errorf("expected conversation retention 3, got %d", cfg.Memory.ConversationRetention)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected json format, got %q", cfg.Log.Format)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
