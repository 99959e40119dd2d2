package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL == "" {
		t.Error("default base URL should not be empty")
	}
	if cfg.API.TimeoutSeconds != 0 {
		t.Errorf("default timeout should be 0 (no timeout), got %d", cfg.API.TimeoutSeconds)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default config file to be written: %v", err)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("api:\n  base_url: https://api.flowtrace.example\n  timeout_seconds: 15\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "https://api.flowtrace.example" {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("timeout = %d, want 15", cfg.API.TimeoutSeconds)
	}
	// Untouched sections keep their defaults.
	if cfg.DevServer.Port != 8089 {
		t.Errorf("devserver port = %d, want default 8089", cfg.DevServer.Port)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("FLOWTRACE_BASE_URL", "https://env.flowtrace.example")
	t.Setenv("FLOWTRACE_SESSION_DIR", "/tmp/flowtrace-env")
	t.Setenv("PORT", "9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "https://env.flowtrace.example" {
		t.Errorf("env override missed for base URL: %q", cfg.API.BaseURL)
	}
	if cfg.Session.Dir != "/tmp/flowtrace-env" {
		t.Errorf("env override missed for session dir: %q", cfg.Session.Dir)
	}
	if cfg.DevServer.Port != 9999 {
		t.Errorf("env override missed for port: %d", cfg.DevServer.Port)
	}
}

func TestEnsureDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.Dir = filepath.Join(t.TempDir(), "nested", "sessions")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if _, err := os.Stat(cfg.Session.Dir); err != nil {
		t.Errorf("session dir not created: %v", err)
	}
}
