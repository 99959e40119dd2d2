// Package config centralizes client configuration. There is exactly one
// backend base URL, shared by every client; the web predecessor had it
// configured in one place and hard-coded in another, which this layout
// deliberately rules out.
//
// Sources, highest priority first:
//  1. Environment variables (FLOWTRACE_BASE_URL, FLOWTRACE_SESSION_DIR, PORT)
//  2. A .env file in the working directory, if present
//  3. The YAML config file (default ~/.config/flowtrace/config.yaml)
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	// API holds settings for the remote backend connection.
	API APIConfig `yaml:"api"`

	// Session holds local session persistence settings.
	Session SessionConfig `yaml:"session"`

	// DevServer holds settings for the local stub backend.
	DevServer DevServerConfig `yaml:"devserver"`
}

// APIConfig describes the remote backend connection.
type APIConfig struct {
	// BaseURL is the single backend origin used by all clients.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each HTTP request. 0 means no timeout,
	// matching the web client's behavior of relying on the transport.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// SessionConfig describes local session persistence.
type SessionConfig struct {
	// Dir is where the durable session file lives.
	Dir string `yaml:"dir"`
}

// DevServerConfig configures the local stub backend.
type DevServerConfig struct {
	Port         int    `yaml:"port"`
	BindAddress  string `yaml:"bind_address"`
	EnableCORS   bool   `yaml:"enable_cors"`
	BodyLimit    string `yaml:"body_limit"`
	SeedEmail    string `yaml:"seed_email"`
	SeedPassword string `yaml:"seed_password"`
	SeedFullName string `yaml:"seed_full_name"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8089",
			TimeoutSeconds: 0,
		},
		Session: SessionConfig{
			Dir: defaultConfigDir(),
		},
		DevServer: DevServerConfig{
			Port:         8089,
			BindAddress:  "127.0.0.1",
			EnableCORS:   true,
			BodyLimit:    "512M",
			SeedEmail:    "demo@flowtrace.io",
			SeedPassword: "demo-password",
			SeedFullName: "Demo User",
		},
	}
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowtrace"
	}
	return filepath.Join(home, ".config", "flowtrace")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(defaultConfigDir(), "config.yaml")
}

// Load reads configuration from configPath (DefaultPath when empty),
// creating a default file on first run, then applies .env and
// environment overrides.
func Load(configPath string) (*Config, error) {
	// Best-effort; a missing .env is not an error.
	godotenv.Load()

	if configPath == "" {
		configPath = DefaultPath()
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.Save(configPath); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := []byte("# Flowtrace client configuration\n# Auto-generated on first run\n\n")
	if err := os.WriteFile(configPath, append(header, out...), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() {
	if base := os.Getenv("FLOWTRACE_BASE_URL"); base != "" {
		c.API.BaseURL = base
	}
	if dir := os.Getenv("FLOWTRACE_SESSION_DIR"); dir != "" {
		c.Session.Dir = dir
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.DevServer.Port = p
		}
	}
}

// EnsureDirectories creates the directories the client writes to.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Session.Dir, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", c.Session.Dir, err)
	}
	return nil
}

// DevServerAddr returns the stub backend's bind address.
func (c *Config) DevServerAddr() string {
	return fmt.Sprintf("%s:%d", c.DevServer.BindAddress, c.DevServer.Port)
}
