// Package config holds client settings: where the activity service lives,
// where the session token is persisted, and the status message hide delay.
// Precedence: defaults, then yaml file, then environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  *ServerConfig  `yaml:"server"`
	Storage *StorageConfig `yaml:"storage"`
	UI      *UIConfig      `yaml:"ui"`
}

type ServerConfig struct {
	BaseURL string        `yaml:"base_url" env:"ROLLCALL_SERVER_URL"`
	Timeout time.Duration `yaml:"timeout" env:"ROLLCALL_SERVER_TIMEOUT"`
}

type StorageConfig struct {
	// Path of the sqlite file holding the persisted session token.
	Path string `yaml:"path" env:"ROLLCALL_STORAGE_PATH"`
}

type UIConfig struct {
	// How long a status message stays visible unless superseded.
	StatusHideDelay time.Duration `yaml:"status_hide_delay" env:"ROLLCALL_STATUS_HIDE_DELAY"`
}

// DefaultConfig returns settings that work against a locally running
// service.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		Storage: &StorageConfig{
			Path: "./rollcall.db",
		},
		UI: &UIConfig{
			StatusHideDelay: 5 * time.Second,
		},
	}
}

// Load builds the effective configuration: defaults, overlaid with the yaml
// file at path (when path is non-empty), overlaid with environment
// variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would fail at first use.
func (c *Config) Validate() error {
	if c.Server == nil {
		return fmt.Errorf("server configuration is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server base URL cannot be empty")
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server base URL must be a valid http(s) URL, got %q", c.Server.BaseURL)
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("server timeout cannot be negative")
	}

	if c.Storage == nil {
		return fmt.Errorf("storage configuration is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path cannot be empty")
	}

	if c.UI == nil {
		return fmt.Errorf("ui configuration is required")
	}
	if c.UI.StatusHideDelay <= 0 {
		return fmt.Errorf("status hide delay must be positive")
	}

	return nil
}
