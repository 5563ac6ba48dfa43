package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.Server.BaseURL = "" }},
		{"non-http URL", func(c *Config) { c.Server.BaseURL = "ftp://example.com" }},
		{"URL without host", func(c *Config) { c.Server.BaseURL = "http://" }},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }},
		{"empty storage path", func(c *Config) { c.Storage.Path = "" }},
		{"zero hide delay", func(c *Config) { c.UI.StatusHideDelay = 0 }},
		{"nil server section", func(c *Config) { c.Server = nil }},
		{"nil storage section", func(c *Config) { c.Storage = nil }},
		{"nil ui section", func(c *Config) { c.UI = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  base_url: https://activities.mergington.edu
storage:
  path: /tmp/rollcall-test.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://activities.mergington.edu", cfg.Server.BaseURL)
	assert.Equal(t, "/tmp/rollcall-test.db", cfg.Storage.Path)
	// Values the file does not mention keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 5*time.Second, cfg.UI.StatusHideDelay)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  base_url: http://from-file:8000\n"), 0o600))

	t.Setenv("ROLLCALL_SERVER_URL", "http://from-env:9000")
	t.Setenv("ROLLCALL_STATUS_HIDE_DELAY", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9000", cfg.Server.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.UI.StatusHideDelay)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.BaseURL, cfg.Server.BaseURL)
}
