package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"skylight/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")

	assert.NoError(t, err)
	assert.NotEmpty(t, cfg.Feed.RemoteURL)
	assert.NotEmpty(t, cfg.Feed.FallbackPaths)
	assert.True(t, cfg.Feed.AutoLoad)
	assert.Equal(t, 10, cfg.Feed.TimeoutSeconds)
	assert.True(t, cfg.Archive.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skylight.toml")
	err := os.WriteFile(path, []byte(`
[feed]
remote_url = "https://example.org/apod.json"
fallback_paths = ["one.json", "two.json"]
timeout_seconds = 5
auto_load = false

[archive]
enabled = false
retention_days = 30
`), 0o644)
	assert.NoError(t, err)

	cfg, err := config.LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "https://example.org/apod.json", cfg.Feed.RemoteURL)
	assert.Equal(t, []string{"one.json", "two.json"}, cfg.Feed.FallbackPaths)
	assert.Equal(t, 5, cfg.Feed.TimeoutSeconds)
	assert.False(t, cfg.Feed.AutoLoad)
	assert.False(t, cfg.Archive.Enabled)
	assert.Equal(t, 30, cfg.Archive.RetentionDays)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skylight.toml")
	err := os.WriteFile(path, []byte(`
[feed]
timeout_seconds = -1
`), 0o644)
	assert.NoError(t, err)

	cfg, err := config.LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.Feed.TimeoutSeconds)
}
