package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"skylight/apod"
)

// TomlFeed represents feed source configuration from TOML
type TomlFeed struct {
	RemoteURL      string   `toml:"remote_url,omitempty"`
	FallbackPaths  []string `toml:"fallback_paths,omitempty"`
	TimeoutSeconds int      `toml:"timeout_seconds,omitempty"`
	AutoLoad       bool     `toml:"auto_load,omitempty"`
}

// TomlArchive represents archive configuration from TOML
type TomlArchive struct {
	Enabled       bool `toml:"enabled,omitempty"`
	RetentionDays int  `toml:"retention_days,omitempty"`
}

// TomlConfig represents the top-level configuration
type TomlConfig struct {
	Feed    TomlFeed    `toml:"feed"`
	Archive TomlArchive `toml:"archive"`
}

// DefaultConfig targets the public APOD API and the conventional local
// fallback paths the static page ships with.
func DefaultConfig() *TomlConfig {
	return &TomlConfig{
		Feed: TomlFeed{
			RemoteURL:      apod.DefaultEndpoint,
			FallbackPaths:  []string{"data/apod.json", "apod.json", "static/apod.json"},
			TimeoutSeconds: 10,
			AutoLoad:       true,
		},
		Archive: TomlArchive{
			Enabled:       true,
			RetentionDays: 365,
		},
	}
}

// LoadConfig reads a TOML config file. An empty path yields the defaults.
func LoadConfig(path string) (*TomlConfig, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Feed.TimeoutSeconds <= 0 {
		config.Feed.TimeoutSeconds = 10
	}
	if config.Archive.RetentionDays <= 0 {
		config.Archive.RetentionDays = 365
	}

	return config, nil
}
