package cmd

import (
	"time"

	"github.com/samber/lo"

	"skylight/apod"
	"skylight/config"
	"skylight/feed"
)

// buildSources assembles the fallback chain from config: the remote source
// first, then each local path in order.
func buildSources(cfg *config.TomlConfig) []feed.Source {
	timeout := time.Duration(cfg.Feed.TimeoutSeconds) * time.Second

	sources := []feed.Source{
		feed.NewRemoteSource(apod.NewClient(cfg.Feed.RemoteURL, timeout)),
	}

	return append(sources, lo.Map(cfg.Feed.FallbackPaths, func(path string, _ int) feed.Source {
		return feed.NewFileSource(path)
	})...)
}

func buildLoader(cfg *config.TomlConfig) *feed.Loader {
	return feed.NewLoader(buildSources(cfg)...)
}
