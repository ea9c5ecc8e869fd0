package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cqroot/prompt"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"skylight/config"
	"skylight/feed"
)

func probeCmd() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Test a single feed source",
		Description: `Interactively pick one configured feed source and fetch it outside
the fallback chain. Useful for checking whether the remote API or a
specific fallback file is healthy.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				EnvVars: []string{"SKYLIGHT_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			sources := buildSources(cfg)
			names := lo.Map(sources, func(source feed.Source, _ int) string {
				return source.Name()
			})

			choice, err := prompt.New().Ask("Source:").Choose(names)
			if err != nil {
				return err
			}

			source, ok := lo.Find(sources, func(source feed.Source) bool {
				return source.Name() == choice
			})
			if !ok {
				return errors.New("unknown source")
			}

			probeCtx, cancel := context.WithTimeout(ctx.Context, 30*time.Second)
			defer cancel()

			items, err := source.Fetch(probeCtx)
			if err != nil {
				return fmt.Errorf("source %s failed: %w", choice, err)
			}

			fmt.Printf("Source %s returned %d items\n", choice, len(items))
			if len(items) > 0 {
				first := items[0].Normalized()
				fmt.Printf("First item: %s (%s, %s)\n", first.Title, first.Date, first.MediaType)
			}
			return nil
		},
	}
}
