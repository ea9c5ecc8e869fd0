package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"skylight/db"
)

func tidyCmd() *cli.Command {
	return &cli.Command{
		Name:  "tidy",
		Usage: "Tidy up the archive database",
		Description: `Tidy up the archive by removing items archived before the retention window.

		This is to keep the database size down when the server runs for a
		long time. Can be run as a cron job.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Value:   "skylight.db",
				Usage:   "SQLite database file location",
				EnvVars: []string{"SKYLIGHT_DATABASE"},
			},
			&cli.IntFlag{
				Name:    "retention-days",
				Value:   365,
				Usage:   "Number of days to keep archived items",
				EnvVars: []string{"SKYLIGHT_RETENTION_DAYS"},
			},
		},
		Action: func(ctx *cli.Context) error {
			database := ctx.String("database")
			fmt.Println("Database configured: ", database)
			return db.Tidy(database, ctx.Int("retention-days"))
		},
	}
}
