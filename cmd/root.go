package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "skylight",
		Usage: "An astronomy picture of the day gallery server",
		Description: `Skylight aggregates the public astronomy picture of the day
		feed and serves it as a browsable gallery.

		The feed is resolved through an ordered fallback chain: the remote
		API is tried first, then a fixed list of local fallback files. The
		first source that yields a non-empty item set wins. Loaded items are
		archived to an SQLite database and served over an HTTP API together
		with live update events.

		Flags can generally be set via environment variables, e.g.:

		--database => SKYLIGHT_DATABASE=skylight.db
		--port => SKYLIGHT_PORT=3000
		`,
		Commands: []*cli.Command{
			serveCmd(),
			fetchCmd(),
			factCmd(),
			migrateCmd(),
			rollbackCmd(),
			tidyCmd(),
			probeCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
