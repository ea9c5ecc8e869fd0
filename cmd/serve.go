package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"skylight/config"
	"skylight/db"
	"skylight/facts"
	"skylight/models"
	"skylight/server"
	"skylight/view"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the skylight gallery",
		Description: `Starts the skylight HTTP server.

Resolves the picture feed through the configured fallback chain and serves
the gallery, detail views and a random astronomy fact over the HTTP API.
Successfully loaded items are archived to the SQLite database unless
archiving is disabled in the config.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				EnvVars: []string{"SKYLIGHT_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "hostname",
				Aliases: []string{"n"},
				Value:   "localhost",
				Usage:   "The hostname where the server is running",
				EnvVars: []string{"SKYLIGHT_HOSTNAME"},
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   "HTTP port to listen on",
				EnvVars: []string{"SKYLIGHT_PORT"},
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Value:   "skylight.db",
				Usage:   "SQLite database file location",
				EnvVars: []string{"SKYLIGHT_DATABASE"},
			},
			&cli.IntFlag{
				Name:    "metrics-port",
				Value:   0,
				Usage:   "Port for the Prometheus metrics listener, 0 disables it",
				EnvVars: []string{"SKYLIGHT_METRICS_PORT"},
			},
		},
		Action: func(ctx *cli.Context) error {
			fmt.Println("Starting skylight...")

			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			loader := buildLoader(cfg)
			picker := facts.New()
			bc := server.NewBroadcaster()
			state := server.NewState(bc)
			controller := view.NewController(loader, picker, state)

			var reader *db.Reader
			var writer *db.Writer
			if cfg.Archive.Enabled {
				database := ctx.String("database")
				if err := db.Migrate(database); err != nil {
					return fmt.Errorf("failed to migrate database: %w", err)
				}

				// Channel for passing loaded items to the archive writer
				itemChan := make(chan models.ItemsLoadedEvent, 10)
				writer, err = db.NewWriter(database, itemChan)
				if err != nil {
					return fmt.Errorf("failed to open archive writer: %w", err)
				}
				go writer.Subscribe()
				controller.WithArchive(itemChan)

				reader, err = db.NewReader(database)
				if err != nil {
					return fmt.Errorf("failed to open archive reader: %w", err)
				}
			}

			app := server.Server(&server.ServerConfig{
				Hostname:    ctx.String("hostname"),
				Controller:  controller,
				State:       state,
				Broadcaster: bc,
				Reader:      reader,
			})

			if metricsPort := ctx.Int("metrics-port"); metricsPort != 0 {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.Handler())
					fmt.Println("Starting metrics listener...")
					if err := http.ListenAndServe(fmt.Sprintf(":%d", metricsPort), mux); err != nil {
						log.Error("Metrics listener failed", err)
					}
				}()
			}

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			done := make(chan struct{})

			go func() {
				<-c
				fmt.Println("Gracefully shutting down...")
				app.ShutdownWithTimeout(60 * time.Second)
				bc.Shutdown()
				close(done)
			}()

			go func() {
				// Pick the initial fact and run the first load
				if err := controller.Start(ctx.Context, cfg.Feed.AutoLoad); err != nil {
					log.WithFields(log.Fields{
						"error": err,
					}).Warn("Initial feed load failed")
				}
			}()

			fmt.Println("Starting server...")
			if err := app.Listen(fmt.Sprintf(":%d", ctx.Int("port"))); err != nil {
				return err
			}

			<-done
			fmt.Println("Done!")
			return nil
		},
	}
}
