package server

import (
	"bufio"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"skylight/db"
	"skylight/query"
	"skylight/view"
)

//go:embed static/*
var static embed.FS

const reloadTimeout = 60 * time.Second

type ServerConfig struct {

	// The hostname to use for the server
	Hostname string

	// The controller driving the rendering surface
	Controller *view.Controller

	// The rendering surface snapshot served over HTTP
	State *State

	// Broadcast channel to pass surface events to SSE clients
	Broadcaster *Broadcaster

	// Reader for the archive, nil when archiving is disabled
	Reader *db.Reader
}

// Returns a fiber.App instance to be used as an HTTP server for the skylight gallery
func Server(config *ServerConfig) *fiber.App {

	bc := config.Broadcaster

	app := fiber.New()

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		// start timer
		start := time.Now()

		// next routes
		err := c.Next()

		// stop timer
		stop := time.Now()

		// Diff
		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"latency": stop.Sub(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())

	app.Use(func(c *fiber.Ctx) error {
		corsConfig := cors.Config{
			AllowOrigins:     "http://localhost:3001",
			AllowHeaders:     "Cache-Control",
			AllowCredentials: true,
		}
		return cors.New(corsConfig)(c)
	})

	// Setup cache
	app.Use(cache.New(cache.Config{
		Next: func(c *fiber.Ctx) bool {

			if c.Method() != "GET" {
				return true
			}

			// If the pathname ends with /sse, don't cache
			if strings.HasSuffix(c.Path(), "/sse") {
				return true
			}

			// Only cache dashboard requests, the /api surface is live state
			if strings.HasPrefix(c.Path(), "/dashboard") {
				log.WithFields(log.Fields{
					"path": c.Path(),
				}).Info("Cache request")
				return false
			}
			return true
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			// Get URL with query string to use as cache key
			url := c.Request().URI().String()
			// Include the query parameters in the cache key
			return url
		},
	}))

	// Full rendering-surface snapshot for clients joining late
	app.Get("/api/view", func(c *fiber.Ctx) error {
		return c.JSON(config.State.Snapshot())
	})

	app.Get("/api/feed", func(c *fiber.Ctx) error {
		return c.JSON(config.Controller.Cards())
	})

	app.Get("/api/feed/:index", func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(400).SendString("Invalid item index")
		}

		detail, err := config.Controller.Detail(index)
		if err != nil {
			return c.Status(404).SendString("No such item")
		}
		return c.JSON(detail)
	})

	app.Get("/api/fact", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"fact": config.Controller.PickFact()})
	})

	// The user-triggered load action. Runs the full fallback chain, so the
	// response waits for the winning source or for exhaustion.
	app.Post("/api/reload", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()

		err := config.Controller.Reload(ctx)
		switch {
		case errors.Is(err, view.ErrLoadInFlight):
			return c.Status(409).SendString("A load is already in flight")
		case err != nil:
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error reloading feed")
			return c.Status(502).SendString(view.ErrorFeedUnavailable)
		}

		return c.JSON(config.Controller.Cards())
	})

	app.Post("/api/select/:index", func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(400).SendString("Invalid item index")
		}

		if err := config.Controller.Select(index); err != nil {
			return c.Status(404).SendString("No such item")
		}
		return c.SendStatus(204)
	})

	app.Post("/api/close", func(c *fiber.Ctx) error {
		config.Controller.Close()
		return c.SendStatus(204)
	})

	app.Get("/dashboard/items-per-time", func(c *fiber.Ctx) error {
		if config.Reader == nil {
			return c.Status(404).SendString("Archive is disabled")
		}

		timeAgg := c.Query("time", "month")
		if timeAgg != "day" && timeAgg != "month" && timeAgg != "year" {
			return c.Status(400).SendString("Invalid time")
		}

		itemsPerTime, err := config.Reader.GetItemCountPerTime(timeAgg)
		if err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error getting items per time")

			return c.Status(500).SendString("Error getting items per time")
		}

		log.WithFields(log.Fields{
			"time":  timeAgg,
			"count": len(itemsPerTime),
		}).Info("Get items per time")

		return c.Status(200).JSON(itemsPerTime)
	})

	app.Get("/dashboard/archive", func(c *fiber.Ctx) error {
		if config.Reader == nil {
			return c.Status(404).SendString("Archive is disabled")
		}

		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil || limit < 1 || limit > 500 {
			limit = 50
		}

		var filters []query.FilterStrategy
		if mediaType := c.Query("media_type", ""); mediaType != "" {
			filters = append(filters, &db.MediaTypeFilter{MediaType: mediaType})
		}
		if from, to := c.Query("from", ""), c.Query("to", ""); from != "" || to != "" {
			filters = append(filters, &db.DateRangeFilter{From: from, To: to})
		}

		items, err := config.Reader.GetArchived(filters, limit, 0)
		if err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error getting archived items")
			return c.Status(500).SendString("Error getting archived items")
		}

		return c.JSON(items)
	})

	app.Delete("/api/events/sse", func(c *fiber.Ctx) error {
		key := c.Query("key", "")
		bc.RemoveClient(key)
		return c.Status(200).SendString("OK")
	})

	app.Get("/api/events/sse", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")
		c.Set("Transfer-Encoding", "chunked")

		// Unique client key
		key := uuid.New().String()
		eventChan := make(chan Event, 10) // Buffered channel
		aliveChan := time.NewTicker(5 * time.Second)

		defer aliveChan.Stop()

		// Register the client
		bc.AddClient(key, eventChan)

		// Cleanup function
		cleanup := func() {
			log.Infof("Cleaning up SSE stream for client: %s", key)
			bc.RemoveClient(key)
		}

		// Use StreamWriter to manage SSE streaming
		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer cleanup()

			// Send initial event with client key
			fmt.Fprintf(w, "event: init\ndata: %s\n\n", key)
			if err := w.Flush(); err != nil {
				log.Errorf("Failed to send init event: %v", err)
				return
			}

			// Start streaming loop
			for {
				select {
				case <-aliveChan.C:
					// Send keep-alive pings
					if _, err := fmt.Fprintf(w, "event: ping\ndata: \n\n"); err != nil {
						log.Warnf("Failed to send ping to client %s: %v", key, err)
						return
					}
					if err := w.Flush(); err != nil {
						log.Warnf("Failed to flush ping for client %s: %v", key, err)
						return
					}

				case event, ok := <-eventChan:
					if !ok {
						log.Warnf("Event channel closed for client %s", key)
						return
					}
					jsonData, err := json.Marshal(event.Data)
					if err != nil {
						log.Errorf("Error marshalling event for client %s: %v", key, err)
						continue
					}
					if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, jsonData); err != nil {
						log.Warnf("Failed to send %s event to client %s: %v", event.Name, key, err)
						return
					}
					if err := w.Flush(); err != nil {
						log.Warnf("Failed to flush %s event for client %s: %v", event.Name, key, err)
						return
					}
				}
			}
		}))

		return nil
	})

	// Serve the gallery page
	app.Use("/", filesystem.New(filesystem.Config{
		Browse:     false,
		Index:      "index.html",
		Root:       http.FS(static),
		PathPrefix: "/static",
	}))

	return app
}
