package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"skylight/facts"
	"skylight/feed"
	"skylight/gallery"
	"skylight/models"
)

// ErrLoadInFlight is returned when a reload is triggered while one is
// already running. Overlapping loads are rejected outright rather than
// queued.
var ErrLoadInFlight = errors.New("a feed load is already in flight")

// ErrNoSuchItem is returned when a selection points outside the currently
// rendered item set.
var ErrNoSuchItem = errors.New("no such item in the current gallery")

// ErrorFeedUnavailable is the human-readable text rendered in the gallery
// region when every source failed.
const ErrorFeedUnavailable = "The picture feed is unavailable right now. Try again later."

// Controller drives the rendering surface. It owns the only mutable state
// in the system: the current item set and the open/closed detail view, both
// replaced wholesale under one mutex.
type Controller struct {
	loader  *feed.Loader
	picker  *facts.Picker
	surface Surface

	// Successful loads are pushed here for the archive writer, nil when
	// archiving is disabled.
	archive chan<- models.ItemsLoadedEvent

	mu      sync.Mutex
	loading bool
	items   []models.Item
	open    *int
}

func NewController(loader *feed.Loader, picker *facts.Picker, surface Surface) *Controller {
	return &Controller{
		loader:  loader,
		picker:  picker,
		surface: surface,
	}
}

// WithArchive makes the controller publish successful loads to the archive
// writer channel.
func (c *Controller) WithArchive(archive chan<- models.ItemsLoadedEvent) *Controller {
	c.archive = archive
	return c
}

// Start picks the initial fact and, when autoLoad is set, runs the first
// load. The fact is rendered regardless of how the load goes.
func (c *Controller) Start(ctx context.Context, autoLoad bool) error {
	c.PickFact()
	if !autoLoad {
		return nil
	}
	return c.Reload(ctx)
}

// PickFact selects a random fact and renders it.
func (c *Controller) PickFact() string {
	fact := c.picker.Pick()
	c.surface.SetFact(fact)
	return fact
}

// Reload runs the fallback chain and atomically replaces the rendered
// gallery. A reload while one is in flight returns ErrLoadInFlight. Load
// failures are surfaced as an in-gallery error message, never a crash.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoadInFlight
	}
	c.loading = true
	c.mu.Unlock()

	c.surface.SetLoading(true)
	items, err := c.loader.Load(ctx)
	c.surface.SetLoading(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.surface.ShowError(ErrorFeedUnavailable)
		return fmt.Errorf("reload: %w", err)
	}

	// The whole gallery is replaced, and a detail view open on the old set
	// would point at stale items.
	c.items = items
	if c.open != nil {
		c.open = nil
		c.surface.HideDetail()
	}
	c.surface.RenderGallery(gallery.BuildCards(items))

	if c.archive != nil {
		select {
		case c.archive <- models.ItemsLoadedEvent{Source: "loader", Items: items}:
		default:
			log.Warn("Archive channel full, skipping archive of loaded items")
		}
	}

	return nil
}

// Select opens the detail view for one rendered item.
func (c *Controller) Select(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return ErrNoSuchItem
	}

	c.open = &index
	c.surface.ShowDetail(gallery.BuildDetail(index, c.items[index]))
	return nil
}

// Close hides the detail view. Closing an already-closed view is a no-op;
// the close control, a click outside the content area and a cancellation
// key all funnel into this one transition.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return
	}
	c.open = nil
	c.surface.HideDetail()
}

// Cards returns the view models for the current item set.
func (c *Controller) Cards() []gallery.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gallery.BuildCards(c.items)
}

// Detail returns the detail view model for one item without opening it.
func (c *Controller) Detail(index int) (gallery.Detail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return gallery.Detail{}, ErrNoSuchItem
	}
	return gallery.BuildDetail(index, c.items[index]), nil
}
