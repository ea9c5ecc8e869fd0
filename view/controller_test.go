package view_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skylight/facts"
	"skylight/feed"
	"skylight/gallery"
	"skylight/models"
	"skylight/view"
)

// fakeSurface records every call so tests can assert what was rendered.
type fakeSurface struct {
	mu           sync.Mutex
	loading      []bool
	facts        []string
	galleries    [][]gallery.Card
	details      []gallery.Detail
	hideCalls    int
	errors       []string
	loadingBegan chan struct{}
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{loadingBegan: make(chan struct{}, 10)}
}

func (s *fakeSurface) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = append(s.loading, loading)
	if loading {
		s.loadingBegan <- struct{}{}
	}
}

func (s *fakeSurface) SetFact(fact string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = append(s.facts, fact)
}

func (s *fakeSurface) RenderGallery(cards []gallery.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.galleries = append(s.galleries, cards)
}

func (s *fakeSurface) ShowDetail(detail gallery.Detail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = append(s.details, detail)
}

func (s *fakeSurface) HideDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hideCalls++
}

func (s *fakeSurface) ShowError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
}

// staticSource serves a fixed item set, optionally blocking until released.
type staticSource struct {
	items   []models.Item
	err     error
	release chan struct{}
}

func (s *staticSource) Name() string {
	return "static"
}

func (s *staticSource) Fetch(ctx context.Context) ([]models.Item, error) {
	if s.release != nil {
		<-s.release
	}
	return s.items, s.err
}

func testItems() []models.Item {
	return []models.Item{
		{Title: "one", Date: "2026-08-24", MediaType: models.MediaImage, URL: "https://x/1.jpg"},
		{Title: "two", Date: "2026-08-25", MediaType: models.MediaVideo, URL: "https://youtu.be/ABC123"},
	}
}

func newController(surface view.Surface, source feed.Source) *view.Controller {
	return view.NewController(feed.NewLoader(source), facts.NewWithSeed(1), surface)
}

func TestStartPicksFactBeforeLoading(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})

	err := controller.Start(context.Background(), false)

	assert.NoError(t, err)
	assert.Len(t, surface.facts, 1)
	assert.Empty(t, surface.galleries)
}

func TestStartWithAutoLoadRendersGallery(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})

	err := controller.Start(context.Background(), true)

	assert.NoError(t, err)
	assert.Len(t, surface.facts, 1)
	assert.Len(t, surface.galleries, 1)
	assert.Len(t, surface.galleries[0], 2)
}

func TestReloadReplacesGalleryWholesale(t *testing.T) {
	surface := newFakeSurface()
	source := &staticSource{items: testItems()}
	controller := newController(surface, source)

	assert.NoError(t, controller.Reload(context.Background()))
	source.items = []models.Item{{Title: "only", MediaType: models.MediaImage, URL: "https://x/only.jpg"}}
	assert.NoError(t, controller.Reload(context.Background()))

	assert.Len(t, surface.galleries, 2)
	// The second render fully replaces the first, no accumulation
	assert.Len(t, surface.galleries[1], 1)
	assert.Equal(t, "only", surface.galleries[1][0].Title)
	assert.Equal(t, []bool{true, false, true, false}, surface.loading)
}

func TestReloadSurfacesFeedUnavailable(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{err: context.DeadlineExceeded})

	err := controller.Reload(context.Background())

	assert.ErrorIs(t, err, feed.ErrFeedUnavailable)
	assert.Equal(t, []string{view.ErrorFeedUnavailable}, surface.errors)
	assert.Empty(t, surface.galleries)
}

func TestReloadRejectsOverlappingLoads(t *testing.T) {
	surface := newFakeSurface()
	source := &staticSource{items: testItems(), release: make(chan struct{})}
	controller := newController(surface, source)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- controller.Reload(context.Background())
	}()

	// Wait for the first load to be in flight
	select {
	case <-surface.loadingBegan:
	case <-time.After(time.Second):
		t.Fatal("first load never started")
	}

	err := controller.Reload(context.Background())
	assert.ErrorIs(t, err, view.ErrLoadInFlight)

	close(source.release)
	assert.NoError(t, <-firstDone)
	assert.Len(t, surface.galleries, 1)
}

func TestSelectAndClose(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})
	assert.NoError(t, controller.Reload(context.Background()))

	assert.NoError(t, controller.Select(1))
	assert.Len(t, surface.details, 1)
	assert.Equal(t, "two", surface.details[0].Title)
	assert.Equal(t, "https://www.youtube.com/embed/ABC123", surface.details[0].EmbedURL)

	controller.Close()
	assert.Equal(t, 1, surface.hideCalls)
}

func TestCloseIsIdempotent(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})
	assert.NoError(t, controller.Reload(context.Background()))

	controller.Close()
	controller.Close()
	controller.Close()

	assert.Equal(t, 0, surface.hideCalls)

	assert.NoError(t, controller.Select(0))
	controller.Close()
	controller.Close()

	assert.Equal(t, 1, surface.hideCalls)
}

func TestSelectOutOfRange(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})
	assert.NoError(t, controller.Reload(context.Background()))

	assert.ErrorIs(t, controller.Select(-1), view.ErrNoSuchItem)
	assert.ErrorIs(t, controller.Select(2), view.ErrNoSuchItem)
	assert.Empty(t, surface.details)
}

func TestReloadClosesOpenDetail(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})
	assert.NoError(t, controller.Reload(context.Background()))
	assert.NoError(t, controller.Select(0))

	assert.NoError(t, controller.Reload(context.Background()))

	assert.Equal(t, 1, surface.hideCalls)
	_, err := controller.Detail(0)
	assert.NoError(t, err)
}

func TestSelectAfterCloseShowsOnlyNewContent(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})
	assert.NoError(t, controller.Reload(context.Background()))

	assert.NoError(t, controller.Select(0))
	controller.Close()
	assert.NoError(t, controller.Select(1))

	assert.Len(t, surface.details, 2)
	assert.Equal(t, "one", surface.details[0].Title)
	assert.Equal(t, "two", surface.details[1].Title)
}

func TestReloadPublishesArchiveEvent(t *testing.T) {
	surface := newFakeSurface()
	controller := newController(surface, &staticSource{items: testItems()})

	archive := make(chan models.ItemsLoadedEvent, 1)
	controller.WithArchive(archive)

	assert.NoError(t, controller.Reload(context.Background()))

	select {
	case event := <-archive:
		assert.Len(t, event.Items, 2)
	default:
		t.Fatal("expected an archive event")
	}
}
