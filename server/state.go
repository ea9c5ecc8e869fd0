package server

import (
	"sync"

	"skylight/gallery"
	"skylight/view"
)

// Snapshot is the full contents of the rendering surface at one point in
// time, served as JSON to clients that join after the last event.
type Snapshot struct {
	Loading bool            `json:"loading"`
	Fact    string          `json:"fact"`
	Cards   []gallery.Card  `json:"cards"`
	Detail  *gallery.Detail `json:"detail,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// State is the HTTP rendering surface: every display region is a field of a
// mutex-guarded snapshot, and every change is broadcast as an SSE event.
type State struct {
	mu          sync.RWMutex
	snapshot    Snapshot
	broadcaster *Broadcaster
}

func NewState(broadcaster *Broadcaster) *State {
	return &State{
		snapshot:    Snapshot{Cards: []gallery.Card{}},
		broadcaster: broadcaster,
	}
}

func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	s.snapshot.Loading = loading
	s.mu.Unlock()
	s.broadcaster.Broadcast(Event{Name: "loading", Data: loading})
}

func (s *State) SetFact(fact string) {
	s.mu.Lock()
	s.snapshot.Fact = fact
	s.mu.Unlock()
	s.broadcaster.Broadcast(Event{Name: "fact", Data: fact})
}

func (s *State) RenderGallery(cards []gallery.Card) {
	s.mu.Lock()
	s.snapshot.Cards = cards
	s.snapshot.Error = ""
	s.mu.Unlock()
	s.broadcaster.Broadcast(Event{Name: "gallery", Data: cards})
}

func (s *State) ShowDetail(detail gallery.Detail) {
	s.mu.Lock()
	s.snapshot.Detail = &detail
	s.mu.Unlock()
	s.broadcaster.Broadcast(Event{Name: "detail", Data: detail})
}

func (s *State) HideDetail() {
	s.mu.Lock()
	s.snapshot.Detail = nil
	s.mu.Unlock()
	s.broadcaster.Broadcast(Event{Name: "detail-closed", Data: nil})
}

func (s *State) ShowError(message string) {
	s.mu.Lock()
	s.snapshot.Error = message
	s.mu.Unlock()
	s.broadcaster.Broadcast(Event{Name: "feed-error", Data: message})
}

var _ view.Surface = (*State)(nil)

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
