// Package notify provides a small publish/subscribe hub for detection
// results. Subscribers receive match, progress, and reset events
// synchronously in subscription order; a panicking handler is isolated
// and counted rather than propagated.
package notify

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/chord"
)

// MatchEvent is published when an anticipated chord completes.
type MatchEvent struct {
	// Name is the configured shortcut name, if any.
	Name string

	// Chord is the matched combination.
	Chord chord.Chord

	// Time is when the match was observed.
	Time time.Time
}

// ProgressEvent is published when the trace advances without matching.
type ProgressEvent struct {
	// Remaining is the number of still-reachable chords.
	Remaining int

	// ValidPrefix reports whether the trace is a prefix of anything.
	ValidPrefix bool

	// Keys is the trace's pressed key codes in order.
	Keys []chord.Code

	// Time is when the progress was observed.
	Time time.Time
}

// ResetEvent is published when the trace is cleared.
type ResetEvent struct {
	// Auto is true for timer-driven resets, false for explicit ones.
	Auto bool

	// Time is when the reset happened.
	Time time.Time
}

// Handler receives published events.
type Handler func(event any)

// Stats holds hub delivery counters.
type Stats struct {
	Published   uint64
	Delivered   uint64
	Panics      uint64
	Subscribers int
}

// subscriber pairs a handler with its subscription ID.
type subscriber struct {
	id string
	fn Handler
}

// Hub fans published events out to subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs []subscriber

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a handler and returns its subscription ID.
func (h *Hub) Subscribe(fn Handler) string {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	return id
}

// Unsubscribe removes a subscription. Returns false if the ID is
// unknown.
func (h *Hub) Unsubscribe(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers an event to every subscriber in subscription order.
func (h *Hub) Publish(event any) {
	h.mu.RLock()
	subs := make([]subscriber, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	h.published.Add(1)
	for _, s := range subs {
		h.deliver(s.fn, event)
	}
}

// Stats returns current delivery counters.
func (h *Hub) Stats() Stats {
	h.mu.RLock()
	n := len(h.subs)
	h.mu.RUnlock()

	return Stats{
		Published:   h.published.Load(),
		Delivered:   h.delivered.Load(),
		Panics:      h.panics.Load(),
		Subscribers: n,
	}
}

// deliver calls one handler with panic recovery.
func (h *Hub) deliver(fn Handler, event any) {
	defer func() {
		if recover() != nil {
			h.panics.Add(1)
		}
	}()
	fn(event)
	h.delivered.Add(1)
}
