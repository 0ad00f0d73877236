package notify

import (
	"sync"
	"testing"

	"github.com/dshills/keychord/internal/chord"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()

	var got []any
	h.Subscribe(func(ev any) { got = append(got, ev) })

	match := MatchEvent{Name: "save", Chord: chord.MustParse("cmd+s")}
	h.Publish(match)
	h.Publish(ResetEvent{Auto: true})

	if len(got) != 2 {
		t.Fatalf("received %d events, want 2", len(got))
	}
	if m, ok := got[0].(MatchEvent); !ok || m.Name != "save" {
		t.Errorf("first event = %#v, want MatchEvent save", got[0])
	}
	if r, ok := got[1].(ResetEvent); !ok || !r.Auto {
		t.Errorf("second event = %#v, want auto ResetEvent", got[1])
	}
}

func TestHubSubscriptionOrder(t *testing.T) {
	h := NewHub()

	var order []int
	h.Subscribe(func(any) { order = append(order, 1) })
	h.Subscribe(func(any) { order = append(order, 2) })
	h.Subscribe(func(any) { order = append(order, 3) })

	h.Publish(ProgressEvent{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()

	calls := 0
	id := h.Subscribe(func(any) { calls++ })

	h.Publish(ResetEvent{})
	if !h.Unsubscribe(id) {
		t.Error("Unsubscribe of live subscription should return true")
	}
	h.Publish(ResetEvent{})

	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
	if h.Unsubscribe(id) {
		t.Error("Unsubscribe of removed subscription should return false")
	}
	if h.Unsubscribe("bogus") {
		t.Error("Unsubscribe of unknown ID should return false")
	}
}

func TestHubPanicIsolation(t *testing.T) {
	h := NewHub()

	h.Subscribe(func(any) { panic("bad handler") })
	ran := false
	h.Subscribe(func(any) { ran = true })

	h.Publish(ResetEvent{})

	if !ran {
		t.Error("handler after a panicking one should still run")
	}

	stats := h.Stats()
	if stats.Panics != 1 {
		t.Errorf("Panics = %d, want 1", stats.Panics)
	}
	if stats.Delivered != 1 {
		t.Errorf("Delivered = %d, want 1", stats.Delivered)
	}
}

func TestHubStats(t *testing.T) {
	h := NewHub()
	h.Subscribe(func(any) {})
	h.Subscribe(func(any) {})

	h.Publish(ResetEvent{})
	h.Publish(ResetEvent{})

	stats := h.Stats()
	if stats.Published != 2 {
		t.Errorf("Published = %d, want 2", stats.Published)
	}
	if stats.Delivered != 4 {
		t.Errorf("Delivered = %d, want 4", stats.Delivered)
	}
	if stats.Subscribers != 2 {
		t.Errorf("Subscribers = %d, want 2", stats.Subscribers)
	}
}

func TestHubConcurrentPublish(t *testing.T) {
	h := NewHub()

	var mu sync.Mutex
	count := 0
	h.Subscribe(func(any) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.Publish(ProgressEvent{})
			}
		}()
	}
	wg.Wait()

	if count != 400 {
		t.Errorf("handler ran %d times, want 400", count)
	}
}
