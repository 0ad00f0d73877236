package detect

import (
	"sync"
	"time"

	"github.com/dshills/keychord/internal/chord"
)

// DefaultAutoResetInterval is the inactivity window after which an
// abandoned partial chord is silently cleared.
const DefaultAutoResetInterval = 125 * time.Millisecond

// Detector is the concurrency-safe entry point for event processing.
// It owns exactly one State and at most one pending auto-reset timer;
// every public operation runs under one mutex, so events are processed
// in arrival order and the timer can never fire concurrently with a
// cancellation.
type Detector struct {
	mu sync.Mutex

	state    *State
	interval time.Duration

	// timer is the pending auto-reset, nil when idle. timerGen is
	// bumped on every arm and cancel; a fired timer re-checks it under
	// the mutex so a late fire after rearm or cancel is a no-op.
	timer    *time.Timer
	timerGen uint64

	closed bool
}

// Snapshot is the caller-visible state after processing one event.
type Snapshot struct {
	// Remaining contains the anticipated chords still reachable from
	// the current trace, in sort-priority order.
	Remaining []chord.Chord

	// Match is the exactly matched chord, nil when none.
	Match *chord.Chord

	// ValidPrefix reports whether the trace is a prefix of at least
	// one anticipated chord.
	ValidPrefix bool

	// Mods is the current normalized modifier mask.
	Mods chord.Modifier

	// Keys contains the trace's pressed key codes in order.
	Keys []chord.Code
}

// Option configures a Detector.
type Option func(*Detector)

// WithAutoResetInterval sets the inactivity window before auto-reset.
func WithAutoResetInterval(d time.Duration) Option {
	return func(det *Detector) {
		if d > 0 {
			det.interval = d
		}
	}
}

// WithAnticipated sets the initial anticipated chord set.
func WithAnticipated(chords ...chord.Chord) Option {
	return func(det *Detector) {
		det.state.SetAnticipated(chords)
	}
}

// New creates a detector with an empty trace.
func New(opts ...Option) *Detector {
	d := &Detector{
		state:    NewState(),
		interval: DefaultAutoResetInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Process ingests one raw event and returns the resulting snapshot.
//
// Every event reaches the state machine first; the timer policy runs
// after: a key press cancels any pending reset (the user is actively
// extending a chord), while a release or modifier change (re)arms the
// reset for the configured interval with the event's normalized mask
// captured for the eventual reset. Other event kinds leave the timer
// alone.
func (d *Detector) Process(ev chord.Event) Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return d.snapshotLocked()
	}

	d.state.Attach(ev)

	switch ev.Kind {
	case chord.KindKeyDown:
		d.cancelResetLocked()
	case chord.KindKeyUp, chord.KindFlagsChanged:
		d.armResetLocked(ev.Mods.Normalize())
	}

	return d.snapshotLocked()
}

// Reset clears the trace immediately and cancels any pending
// auto-reset. With no argument the trace keeps the current mask with
// overhead bits stripped.
func (d *Detector) Reset(mods ...chord.Modifier) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelResetLocked()
	d.state.Reset(mods...)
}

// Anticipated returns a copy of the anticipated chord set.
func (d *Detector) Anticipated() []chord.Chord {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Anticipated()
}

// SetAnticipated atomically replaces the anticipated chord set. The
// replacement takes effect for the next Process call.
func (d *Detector) SetAnticipated(chords []chord.Chord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.SetAnticipated(chords)
}

// AutoResetInterval returns the configured inactivity window.
func (d *Detector) AutoResetInterval() time.Duration {
	return d.interval
}

// Close stops the pending timer and makes further Process calls
// no-ops.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.cancelResetLocked()
}

// Snapshot returns the current state without processing an event.
func (d *Detector) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

// armResetLocked schedules a reset for interval from now, superseding
// any previously armed timer. Caller must hold the mutex.
func (d *Detector) armResetLocked(mods chord.Modifier) {
	d.cancelResetLocked()

	gen := d.timerGen
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		if d.closed || d.timerGen != gen {
			// Cancelled or superseded while this fire was in flight.
			return
		}
		d.timer = nil
		d.state.Reset(mods)
	})
}

// cancelResetLocked invalidates any pending reset. Caller must hold
// the mutex.
func (d *Detector) cancelResetLocked() {
	d.timerGen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// snapshotLocked builds a snapshot. Caller must hold the mutex.
func (d *Detector) snapshotLocked() Snapshot {
	snap := Snapshot{
		Remaining:   d.state.RemainingOptions(),
		ValidPrefix: d.state.ValidPrefix(),
		Mods:        d.state.trace.Mods.Normalize(),
		Keys:        d.state.trace.DownKeys(),
	}
	if m, ok := d.state.Match(); ok {
		snap.Match = &m
	}
	return snap
}
