// Package watcher provides file watching for shortcut-set live reload.
//
// The watcher monitors configuration files for changes and triggers
// handlers once the file has settled, so a detector's anticipated set
// can be swapped without restarting.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted or renamed away.
	OpRemove
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Handler is called when a watched file changes.
type Handler func(event Event)

// Watcher monitors individual files for changes using fsnotify. The
// parent directory is watched so editors that replace files via rename
// are still observed; events are filtered to the registered files and
// debounced so one save produces one event.
type Watcher struct {
	mu sync.RWMutex

	fsw      *fsnotify.Watcher
	files    map[string]bool
	dirs     map[string]bool
	handlers []Handler
	closed   bool

	// Debounce state: one pending timer per path, ops coalesced.
	debounce  time.Duration
	pendingMu sync.Mutex
	pending   map[string]*pendingEvent

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// pendingEvent is a queued event waiting out the debounce window.
type pendingEvent struct {
	op    Operation
	timer *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle window for rapid successive changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher and starts its event loop.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]*pendingEvent),
		closeCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Watch adds a file to the watch list. The file does not have to exist
// yet; its directory does.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	dir := filepath.Dir(absPath)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}

	w.files[absPath] = true
	return nil
}

// Unwatch removes a file from the watch list.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.files, absPath)
	return nil
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Close stops the watcher. Pending debounced events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.pendingMu.Lock()
	for path, pe := range w.pending {
		pe.timer.Stop()
		delete(w.pending, path)
	}
	w.pendingMu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// loop translates fsnotify events into watcher events.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// fsnotify errors are transient here; the loop keeps going.
		}
	}
}

// handleFSEvent filters and queues one fsnotify event.
func (w *Watcher) handleFSEvent(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)

	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return
	}

	var op Operation
	switch {
	case ev.Has(fsnotify.Create):
		op = OpCreate
	case ev.Has(fsnotify.Write):
		op = OpWrite
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		op = OpRemove
	default:
		return
	}

	w.queueEvent(path, op)
}

// queueEvent coalesces an event into the per-path debounce window:
// remove takes precedence, create beats write, write keeps write.
func (w *Watcher) queueEvent(path string, op Operation) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if pe, ok := w.pending[path]; ok {
		switch {
		case op == OpRemove:
			pe.op = OpRemove
		case op == OpCreate && pe.op == OpWrite:
			pe.op = OpCreate
		}
		pe.timer.Reset(w.debounce)
		return
	}

	pe := &pendingEvent{op: op}
	pe.timer = time.AfterFunc(w.debounce, func() {
		w.flush(path)
	})
	w.pending[path] = pe
}

// flush emits the settled event for a path.
func (w *Watcher) flush(path string) {
	w.pendingMu.Lock()
	pe, ok := w.pending[path]
	if ok {
		delete(w.pending, path)
	}
	w.pendingMu.Unlock()
	if !ok {
		return
	}

	w.emit(Event{Path: path, Op: pe.op, Time: time.Now()})
}

// emit calls all handlers with the event. Handlers run with panic
// recovery so one bad handler cannot kill the watcher.
func (w *Watcher) emit(event Event) {
	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, handler := range handlers {
		w.safeCall(handler, event)
	}
}

func (w *Watcher) safeCall(handler Handler, event Event) {
	defer func() {
		_ = recover()
	}()
	handler(event)
}
