// Package script evaluates Lua binding files.
//
// A binding file declares shortcuts by calling the provided global:
//
//	bind("cmd+shift+p", "palette")
//	bind("g g", "go-top")
//
// Evaluation returns the declared bindings in declaration order. The
// Lua state is owned by one Evaluator and is not goroutine-safe; the
// Evaluator serializes access with a mutex the same way other stateful
// wrappers in this module do.
package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/chord"
)

// ErrEvaluatorClosed is returned when evaluating on a closed Evaluator.
var ErrEvaluatorClosed = errors.New("evaluator is closed")

// Binding is one Lua-declared shortcut: a chord and the action name it
// should trigger.
type Binding struct {
	// Action is the caller-defined action name.
	Action string

	// Chord is the parsed combination.
	Chord chord.Chord
}

// Evaluator runs binding files in a sandboxed-enough Lua state.
type Evaluator struct {
	mu sync.Mutex

	L       *lua.LState
	pending []Binding
	closed  bool
}

// NewEvaluator creates an evaluator with the bind global registered.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		L: lua.NewState(lua.Options{SkipOpenLibs: false}),
	}
	e.L.SetGlobal("bind", e.L.NewFunction(e.luaBind))
	return e
}

// EvalFile evaluates a binding file and returns its declarations.
func (e *Evaluator) EvalFile(path string) ([]Binding, error) {
	return e.eval(func(L *lua.LState) error { return L.DoFile(path) },
		fmt.Sprintf("binding file %s", path))
}

// EvalString evaluates binding source and returns its declarations.
func (e *Evaluator) EvalString(src string) ([]Binding, error) {
	return e.eval(func(L *lua.LState) error { return L.DoString(src) },
		"binding source")
}

// Close releases the Lua state. Further Eval calls fail.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// eval runs one script, collecting bind calls into a fresh slice.
func (e *Evaluator) eval(run func(*lua.LState) error, what string) ([]Binding, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEvaluatorClosed
	}

	e.pending = nil
	if err := run(e.L); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", what, err)
	}

	bindings := make([]Binding, len(e.pending))
	copy(bindings, e.pending)
	return bindings, nil
}

// luaBind implements the bind(spec, action) global. A bad spec raises
// a Lua error carrying the parse failure.
func (e *Evaluator) luaBind(L *lua.LState) int {
	spec := L.CheckString(1)
	action := L.CheckString(2)

	c, err := chord.Parse(spec)
	if err != nil {
		L.RaiseError("bind(%q): %s", spec, err.Error())
		return 0
	}

	e.pending = append(e.pending, Binding{Action: action, Chord: c})
	return 0
}

// Chords returns just the chords from a binding list.
func Chords(bindings []Binding) []chord.Chord {
	out := make([]chord.Chord, len(bindings))
	for i, b := range bindings {
		out[i] = b.Chord
	}
	return out
}

// ActionOf returns the action bound to a chord, or "" when the chord
// has no binding.
func ActionOf(bindings []Binding, c chord.Chord) string {
	for _, b := range bindings {
		if b.Chord.Matches(c) {
			return b.Action
		}
	}
	return ""
}
