package chord

import "strings"

// Step is a single entry in a trace: a key press or release.
type Step struct {
	// Code is the key the step records.
	Code Code

	// Down is true for a press, false for a release.
	Down bool
}

// Trace is the in-progress, unnormalized record of the live event
// stream for the current detection attempt. It keeps both press and
// release steps plus the raw modifier mask as of the last event.
// A trace is owned by exactly one detection state.
type Trace struct {
	// Mods is the raw modifier mask as of the most recent event.
	Mods Modifier

	// Steps contains the recorded presses and releases in order.
	Steps []Step
}

// NewTrace creates an empty trace carrying the given mask.
func NewTrace(mods Modifier) Trace {
	return Trace{Mods: mods}
}

// Len returns the number of recorded steps.
func (t Trace) Len() int {
	return len(t.Steps)
}

// IsEmpty returns true if the trace has no steps.
func (t Trace) IsEmpty() bool {
	return len(t.Steps) == 0
}

// AppendDown records a key press.
func (t *Trace) AppendDown(code Code) {
	t.Steps = append(t.Steps, Step{Code: code, Down: true})
}

// AppendUp records a key release.
func (t *Trace) AppendUp(code Code) {
	t.Steps = append(t.Steps, Step{Code: code, Down: false})
}

// DownCount returns the number of press steps.
func (t Trace) DownCount() int {
	n := 0
	for _, s := range t.Steps {
		if s.Down {
			n++
		}
	}
	return n
}

// DownKeys returns the codes of the press steps in order.
func (t Trace) DownKeys() []Code {
	keys := make([]Code, 0, len(t.Steps))
	for _, s := range t.Steps {
		if s.Down {
			keys = append(keys, s.Code)
		}
	}
	return keys
}

// Sanitize projects the trace onto a chord: the trace mask (normalized
// by chord construction) paired with the press steps only. Release
// steps are dropped for matching purposes but stay in the trace.
func (t Trace) Sanitize() Chord {
	return New(t.Mods, t.DownKeys()...)
}

// Clone returns a copy of the trace with its own step slice.
func (t Trace) Clone() Trace {
	steps := make([]Step, len(t.Steps))
	copy(steps, t.Steps)
	return Trace{Mods: t.Mods, Steps: steps}
}

// Clear removes all steps and sets the mask.
func (t *Trace) Clear(mods Modifier) {
	t.Mods = mods
	t.Steps = t.Steps[:0]
}

// String returns a debug representation like "[+a -a +s]".
func (t Trace) String() string {
	parts := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		if s.Down {
			parts[i] = "+" + s.Code.String()
		} else {
			parts[i] = "-" + s.Code.String()
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
