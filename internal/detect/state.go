package detect

import (
	"sort"

	"github.com/dshills/keychord/internal/chord"
)

// State holds the configured set of anticipated chords, the live trace,
// and the derived prefix-validity flag. The flag is recomputed on every
// Attach and Reset; it is never stale between calls.
//
// State is not safe for concurrent use. Detector provides the
// serialized wrapper callers should use.
type State struct {
	anticipated []chord.Chord
	trace       chord.Trace
	validPrefix bool
}

// NewState creates a state with the given anticipated chords and an
// empty trace.
func NewState(anticipated ...chord.Chord) *State {
	s := &State{}
	s.SetAnticipated(anticipated)
	return s
}

// SetAnticipated replaces the anticipated chord set. Duplicates (by
// value equality) are dropped. Takes effect on the next Attach.
func (s *State) SetAnticipated(chords []chord.Chord) {
	dedup := make([]chord.Chord, 0, len(chords))
	for _, c := range chords {
		seen := false
		for _, d := range dedup {
			if d.Matches(c) {
				seen = true
				break
			}
		}
		if !seen {
			dedup = append(dedup, c.Clone())
		}
	}
	s.anticipated = dedup
}

// Anticipated returns a copy of the anticipated chord set.
func (s *State) Anticipated() []chord.Chord {
	out := make([]chord.Chord, len(s.anticipated))
	for i, c := range s.anticipated {
		out[i] = c.Clone()
	}
	return out
}

// Attach ingests one raw event, mutating the trace and recomputing
// prefix validity. Event kinds outside the known set are ignored with
// no state change.
//
// A key press extends the trace with a press step, a release with a
// release step, and a modifier change with a release step carrying the
// changed key's code, so modifier toggles never themselves start a new
// key sequence. If the extended trace is no longer a prefix of any
// anticipated chord, the trace re-bases to begin at this event: a
// single press step when the event was a press, otherwise empty.
func (s *State) Attach(ev chord.Event) {
	candidate := s.trace.Clone()
	candidate.Mods = ev.Mods

	switch ev.Kind {
	case chord.KindKeyDown:
		candidate.AppendDown(ev.Code)
	case chord.KindKeyUp, chord.KindFlagsChanged:
		candidate.AppendUp(ev.Code)
	default:
		return
	}

	if !s.anyContains(candidate.Sanitize()) {
		// Restart on mismatch: re-base the sequence at this event.
		candidate.Steps = candidate.Steps[:0]
		if ev.Kind == chord.KindKeyDown {
			candidate.AppendDown(ev.Code)
		}
	}

	s.trace = candidate
	s.validPrefix = s.anyContains(candidate.Sanitize())
}

// Reset replaces the trace with an empty one. With no argument the new
// trace keeps the current mask with overhead bits stripped; otherwise
// it carries the given mask. The anticipated set is untouched.
func (s *State) Reset(mods ...chord.Modifier) {
	mask := s.trace.Mods.Normalize()
	if len(mods) > 0 {
		mask = mods[0]
	}
	s.trace.Clear(mask)
	s.validPrefix = s.anyContains(s.trace.Sanitize())
}

// ValidPrefix reports whether the trace's sanitized projection is a
// prefix of at least one anticipated chord.
func (s *State) ValidPrefix() bool {
	return s.validPrefix
}

// Trace returns a copy of the live trace.
func (s *State) Trace() chord.Trace {
	return s.trace.Clone()
}

// RemainingOptions returns the anticipated chords that still accept the
// current trace as a prefix, ordered by sort priority for deterministic
// presentation.
func (s *State) RemainingOptions() []chord.Chord {
	projection := s.trace.Sanitize()

	var remaining []chord.Chord
	for _, c := range s.anticipated {
		if c.Contains(projection) {
			remaining = append(remaining, c.Clone())
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].SortPriority() < remaining[j].SortPriority()
	})
	return remaining
}

// Match returns the anticipated chord the trace exactly matches, if
// any. A trace with no press steps never matches.
func (s *State) Match() (chord.Chord, bool) {
	if s.trace.DownCount() == 0 {
		return chord.Chord{}, false
	}

	projection := s.trace.Sanitize()
	for _, c := range s.anticipated {
		if c.Matches(projection) {
			return c.Clone(), true
		}
	}
	return chord.Chord{}, false
}

// anyContains reports whether any anticipated chord accepts the
// projection as a prefix. Linear scan: shortcut sets are small, and
// this mirrors how candidate lookup behaves at these cardinalities.
func (s *State) anyContains(projection chord.Chord) bool {
	for _, c := range s.anticipated {
		if c.Contains(projection) {
			return true
		}
	}
	return false
}
