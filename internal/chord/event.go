package chord

import (
	"fmt"
	"time"
)

// Kind identifies the type of a raw input event.
type Kind int

const (
	// KindOther is any event kind the engine does not care about.
	KindOther Kind = iota

	// KindKeyDown is a key press.
	KindKeyDown

	// KindKeyUp is a key release.
	KindKeyUp

	// KindFlagsChanged is a modifier-only change.
	KindFlagsChanged
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "keyDown"
	case KindKeyUp:
		return "keyUp"
	case KindFlagsChanged:
		return "flagsChanged"
	default:
		return "other"
	}
}

// Event represents a single raw input event as delivered by the
// platform event source. Mods carries the raw, unnormalized flags.
type Event struct {
	// Kind identifies the event type.
	Kind Kind

	// Code is the platform virtual key code. For KindFlagsChanged it is
	// the code of the modifier key that toggled.
	Code Code

	// Mods contains the raw modifier flags active at event time.
	Mods Modifier

	// Repeat is true for key-repeat events. The engine ignores it.
	Repeat bool

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// KeyDown creates a key-down event with the current timestamp.
func KeyDown(code Code, mods Modifier) Event {
	return Event{
		Kind:      KindKeyDown,
		Code:      code,
		Mods:      mods,
		Timestamp: time.Now(),
	}
}

// KeyUp creates a key-up event with the current timestamp.
func KeyUp(code Code, mods Modifier) Event {
	return Event{
		Kind:      KindKeyUp,
		Code:      code,
		Mods:      mods,
		Timestamp: time.Now(),
	}
}

// FlagsChanged creates a modifier-change event with the current timestamp.
func FlagsChanged(code Code, mods Modifier) Event {
	return Event{
		Kind:      KindFlagsChanged,
		Code:      code,
		Mods:      mods,
		Timestamp: time.Now(),
	}
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Kind: %s, Code: %s, Mods: %q, Repeat: %t}",
		e.Kind, e.Code, e.Mods.String(), e.Repeat)
}
