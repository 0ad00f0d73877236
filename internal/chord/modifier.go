package chord

import "strings"

// Modifier represents keyboard modifier flags as reported by the platform.
// Bit positions follow the Cocoa device-independent flag layout so raw
// event masks can be used directly.
type Modifier uint64

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCapsLock indicates the Caps Lock key is engaged.
	ModCapsLock Modifier = 1 << 16

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << 17

	// ModControl indicates the Control key.
	ModControl Modifier = 1 << 18

	// ModOption indicates the Option key (Alt).
	ModOption Modifier = 1 << 19

	// ModCommand indicates the Command key (Meta/Win).
	ModCommand Modifier = 1 << 20

	// ModNumericPad indicates a key on the numeric pad. Carries no
	// shortcut semantics and is always stripped.
	ModNumericPad Modifier = 1 << 21

	// ModHelp indicates the secondary-function (help) key. Carries no
	// shortcut semantics and is always stripped.
	ModHelp Modifier = 1 << 22

	// ModFunction indicates the Fn key.
	ModFunction Modifier = 1 << 23
)

// modDeviceMask covers the device-dependent low bits, including the
// left/right key distinction and the non-coalesced bit.
const modDeviceMask Modifier = 0xFFFF

// modIgnoredMask is the fixed set of overhead bits stripped before any
// comparison or storage.
const modIgnoredMask = modDeviceMask | ModNumericPad | ModHelp

// Normalize returns m with the ignored overhead bits stripped.
func (m Modifier) Normalize() Modifier {
	return m &^ modIgnoredMask
}

// Equals reports whether two masks are equal after normalization.
// It is symmetric: a.Equals(b) == b.Equals(a).
func (m Modifier) Equals(other Modifier) bool {
	return m.Normalize() == other.Normalize()
}

// Has returns true if m contains all bits of mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With returns a new Modifier with the specified flags added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified flags removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no semantic modifier bits are set.
func (m Modifier) IsEmpty() bool {
	return m.Normalize() == ModNone
}

// String returns the canonical spec representation like "cmd+shift".
func (m Modifier) String() string {
	m = m.Normalize()
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCommand) {
		parts = append(parts, "cmd")
	}
	if m.Has(ModControl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModOption) {
		parts = append(parts, "opt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModFunction) {
		parts = append(parts, "fn")
	}
	if m.Has(ModCapsLock) {
		parts = append(parts, "caps")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"cmd":      ModCommand,
	"command":  ModCommand,
	"meta":     ModCommand,
	"super":    ModCommand,
	"win":      ModCommand,
	"ctrl":     ModControl,
	"control":  ModControl,
	"opt":      ModOption,
	"option":   ModOption,
	"alt":      ModOption,
	"shift":    ModShift,
	"fn":       ModFunction,
	"function": ModFunction,
	"caps":     ModCapsLock,
	"capslock": ModCapsLock,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	name = strings.ToLower(strings.TrimSpace(name))
	if m, ok := modifierNameMap[name]; ok {
		return m
	}
	return ModNone
}
