package chord

import "strings"

// Chord is the canonical representation of a target keystroke
// combination: a normalized modifier mask plus an ordered list of key
// codes. Chords are treated as immutable once constructed.
type Chord struct {
	// Mods is the normalized modifier mask.
	Mods Modifier

	// Keys contains the key codes in press order.
	Keys []Code
}

// New creates a chord from a modifier mask and key codes. The mask is
// normalized here; this is the only place normalization must be
// guaranteed, since chords are compared directly by value elsewhere.
func New(mods Modifier, keys ...Code) Chord {
	ks := make([]Code, len(keys))
	copy(ks, keys)
	return Chord{
		Mods: mods.Normalize(),
		Keys: ks,
	}
}

// IsEmpty returns true if the chord has no keys and no modifiers.
func (c Chord) IsEmpty() bool {
	return len(c.Keys) == 0 && c.Mods.Normalize() == ModNone
}

// Len returns the number of keys in the chord.
func (c Chord) Len() int {
	return len(c.Keys)
}

// Contains reports whether candidate is a valid-so-far prefix of c:
// the masks are equal and every candidate key matches c's key at the
// same position.
func (c Chord) Contains(candidate Chord) bool {
	if !c.Mods.Equals(candidate.Mods) {
		return false
	}
	if len(candidate.Keys) > len(c.Keys) {
		return false
	}
	for i, k := range candidate.Keys {
		if c.Keys[i] != k {
			return false
		}
	}
	return true
}

// Matches reports whether other is exactly equal to c: same normalized
// mask, same key count, same keys in the same order.
func (c Chord) Matches(other Chord) bool {
	if !c.Mods.Equals(other.Mods) {
		return false
	}
	if len(c.Keys) != len(other.Keys) {
		return false
	}
	for i, k := range c.Keys {
		if other.Keys[i] != k {
			return false
		}
	}
	return true
}

// SortPriority defines a deterministic presentation order over chords.
// It is never used for match decisions.
func (c Chord) SortPriority() uint64 {
	p := uint64(c.Mods)
	for i, k := range c.Keys {
		p += uint64(i+1) * uint64(k)
	}
	return p
}

// Clone returns a copy of the chord with its own key slice.
func (c Chord) Clone() Chord {
	return New(c.Mods, c.Keys...)
}

// String returns the canonical spec representation, e.g.
// "cmd+shift+a a". Modifiers render on the first key token only.
func (c Chord) String() string {
	mods := c.Mods.String()
	if len(c.Keys) == 0 {
		return mods
	}

	parts := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		parts[i] = k.String()
	}
	if mods != "" {
		parts[0] = mods + "+" + parts[0]
	}
	return strings.Join(parts, " ")
}
