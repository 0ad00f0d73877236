// Package chord provides the value types for keyboard shortcut detection.
//
// This package defines the fundamental types the detection engine operates on:
//
//   - Modifier: A 64-bit modifier flag set with platform overhead stripping
//   - Code: A 16-bit platform virtual key code
//   - Chord: A normalized target combination (modifier mask + ordered key codes)
//   - Trace: The live, unnormalized record of the in-progress event stream
//   - Event: A raw input event (key down, key up, flags changed)
//
// # Normalization
//
// Platform event sources report modifier flags with bits that carry no
// shortcut semantics: device-dependent left/right key distinctions, the
// non-coalesced bit, the numeric-pad bit, and the secondary-function bit.
// Chord construction strips these, and all mask comparisons happen on the
// stripped form, so two chords built from differently noisy sources still
// compare equal.
//
// # Chord Specifications
//
// Chords can be written as spec strings and parsed with Parse:
//
//   - Single key: "a", "escape", "f5"
//   - With modifiers: "cmd+shift+a"
//   - Multi-key sequences: "cmd+shift+a a", "ctrl+x ctrl+s"
//
// Modifiers named on any key token apply to the whole chord; a chord has
// one modifier mask, not one per key.
package chord
