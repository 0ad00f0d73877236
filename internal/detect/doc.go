// Package detect implements the streaming shortcut-matching engine.
//
// State is the incremental matcher: it owns the set of anticipated
// chords and the live trace, and classifies every incoming event as
// extending a valid prefix, completing a chord, or starting a fresh
// attempt. Detector wraps one State behind a mutex and adds the
// debounced auto-reset timer, making it the sole mutation entry point
// for callers.
//
// # Restart on mismatch
//
// The central policy: the engine never requires the user to release
// all keys before a new attempt. The moment the trace stops being a
// viable prefix of any anticipated chord, the trace is silently
// re-based to begin at the current event, so a valid shortcut typed
// mid-stream is still detected without an explicit reset.
//
// # Modifier-only chords
//
// Modifier changes are recorded as release steps, so a bare modifier
// press never seeds a fresh trace in the restart path. Chords that
// consist of a modifier alone are therefore not reliably detectable.
package detect
