// Package config loads shortcut-set configuration for the detection
// engine. Files declare named shortcuts as chord spec strings plus an
// optional auto-reset interval, in TOML, YAML, or JSON.
package config

import (
	"fmt"
	"time"

	"github.com/dshills/keychord/internal/chord"
	"github.com/dshills/keychord/internal/detect"
)

// Shortcut is one configured shortcut: a display name and the chord
// spec string that triggers it.
type Shortcut struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	Keys string `toml:"keys" yaml:"keys" json:"keys"`
}

// Config is the on-disk shortcut-set schema.
type Config struct {
	// Name identifies the shortcut set.
	Name string `toml:"name" yaml:"name" json:"name,omitempty"`

	// AutoResetMs is the detector inactivity window in milliseconds.
	// Zero or absent means the engine default.
	AutoResetMs int `toml:"auto_reset_ms" yaml:"auto_reset_ms" json:"autoResetMs,omitempty"`

	// Shortcuts are the configured shortcuts.
	Shortcuts []Shortcut `toml:"shortcuts" yaml:"shortcuts" json:"shortcuts"`
}

// AutoResetInterval returns the configured inactivity window, falling
// back to the engine default when unset.
func (c *Config) AutoResetInterval() time.Duration {
	if c.AutoResetMs <= 0 {
		return detect.DefaultAutoResetInterval
	}
	return time.Duration(c.AutoResetMs) * time.Millisecond
}

// NamedChord pairs a compiled chord with its configured name.
type NamedChord struct {
	Name  string
	Chord chord.Chord
}

// Compile resolves every shortcut's spec string into a chord.
// Unparsable specs and duplicate chords are reported with the
// offending shortcut's position and name.
func (c *Config) Compile() ([]NamedChord, error) {
	compiled := make([]NamedChord, 0, len(c.Shortcuts))

	for i, sc := range c.Shortcuts {
		parsed, err := chord.Parse(sc.Keys)
		if err != nil {
			return nil, fmt.Errorf("shortcut %d (%q): %w", i, sc.Name, err)
		}
		for _, prev := range compiled {
			if prev.Chord.Matches(parsed) {
				return nil, fmt.Errorf("shortcut %d (%q): duplicates %q", i, sc.Name, prev.Name)
			}
		}
		compiled = append(compiled, NamedChord{Name: sc.Name, Chord: parsed})
	}

	return compiled, nil
}

// Chords returns just the chords from a compiled set.
func Chords(compiled []NamedChord) []chord.Chord {
	out := make([]chord.Chord, len(compiled))
	for i, nc := range compiled {
		out[i] = nc.Chord
	}
	return out
}

// NameOf returns the configured name for a chord, or "" when the chord
// is not in the compiled set.
func NameOf(compiled []NamedChord, c chord.Chord) string {
	for _, nc := range compiled {
		if nc.Chord.Matches(c) {
			return nc.Name
		}
	}
	return ""
}
