package chord

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptySpec       = errors.New("empty chord specification")
	ErrUnknownKey      = errors.New("unknown key name")
	ErrUnknownModifier = errors.New("unknown modifier name")
)

// Parse parses a chord specification string.
//
// A spec is one or more space-separated key tokens. Each token is a key
// name optionally prefixed by "+"-joined modifier names:
//
//	"a"
//	"cmd+shift+a"
//	"cmd+shift+a a"
//	"ctrl+x ctrl+s"
//
// Modifiers named on any token are combined into the chord's single
// modifier mask.
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	var mods Modifier
	var keys []Code

	for _, token := range strings.Fields(spec) {
		parts := strings.Split(token, "+")

		// All but the last part are modifiers.
		for _, p := range parts[:len(parts)-1] {
			mod := ModifierFromName(p)
			if mod == ModNone {
				return Chord{}, fmt.Errorf("%w: %q", ErrUnknownModifier, p)
			}
			mods = mods.With(mod)
		}

		keyPart := strings.TrimSpace(parts[len(parts)-1])
		code, ok := CodeFromName(keyPart)
		if !ok {
			return Chord{}, fmt.Errorf("%w: %q", ErrUnknownKey, keyPart)
		}
		keys = append(keys, code)
	}

	return New(mods, keys...), nil
}

// MustParse parses a spec string and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid chord spec: " + spec + ": " + err.Error())
	}
	return c
}
