package chord

import "encoding/json"

// chordJSON is the persisted form of a chord. The mask is stored
// already normalized and key order is preserved exactly.
type chordJSON struct {
	Mask uint64   `json:"mask"`
	Keys []uint16 `json:"keys"`
}

// MarshalJSON converts a chord to its persisted form.
func (c Chord) MarshalJSON() ([]byte, error) {
	keys := make([]uint16, len(c.Keys))
	for i, k := range c.Keys {
		keys[i] = uint16(k)
	}
	return json.Marshal(chordJSON{
		Mask: uint64(c.Mods.Normalize()),
		Keys: keys,
	})
}

// UnmarshalJSON parses a chord from its persisted form.
func (c *Chord) UnmarshalJSON(data []byte) error {
	var cfg chordJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}

	keys := make([]Code, len(cfg.Keys))
	for i, k := range cfg.Keys {
		keys[i] = Code(k)
	}
	*c = New(Modifier(cfg.Mask), keys...)
	return nil
}
