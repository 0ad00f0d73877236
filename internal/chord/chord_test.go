package chord

import (
	"encoding/json"
	"testing"
)

func TestNewNormalizesMask(t *testing.T) {
	c := New(ModCommand|ModNumericPad|0x0102, CodeA)
	if c.Mods != ModCommand {
		t.Errorf("New should normalize mask, got %#x", uint64(c.Mods))
	}
}

func TestNewCopiesKeys(t *testing.T) {
	keys := []Code{CodeA, CodeB}
	c := New(ModNone, keys...)
	keys[0] = CodeZ
	if c.Keys[0] != CodeA {
		t.Error("New should copy the key slice")
	}
}

func TestChordIsEmpty(t *testing.T) {
	if !New(ModNone).IsEmpty() {
		t.Error("chord with no keys and no mask should be empty")
	}
	if New(ModCommand).IsEmpty() {
		t.Error("chord with a mask should not be empty")
	}
	if New(ModNone, CodeA).IsEmpty() {
		t.Error("chord with keys should not be empty")
	}
}

func TestChordContains(t *testing.T) {
	target := New(ModCommand|ModShift, CodeA, CodeA)

	tests := []struct {
		name      string
		candidate Chord
		want      bool
	}{
		{"empty trace same mask", New(ModCommand | ModShift), true},
		{"one key prefix", New(ModCommand|ModShift, CodeA), true},
		{"full match", New(ModCommand|ModShift, CodeA, CodeA), true},
		{"wrong key", New(ModCommand|ModShift, CodeB), false},
		{"too long", New(ModCommand|ModShift, CodeA, CodeA, CodeA), false},
		{"wrong mask", New(ModCommand, CodeA), false},
		{"noisy mask still contained", New(ModCommand|ModShift|ModNumericPad, CodeA), true},
	}

	for _, tt := range tests {
		if got := target.Contains(tt.candidate); got != tt.want {
			t.Errorf("%s: Contains() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestChordMatches(t *testing.T) {
	target := New(ModCommand|ModShift, CodeA, CodeA)

	tests := []struct {
		name  string
		other Chord
		want  bool
	}{
		{"exact", New(ModCommand|ModShift, CodeA, CodeA), true},
		{"prefix only", New(ModCommand|ModShift, CodeA), false},
		{"wrong mask", New(ModShift, CodeA, CodeA), false},
		{"wrong order", New(ModCommand|ModShift, CodeA, CodeB), false},
	}

	for _, tt := range tests {
		if got := target.Matches(tt.other); got != tt.want {
			t.Errorf("%s: Matches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatchesImpliesContains(t *testing.T) {
	chords := []Chord{
		New(ModNone, CodeA),
		New(ModCommand, CodeA, CodeB),
		New(ModCommand|ModShift, CodeA, CodeA),
		New(ModControl, CodeX, CodeS),
	}

	for _, target := range chords {
		for _, other := range chords {
			if target.Matches(other) && !target.Contains(other) {
				t.Errorf("%s matches %s but does not contain it", target, other)
			}
		}
	}
}

func TestChordSortPriority(t *testing.T) {
	c := New(ModNone, Code1, Code2)
	want := uint64(1)*uint64(Code1) + uint64(2)*uint64(Code2)
	if got := c.SortPriority(); got != want {
		t.Errorf("SortPriority() = %d, want %d", got, want)
	}

	withMask := New(ModShift, Code1, Code2)
	if got := withMask.SortPriority(); got != want+uint64(ModShift) {
		t.Errorf("SortPriority() with mask = %d, want %d", got, want+uint64(ModShift))
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		c    Chord
		want string
	}{
		{New(ModNone), ""},
		{New(ModCommand), "cmd"},
		{New(ModNone, CodeA), "a"},
		{New(ModCommand|ModShift, CodeA), "cmd+shift+a"},
		{New(ModCommand|ModShift, CodeA, CodeA), "cmd+shift+a a"},
		{New(ModControl, CodeX, CodeS), "ctrl+x s"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestChordJSONRoundTrip(t *testing.T) {
	orig := New(ModCommand|ModShift|ModNumericPad, CodeA, CodeB, CodeA)

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Chord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !orig.Matches(back) {
		t.Errorf("round trip changed chord: %s -> %s", orig, back)
	}
	if back.Mods != (ModCommand | ModShift) {
		t.Errorf("round trip mask = %#x, want normalized %#x",
			uint64(back.Mods), uint64(ModCommand|ModShift))
	}
}
