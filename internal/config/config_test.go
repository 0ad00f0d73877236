package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/keychord/internal/chord"
	"github.com/dshills/keychord/internal/detect"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

const tomlConfig = `
name = "editor"
auto_reset_ms = 200

[[shortcuts]]
name = "save"
keys = "cmd+s"

[[shortcuts]]
name = "go-top"
keys = "g g"
`

const yamlConfig = `
name: editor
auto_reset_ms: 200
shortcuts:
  - name: save
    keys: cmd+s
  - name: go-top
    keys: g g
`

const jsonConfig = `{
  "name": "editor",
  "autoResetMs": 200,
  "shortcuts": [
    {"name": "save", "keys": "cmd+s"},
    {"name": "go-top", "keys": "g g"}
  ]
}`

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"shortcuts.toml", tomlConfig},
		{"shortcuts.yaml", yamlConfig},
		{"shortcuts.json", jsonConfig},
	}

	for _, tt := range tests {
		path := writeFile(t, tt.file, tt.content)
		cfg, err := LoadFile(path)
		if err != nil {
			t.Errorf("%s: LoadFile: %v", tt.file, err)
			continue
		}
		if cfg.Name != "editor" {
			t.Errorf("%s: Name = %q, want %q", tt.file, cfg.Name, "editor")
		}
		if cfg.AutoResetMs != 200 {
			t.Errorf("%s: AutoResetMs = %d, want 200", tt.file, cfg.AutoResetMs)
		}
		if len(cfg.Shortcuts) != 2 {
			t.Errorf("%s: %d shortcuts, want 2", tt.file, len(cfg.Shortcuts))
		}
	}
}

func TestLoadFileMissingIsNotError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if cfg != nil {
		t.Errorf("missing file should yield nil config, got %+v", cfg)
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	if _, err := LoadFile("shortcuts.ini"); err == nil {
		t.Error("unsupported extension should be an error")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeFile(t, "bad.toml", "shortcuts = {{{")
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed file should be an error")
	}
}

func TestCompile(t *testing.T) {
	cfg := &Config{Shortcuts: []Shortcut{
		{Name: "save", Keys: "cmd+s"},
		{Name: "go-top", Keys: "g g"},
	}}

	compiled, err := cfg.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(compiled) != 2 {
		t.Fatalf("compiled %d chords, want 2", len(compiled))
	}
	if !compiled[0].Chord.Matches(chord.MustParse("cmd+s")) {
		t.Errorf("compiled[0] = %s, want cmd+s", compiled[0].Chord)
	}

	if got := NameOf(compiled, chord.MustParse("g g")); got != "go-top" {
		t.Errorf("NameOf = %q, want %q", got, "go-top")
	}
	if got := NameOf(compiled, chord.MustParse("q")); got != "" {
		t.Errorf("NameOf for unknown chord = %q, want empty", got)
	}

	chords := Chords(compiled)
	if len(chords) != 2 {
		t.Errorf("Chords returned %d, want 2", len(chords))
	}
}

func TestCompileBadSpec(t *testing.T) {
	cfg := &Config{Shortcuts: []Shortcut{{Name: "broken", Keys: "hyper+q"}}}
	if _, err := cfg.Compile(); err == nil {
		t.Error("unknown modifier should fail to compile")
	}
}

func TestCompileDuplicate(t *testing.T) {
	cfg := &Config{Shortcuts: []Shortcut{
		{Name: "one", Keys: "cmd+s"},
		{Name: "two", Keys: "cmd+s"},
	}}
	if _, err := cfg.Compile(); err == nil {
		t.Error("duplicate chords should fail to compile")
	}
}

func TestAutoResetInterval(t *testing.T) {
	cfg := &Config{AutoResetMs: 200}
	if got := cfg.AutoResetInterval(); got != 200*time.Millisecond {
		t.Errorf("AutoResetInterval = %v, want 200ms", got)
	}

	cfg = &Config{}
	if got := cfg.AutoResetInterval(); got != detect.DefaultAutoResetInterval {
		t.Errorf("unset AutoResetInterval = %v, want engine default", got)
	}
}
