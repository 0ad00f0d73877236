package config

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads a shortcut set from the source.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (*Config, error)
}

// FileLoader is the interface for loaders that read from files.
type FileLoader interface {
	Loader
	// LoadFrom reads a shortcut set from a specific path.
	LoadFrom(path string) (*Config, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// decodeFunc parses raw bytes into a Config.
type decodeFunc func(data []byte, cfg *Config) error

// fileLoader loads a shortcut set from a file with a fixed decoder.
type fileLoader struct {
	fs     FileSystem
	path   string
	format string
	decode decodeFunc
}

// NewTOMLLoader creates a loader for a TOML shortcut-set file.
func NewTOMLLoader(path string) FileLoader {
	return &fileLoader{fs: DefaultFS(), path: path, format: "toml", decode: decodeTOML}
}

// NewYAMLLoader creates a loader for a YAML shortcut-set file.
func NewYAMLLoader(path string) FileLoader {
	return &fileLoader{fs: DefaultFS(), path: path, format: "yaml", decode: decodeYAML}
}

// NewJSONLoader creates a loader for a JSON shortcut-set file.
func NewJSONLoader(path string) FileLoader {
	return &fileLoader{fs: DefaultFS(), path: path, format: "json", decode: decodeJSON}
}

// Load reads the shortcut set from the configured path.
func (l *fileLoader) Load() (*Config, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads a shortcut set from a specific path.
func (l *fileLoader) LoadFrom(path string) (*Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := l.decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s config %s: %w", l.format, path, err)
	}
	return &cfg, nil
}

// LoadReader reads a shortcut set from a reader using the loader's
// format.
func (l *fileLoader) LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := l.decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s config: %w", l.format, err)
	}
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	return toml.Unmarshal(data, cfg)
}

func decodeYAML(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

func decodeJSON(data []byte, cfg *Config) error {
	return json.Unmarshal(data, cfg)
}

// LoadFile loads a shortcut-set file, picking the decoder from the
// file extension (.toml, .yaml/.yml, .json).
func LoadFile(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return NewTOMLLoader(path).Load()
	case ".yaml", ".yml":
		return NewYAMLLoader(path).Load()
	case ".json":
		return NewJSONLoader(path).Load()
	default:
		return nil, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}
