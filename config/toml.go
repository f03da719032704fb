package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads bindings from TOML files.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{fs: DefaultFS(), path: path}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{fs: fs, path: path}
}

// Load reads bindings from the configured path.
func (l *TOMLLoader) Load() (Bindings, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads bindings from a specific path.
func (l *TOMLLoader) LoadFrom(path string) (Bindings, error) {
	data, ok, err := readFile(l.fs, path)
	if err != nil || !ok {
		return nil, err
	}
	return parseTOML(path, data)
}

// LoadFromReader reads bindings from a reader.
func (l *TOMLLoader) LoadFromReader(r io.Reader) (Bindings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return parseTOML("<reader>", data)
}

func parseTOML(src string, data []byte) (Bindings, error) {
	var raw map[string]rawGroup
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return bindingsFromRaw(src, raw)
}

// EncodeTOML renders bindings as a TOML document.
func EncodeTOML(b Bindings) ([]byte, error) {
	return toml.Marshal(b)
}
