package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads bindings from YAML files.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{fs: DefaultFS(), path: path}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{fs: fs, path: path}
}

// Load reads bindings from the configured path.
func (l *YAMLLoader) Load() (Bindings, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads bindings from a specific path.
func (l *YAMLLoader) LoadFrom(path string) (Bindings, error) {
	data, ok, err := readFile(l.fs, path)
	if err != nil || !ok {
		return nil, err
	}
	return parseYAML(path, data)
}

// LoadFromReader reads bindings from a reader.
func (l *YAMLLoader) LoadFromReader(r io.Reader) (Bindings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return parseYAML("<reader>", data)
}

func parseYAML(src string, data []byte) (Bindings, error) {
	var raw map[string]rawGroup
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return bindingsFromRaw(src, raw)
}

// EncodeYAML renders bindings as a YAML document.
func EncodeYAML(b Bindings) ([]byte, error) {
	return yaml.Marshal(b)
}
