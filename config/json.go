package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSONLoader loads bindings from JSON files.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a JSON loader for the given path.
func NewJSONLoader(path string) *JSONLoader {
	return &JSONLoader{fs: DefaultFS(), path: path}
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fs, path: path}
}

// Load reads bindings from the configured path.
func (l *JSONLoader) Load() (Bindings, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads bindings from a specific path.
func (l *JSONLoader) LoadFrom(path string) (Bindings, error) {
	data, ok, err := readFile(l.fs, path)
	if err != nil || !ok {
		return nil, err
	}
	return parseJSON(path, data)
}

// LoadFromReader reads bindings from a reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (Bindings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return parseJSON("<reader>", data)
}

func parseJSON(src string, data []byte) (Bindings, error) {
	var b Bindings
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return b, nil
}

// EncodeJSON renders bindings as indented JSON. Ignore-state modifier
// slots are omitted, so decode-encode reproduces an equivalent
// document.
func EncodeJSON(b Bindings) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// Extract decodes the bindings found at a dotted path inside a larger
// JSON document, for hosts that keep shortcut bindings as one section
// of their configuration.
func Extract(doc []byte, path string) (Bindings, error) {
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return nil, fmt.Errorf("no bindings at path %q", path)
	}
	return parseJSON(path, []byte(res.Raw))
}

// Embed re-encodes bindings into an existing JSON document at a dotted
// path, replacing whatever was there, and returns the updated
// document.
func Embed(doc []byte, path string, b Bindings) ([]byte, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding bindings: %w", err)
	}
	out, err := sjson.SetRawBytes(doc, path, raw)
	if err != nil {
		return nil, fmt.Errorf("updating document at %q: %w", path, err)
	}
	return out, nil
}
