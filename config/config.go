// Package config decodes and encodes shortcut bindings in JSON, TOML,
// and YAML.
//
// A bindings document maps action names to shortcut groups:
//
//	{
//	  "move_left": {"repeats": true, "shortcuts": [{"key": "KeyA"}, {"key": "ArrowLeft"}]},
//	  "save": {"repeats": false, "shortcuts": [{"key": "KeyS", "modifiers": {"control": "RequirePressed"}}]}
//	}
//
// An absent modifiers field, or an absent slot within it, means
// Ignore. Unrecognized key names and malformed modifier tags are
// decode errors, never silent defaults; test for them with errors.As
// against *key.UnknownKeyError and *shortcuts.InvalidModifierError.
package config

import (
	"fmt"
	"os"

	"github.com/dshills/shortcuts"
)

// Bindings maps action names to shortcut groups.
type Bindings map[string]shortcuts.Group

// Validate checks every group for alternatives without a primary key.
func (b Bindings) Validate() error {
	for name, g := range b {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("binding %q: %w", name, err)
		}
	}
	return nil
}

// Loader is the interface for bindings loaders.
type Loader interface {
	// Load reads bindings from the source. Returns nil, nil if the
	// source doesn't exist (not an error).
	Load() (Bindings, error)
}

// FileSystem is an abstraction for file reads, so loaders can be
// tested against in-memory files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// readFile reads a bindings file, treating a missing file as an empty
// source per the Loader contract.
func readFile(fs FileSystem, path string) ([]byte, bool, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	return data, true, nil
}
