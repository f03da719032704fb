package shortcuts

import (
	"github.com/dshills/shortcuts/key"
)

// KeyState is the per-tick keyboard view shortcuts are evaluated
// against. The host input system owns it; matching never mutates it.
//
// Implementations must answer false for keys they know nothing about,
// and must keep JustPressed true for exactly one tick per
// press-release cycle. Evaluating against a snapshot that is stable
// for the tick is safe from any number of goroutines.
type KeyState interface {
	// Pressed reports whether the key is currently held.
	Pressed(k key.Key) bool

	// JustPressed reports whether the key transitioned from released
	// to held this tick.
	JustPressed(k key.Key) bool
}

// Shortcut is a single key combination: one primary key plus a
// modifier requirement set. It is an immutable value; most callers use
// Group and its builders instead of constructing Shortcuts directly.
type Shortcut struct {
	// Key is the primary key that must be pressed.
	Key key.Key `json:"key" yaml:"key" toml:"key"`

	// Modifiers holds the per-modifier requirements. The zero value
	// ignores all modifiers.
	Modifiers Modifiers `json:"modifiers,omitzero" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
}

// Pressed reports whether the shortcut matches in repeating mode: the
// primary key is held and all modifier requirements are met. The
// primary key is tested first; modifiers are not queried when it
// fails.
func (s Shortcut) Pressed(ks KeyState) bool {
	return ks.Pressed(s.Key) && s.Modifiers.Satisfied(ks)
}

// JustPressed reports whether the shortcut matches in single-press
// mode: the primary key was newly pressed this tick and all modifier
// requirements are met.
func (s Shortcut) JustPressed(ks KeyState) bool {
	return ks.JustPressed(s.Key) && s.Modifiers.Satisfied(ks)
}

// String renders the shortcut for UI display, like "Ctrl + S" or "←".
func (s Shortcut) String() string {
	mods := s.Modifiers.String()
	if mods == "" {
		return s.Key.DisplayName()
	}
	return mods + " + " + s.Key.DisplayName()
}
