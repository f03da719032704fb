package shortcuts

import (
	"fmt"
	"strings"

	"github.com/dshills/shortcuts/key"
)

// Group is an ordered list of alternative Shortcuts sharing one
// trigger mode. The group fires when any alternative matches; order
// affects only display, never the boolean result.
//
// Construct groups with SinglePress or Repeating, which are the only
// places the trigger mode is set. The zero value is a valid group that
// never fires ("no binding configured").
type Group struct {
	// Repeats selects the trigger mode for every alternative: true
	// fires each tick a shortcut is held, false fires once per
	// press-release cycle.
	Repeats bool `json:"repeats" yaml:"repeats" toml:"repeats"`

	// Shortcuts are the alternatives, in display order.
	Shortcuts []Shortcut `json:"shortcuts" yaml:"shortcuts" toml:"shortcuts"`
}

// SinglePress creates a group that fires once per press-release cycle,
// with one ignore-all-modifiers alternative per key.
func SinglePress(keys ...key.Key) Group {
	return newGroup(false, keys)
}

// Repeating creates a group that fires every tick a key is held, with
// one ignore-all-modifiers alternative per key.
func Repeating(keys ...key.Key) Group {
	return newGroup(true, keys)
}

func newGroup(repeats bool, keys []key.Key) Group {
	alts := make([]Shortcut, 0, len(keys))
	for _, k := range keys {
		alts = append(alts, Shortcut{Key: k})
	}
	return Group{Repeats: repeats, Shortcuts: alts}
}

// Pressed reports whether any alternative matches the keyboard state
// under the group's trigger mode. Alternatives are tried in order with
// a short circuit on the first match; an empty group never fires.
func (g Group) Pressed(ks KeyState) bool {
	for _, s := range g.Shortcuts {
		if g.Repeats {
			if s.Pressed(ks) {
				return true
			}
		} else if s.JustPressed(ks) {
			return true
		}
	}
	return false
}

// withModifier returns a copy of the group with one modifier slot
// rewritten on every alternative. The alternative slice is cloned so
// the receiver and its copies never share mutable state.
func (g Group) withModifier(set func(*Modifiers)) Group {
	alts := make([]Shortcut, len(g.Shortcuts))
	copy(alts, g.Shortcuts)
	for i := range alts {
		set(&alts[i].Modifiers)
	}
	g.Shortcuts = alts
	return g
}

// WithControl requires Control to be held for every alternative.
// Setters overwrite only their own slot; calling one twice, or after
// its Without counterpart, keeps the last value.
func (g Group) WithControl() Group {
	return g.withModifier(func(m *Modifiers) { m.Control = RequirePressed })
}

// WithoutControl requires Control to not be held for every
// alternative. Useful to keep "S" distinct from "Ctrl+S".
func (g Group) WithoutControl() Group {
	return g.withModifier(func(m *Modifiers) { m.Control = RequireNotPressed })
}

// WithAlt requires Alt to be held for every alternative.
func (g Group) WithAlt() Group {
	return g.withModifier(func(m *Modifiers) { m.Alt = RequirePressed })
}

// WithoutAlt requires Alt to not be held for every alternative.
func (g Group) WithoutAlt() Group {
	return g.withModifier(func(m *Modifiers) { m.Alt = RequireNotPressed })
}

// WithShift requires Shift to be held for every alternative.
func (g Group) WithShift() Group {
	return g.withModifier(func(m *Modifiers) { m.Shift = RequirePressed })
}

// WithoutShift requires Shift to not be held for every alternative.
func (g Group) WithoutShift() Group {
	return g.withModifier(func(m *Modifiers) { m.Shift = RequireNotPressed })
}

// WithSuper requires Super to be held for every alternative.
func (g Group) WithSuper() Group {
	return g.withModifier(func(m *Modifiers) { m.Super = RequirePressed })
}

// WithoutSuper requires Super to not be held for every alternative.
func (g Group) WithoutSuper() Group {
	return g.withModifier(func(m *Modifiers) { m.Super = RequireNotPressed })
}

// String renders the alternatives joined by ", ", preserving order,
// like "Ctrl + S" or "A, ←".
func (g Group) String() string {
	parts := make([]string, 0, len(g.Shortcuts))
	for _, s := range g.Shortcuts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

// Validate checks that every alternative names a primary key. Decoded
// configuration goes through this so a shortcut object without a key
// field is reported instead of silently never matching.
func (g Group) Validate() error {
	for i, s := range g.Shortcuts {
		if s.Key == key.None {
			return fmt.Errorf("shortcut %d: missing key", i)
		}
	}
	return nil
}
