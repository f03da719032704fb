package config

import (
	"fmt"

	"github.com/dshills/shortcuts"
	"github.com/dshills/shortcuts/key"
)

// yaml.v3 decodes through its own interfaces rather than
// encoding.TextUnmarshaler, and go-toml/v2 buries unmarshaling
// failures in a *toml.DecodeError that does not unwrap. Both formats
// therefore read the document into raw string shapes and convert with
// the same parse functions JSON uses, keeping the error kinds
// identical across loaders.
type rawGroup struct {
	Repeats   bool          `yaml:"repeats" toml:"repeats"`
	Shortcuts []rawShortcut `yaml:"shortcuts" toml:"shortcuts"`
}

type rawShortcut struct {
	Key       string            `yaml:"key" toml:"key"`
	Modifiers map[string]string `yaml:"modifiers" toml:"modifiers"`
}

func bindingsFromRaw(src string, raw map[string]rawGroup) (Bindings, error) {
	b := make(Bindings, len(raw))
	for name, rg := range raw {
		g, err := groupFromRaw(rg)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: binding %q: %w", src, name, err)
		}
		b[name] = g
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return b, nil
}

func groupFromRaw(rg rawGroup) (shortcuts.Group, error) {
	g := shortcuts.Group{Repeats: rg.Repeats}
	for i, rs := range rg.Shortcuts {
		s, err := shortcutFromRaw(rs)
		if err != nil {
			return shortcuts.Group{}, fmt.Errorf("shortcut %d: %w", i, err)
		}
		g.Shortcuts = append(g.Shortcuts, s)
	}
	return g, nil
}

func shortcutFromRaw(rs rawShortcut) (shortcuts.Shortcut, error) {
	var s shortcuts.Shortcut
	if rs.Key == "" {
		return s, fmt.Errorf("missing key")
	}

	k, err := key.Parse(rs.Key)
	if err != nil {
		return s, err
	}
	s.Key = k

	for name, tag := range rs.Modifiers {
		state, err := shortcuts.ParseModifierState(tag)
		if err != nil {
			return s, fmt.Errorf("modifier %q: %w", name, err)
		}
		switch name {
		case "control":
			s.Modifiers.Control = state
		case "alt":
			s.Modifiers.Alt = state
		case "shift":
			s.Modifiers.Shift = state
		case "super":
			s.Modifiers.Super = state
		default:
			return s, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return s, nil
}
