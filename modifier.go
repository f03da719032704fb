package shortcuts

import (
	"fmt"
	"strings"

	"github.com/dshills/shortcuts/key"
)

// ModifierState is the requirement placed on one modifier key.
type ModifierState uint8

const (
	// Ignore matches regardless of the modifier's state. It is the
	// zero value and the default for every modifier slot.
	Ignore ModifierState = iota

	// RequirePressed matches only while the modifier is held.
	RequirePressed

	// RequireNotPressed matches only while the modifier is not held.
	RequireNotPressed
)

// Satisfied reports whether the modifier's current physical state
// meets this requirement.
func (s ModifierState) Satisfied(pressed bool) bool {
	switch s {
	case RequirePressed:
		return pressed
	case RequireNotPressed:
		return !pressed
	default:
		return true
	}
}

// String returns the wire tag for the state.
func (s ModifierState) String() string {
	switch s {
	case Ignore:
		return "Ignore"
	case RequirePressed:
		return "RequirePressed"
	case RequireNotPressed:
		return "RequireNotPressed"
	default:
		return fmt.Sprintf("ModifierState(%d)", uint8(s))
	}
}

// InvalidModifierError reports a modifier tag that is not one of the
// defined states.
type InvalidModifierError struct {
	Tag string
}

// Error implements the error interface.
func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("invalid modifier tag %q", e.Tag)
}

// ParseModifierState returns the state for a wire tag. An absent field
// already means Ignore at the schema level, but an explicit "Ignore"
// tag is accepted too; anything else returns an *InvalidModifierError.
func ParseModifierState(tag string) (ModifierState, error) {
	switch tag {
	case "Ignore":
		return Ignore, nil
	case "RequirePressed":
		return RequirePressed, nil
	case "RequireNotPressed":
		return RequireNotPressed, nil
	default:
		return Ignore, &InvalidModifierError{Tag: tag}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ModifierState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ModifierState) UnmarshalText(text []byte) error {
	parsed, err := ParseModifierState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s ModifierState) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Modifiers holds the requirement for each of the four modifier keys.
// The slots are independent; the zero value ignores everything.
type Modifiers struct {
	Control ModifierState `json:"control,omitempty" yaml:"control,omitempty" toml:"control,omitempty"`
	Alt     ModifierState `json:"alt,omitempty" yaml:"alt,omitempty" toml:"alt,omitempty"`
	Shift   ModifierState `json:"shift,omitempty" yaml:"shift,omitempty" toml:"shift,omitempty"`
	Super   ModifierState `json:"super,omitempty" yaml:"super,omitempty" toml:"super,omitempty"`
}

// IsZero reports whether every slot is Ignore. Encoders use it to omit
// the modifiers object entirely.
func (m Modifiers) IsZero() bool {
	return m == Modifiers{}
}

// Satisfied reports whether the keyboard state meets all four
// requirements. Either physical variant satisfies a logical modifier.
func (m Modifiers) Satisfied(ks KeyState) bool {
	return m.Control.Satisfied(eitherPressed(ks, key.ControlLeft, key.ControlRight)) &&
		m.Alt.Satisfied(eitherPressed(ks, key.AltLeft, key.AltRight)) &&
		m.Shift.Satisfied(eitherPressed(ks, key.ShiftLeft, key.ShiftRight)) &&
		m.Super.Satisfied(eitherPressed(ks, key.SuperLeft, key.SuperRight))
}

func eitherPressed(ks KeyState, left, right key.Key) bool {
	return ks.Pressed(left) || ks.Pressed(right)
}

// String renders the required modifiers in canonical order, like
// "Ctrl + Shift". Ignore and RequireNotPressed slots render nothing;
// the empty string means no modifier is required to be held.
func (m Modifiers) String() string {
	var parts []string
	if m.Control == RequirePressed {
		parts = append(parts, "Ctrl")
	}
	if m.Alt == RequirePressed {
		parts = append(parts, "Alt")
	}
	if m.Shift == RequirePressed {
		parts = append(parts, "Shift")
	}
	if m.Super == RequirePressed {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, " + ")
}
