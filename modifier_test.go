package shortcuts_test

import (
	"errors"
	"testing"

	"github.com/dshills/shortcuts"
	"github.com/dshills/shortcuts/key"
	"github.com/dshills/shortcuts/keystate"
)

func TestModifierStateSatisfied(t *testing.T) {
	tests := []struct {
		state      shortcuts.ModifierState
		pressed    bool
		notPressed bool
	}{
		{shortcuts.Ignore, true, true},
		{shortcuts.RequirePressed, true, false},
		{shortcuts.RequireNotPressed, false, true},
	}

	for _, tt := range tests {
		if got := tt.state.Satisfied(true); got != tt.pressed {
			t.Errorf("%v.Satisfied(true) = %v, want %v", tt.state, got, tt.pressed)
		}
		if got := tt.state.Satisfied(false); got != tt.notPressed {
			t.Errorf("%v.Satisfied(false) = %v, want %v", tt.state, got, tt.notPressed)
		}
	}
}

// RequirePressed and RequireNotPressed partition the physical states:
// for either physical state exactly one of them is satisfied.
func TestRequireStatesPartition(t *testing.T) {
	for _, pressed := range []bool{true, false} {
		req := shortcuts.RequirePressed.Satisfied(pressed)
		not := shortcuts.RequireNotPressed.Satisfied(pressed)
		if req == not {
			t.Errorf("pressed=%v: RequirePressed=%v and RequireNotPressed=%v should disagree",
				pressed, req, not)
		}
	}
}

func TestParseModifierState(t *testing.T) {
	tests := []struct {
		tag  string
		want shortcuts.ModifierState
	}{
		{"Ignore", shortcuts.Ignore},
		{"RequirePressed", shortcuts.RequirePressed},
		{"RequireNotPressed", shortcuts.RequireNotPressed},
	}

	for _, tt := range tests {
		got, err := shortcuts.ParseModifierState(tt.tag)
		if err != nil {
			t.Errorf("ParseModifierState(%q) error: %v", tt.tag, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModifierState(%q) = %v, want %v", tt.tag, got, tt.want)
		}
		if got.String() != tt.tag {
			t.Errorf("String() = %q, want %q", got.String(), tt.tag)
		}
	}
}

func TestParseModifierStateInvalid(t *testing.T) {
	for _, tag := range []string{"", "required", "RequireBoth", "ignore"} {
		_, err := shortcuts.ParseModifierState(tag)
		if err == nil {
			t.Errorf("ParseModifierState(%q) should fail", tag)
			continue
		}
		var merr *shortcuts.InvalidModifierError
		if !errors.As(err, &merr) {
			t.Errorf("error = %T, want *InvalidModifierError", err)
		} else if merr.Tag != tag {
			t.Errorf("InvalidModifierError.Tag = %q, want %q", merr.Tag, tag)
		}
	}
}

func TestModifiersSatisfiedEitherVariant(t *testing.T) {
	mods := shortcuts.Modifiers{Control: shortcuts.RequirePressed}

	for _, physical := range []key.Key{key.ControlLeft, key.ControlRight} {
		tr := keystate.NewTracker()
		tr.Press(physical)
		if !mods.Satisfied(tr) {
			t.Errorf("%v should satisfy the Control requirement", physical)
		}
	}

	tr := keystate.NewTracker()
	if mods.Satisfied(tr) {
		t.Error("Control requirement should fail with nothing held")
	}
}

func TestModifiersIsZero(t *testing.T) {
	if !(shortcuts.Modifiers{}).IsZero() {
		t.Error("zero Modifiers should be zero")
	}
	if (shortcuts.Modifiers{Shift: shortcuts.RequireNotPressed}).IsZero() {
		t.Error("a set slot should make Modifiers non-zero")
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods shortcuts.Modifiers
		want string
	}{
		{shortcuts.Modifiers{}, ""},
		{shortcuts.Modifiers{Control: shortcuts.RequirePressed}, "Ctrl"},
		{shortcuts.Modifiers{
			Control: shortcuts.RequirePressed,
			Alt:     shortcuts.RequirePressed,
			Shift:   shortcuts.RequirePressed,
			Super:   shortcuts.RequirePressed,
		}, "Ctrl + Alt + Shift + Super"},
		// RequireNotPressed constrains matching but never renders.
		{shortcuts.Modifiers{
			Shift: shortcuts.RequirePressed,
			Alt:   shortcuts.RequireNotPressed,
		}, "Shift"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
