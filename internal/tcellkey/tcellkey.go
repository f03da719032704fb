// Package tcellkey translates tcell key events into shortcut key
// state.
//
// Terminals deliver key presses but no releases, so an event cannot
// drive a persistent tracker. Instead each event becomes a one-tick
// snapshot: the translated key reads as held and newly pressed, and
// the event's modifier mask reads as held.
package tcellkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/key"
	"github.com/dshills/shortcuts/keystate"
)

// State builds a one-tick keyboard state for a tcell key event.
// Returns false for events with no mapping to the key enumeration.
func State(ev *tcell.EventKey) (keystate.Snapshot, bool) {
	k, ok := Translate(ev)
	if !ok {
		return keystate.Snapshot{}, false
	}

	t := keystate.NewTracker()
	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		t.Press(key.ControlLeft)
	}
	if mods&tcell.ModAlt != 0 {
		t.Press(key.AltLeft)
	}
	if mods&tcell.ModShift != 0 {
		t.Press(key.ShiftLeft)
	}
	if mods&tcell.ModMeta != 0 {
		t.Press(key.SuperLeft)
	}
	t.Press(k)
	return t.Snapshot(), true
}

// Translate converts a tcell key event to a key identifier. Control
// characters map back to the letter they encode (Ctrl+S arrives as the
// control character 0x13).
func Translate(ev *tcell.EventKey) (key.Key, bool) {
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		return fromRune(ev.Rune())
	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		return key.F1 + key.Key(k-tcell.KeyF1), true
	}

	switch k {
	case tcell.KeyCtrlSpace:
		return key.Space, true
	case tcell.KeyEscape:
		return key.Escape, true
	case tcell.KeyEnter:
		return key.Enter, true
	case tcell.KeyTab:
		return key.Tab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Backspace, true
	case tcell.KeyDelete:
		return key.Delete, true
	case tcell.KeyInsert:
		return key.Insert, true
	case tcell.KeyHome:
		return key.Home, true
	case tcell.KeyEnd:
		return key.End, true
	case tcell.KeyPgUp:
		return key.PageUp, true
	case tcell.KeyPgDn:
		return key.PageDown, true
	case tcell.KeyUp:
		return key.ArrowUp, true
	case tcell.KeyDown:
		return key.ArrowDown, true
	case tcell.KeyLeft:
		return key.ArrowLeft, true
	case tcell.KeyRight:
		return key.ArrowRight, true
	}

	// Remaining control characters are Ctrl+letter chords.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.KeyA + key.Key(k-tcell.KeyCtrlA), true
	}
	return key.None, false
}

func fromRune(r rune) (key.Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return key.KeyA + key.Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return key.KeyA + key.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return key.Digit0 + key.Key(r-'0'), true
	}

	switch r {
	case ' ':
		return key.Space, true
	case '`':
		return key.Backquote, true
	case '\\':
		return key.Backslash, true
	case '[':
		return key.BracketLeft, true
	case ']':
		return key.BracketRight, true
	case ',':
		return key.Comma, true
	case '=':
		return key.Equal, true
	case '-':
		return key.Minus, true
	case '.':
		return key.Period, true
	case '\'':
		return key.Quote, true
	case ';':
		return key.Semicolon, true
	case '/':
		return key.Slash, true
	}
	return key.None, false
}
