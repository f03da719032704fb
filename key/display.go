package key

import "strconv"

// displayNames maps keys to UI display tokens. Letters, digits,
// function keys, and numpad digits are filled in by init.
var displayNames = map[Key]string{
	ArrowUp:        "↑",
	ArrowDown:      "↓",
	ArrowLeft:      "←",
	ArrowRight:     "→",
	Home:           "Home",
	End:            "End",
	PageUp:         "PgUp",
	PageDown:       "PgDn",
	Insert:         "Insert",
	Space:          "Space",
	Enter:          "↵",
	Escape:         "Esc",
	Tab:            "⇥",
	Backspace:      "⌫",
	Delete:         "⌦",
	Backquote:      "`",
	Backslash:      `\`,
	BracketLeft:    "[",
	BracketRight:   "]",
	Comma:          ",",
	Equal:          "=",
	Minus:          "-",
	Period:         ".",
	Quote:          "'",
	Semicolon:      ";",
	Slash:          "/",
	CapsLock:       "CapsLock",
	NumLock:        "NumLock",
	ScrollLock:     "ScrollLock",
	PrintScreen:    "PrtScr",
	Pause:          "Pause",
	ContextMenu:    "Menu",
	NumpadAdd:      "Num +",
	NumpadSubtract: "Num -",
	NumpadMultiply: "Num *",
	NumpadDivide:   "Num /",
	NumpadDecimal:  "Num .",
	NumpadEnter:    "Num Enter",
	ControlLeft:    "Ctrl",
	ControlRight:   "Ctrl",
	AltLeft:        "Alt",
	AltRight:       "Alt",
	ShiftLeft:      "Shift",
	ShiftRight:     "Shift",
	SuperLeft:      "Super",
	SuperRight:     "Super",
}

func init() {
	for i := 0; i < 26; i++ {
		displayNames[KeyA+Key(i)] = string(rune('A' + i))
	}
	for i := 0; i < 10; i++ {
		displayNames[Digit0+Key(i)] = strconv.Itoa(i)
		displayNames[Numpad0+Key(i)] = "Num " + strconv.Itoa(i)
	}
	for i := 0; i < 24; i++ {
		displayNames[F1+Key(i)] = "F" + strconv.Itoa(i+1)
	}
}

// DisplayName returns the human-readable token for the key, for use in
// UI strings like "Ctrl + S". Keys without a dedicated token fall back
// to their wire name; the result is never empty.
func (k Key) DisplayName() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return k.String()
}
