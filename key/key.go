package key

import (
	"fmt"
	"strconv"
)

// Key identifies a keyboard key.
type Key uint16

const (
	// None represents no key. It is never a valid wire name.
	None Key = iota

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	// Arrow keys
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight

	// Navigation keys
	Home
	End
	PageUp
	PageDown
	Insert

	// Whitespace and editing keys
	Space
	Enter
	Escape
	Tab
	Backspace
	Delete

	// Punctuation row
	Backquote
	Backslash
	BracketLeft
	BracketRight
	Comma
	Equal
	Minus
	Period
	Quote
	Semicolon
	Slash

	// Lock keys
	CapsLock
	NumLock
	ScrollLock

	// System keys
	PrintScreen
	Pause
	ContextMenu

	// Numpad keys
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadSubtract
	NumpadMultiply
	NumpadDivide
	NumpadDecimal
	NumpadEnter

	// Modifier keys (left/right physical variants)
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	ShiftLeft
	ShiftRight
	SuperLeft
	SuperRight
)

// keyNames maps keys to their wire names. Letters, digits, function
// keys, and numpad digits are filled in by init.
var keyNames = map[Key]string{
	ArrowUp:        "ArrowUp",
	ArrowDown:      "ArrowDown",
	ArrowLeft:      "ArrowLeft",
	ArrowRight:     "ArrowRight",
	Home:           "Home",
	End:            "End",
	PageUp:         "PageUp",
	PageDown:       "PageDown",
	Insert:         "Insert",
	Space:          "Space",
	Enter:          "Enter",
	Escape:         "Escape",
	Tab:            "Tab",
	Backspace:      "Backspace",
	Delete:         "Delete",
	Backquote:      "Backquote",
	Backslash:      "Backslash",
	BracketLeft:    "BracketLeft",
	BracketRight:   "BracketRight",
	Comma:          "Comma",
	Equal:          "Equal",
	Minus:          "Minus",
	Period:         "Period",
	Quote:          "Quote",
	Semicolon:      "Semicolon",
	Slash:          "Slash",
	CapsLock:       "CapsLock",
	NumLock:        "NumLock",
	ScrollLock:     "ScrollLock",
	PrintScreen:    "PrintScreen",
	Pause:          "Pause",
	ContextMenu:    "ContextMenu",
	NumpadAdd:      "NumpadAdd",
	NumpadSubtract: "NumpadSubtract",
	NumpadMultiply: "NumpadMultiply",
	NumpadDivide:   "NumpadDivide",
	NumpadDecimal:  "NumpadDecimal",
	NumpadEnter:    "NumpadEnter",
	ControlLeft:    "ControlLeft",
	ControlRight:   "ControlRight",
	AltLeft:        "AltLeft",
	AltRight:       "AltRight",
	ShiftLeft:      "ShiftLeft",
	ShiftRight:     "ShiftRight",
	SuperLeft:      "SuperLeft",
	SuperRight:     "SuperRight",
}

// keysByName is the reverse of keyNames, built by init.
var keysByName map[string]Key

func init() {
	for i := 0; i < 26; i++ {
		keyNames[KeyA+Key(i)] = "Key" + string(rune('A'+i))
	}
	for i := 0; i < 10; i++ {
		keyNames[Digit0+Key(i)] = "Digit" + strconv.Itoa(i)
		keyNames[Numpad0+Key(i)] = "Numpad" + strconv.Itoa(i)
	}
	for i := 0; i < 24; i++ {
		keyNames[F1+Key(i)] = "F" + strconv.Itoa(i+1)
	}

	keysByName = make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		keysByName[name] = k
	}
}

// String returns the key's wire name, or "Key(n)" for values outside
// the enumeration.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsModifier returns true if this is a physical modifier key.
func (k Key) IsModifier() bool {
	return k >= ControlLeft && k <= SuperRight
}

// IsLetter returns true if this is a letter key.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a digit-row key.
func (k Key) IsDigit() bool {
	return k >= Digit0 && k <= Digit9
}

// IsFunctionKey returns true if this is a function key (F1-F24).
func (k Key) IsFunctionKey() bool {
	return k >= F1 && k <= F24
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= ArrowUp && k <= ArrowRight
}

// IsNumpadKey returns true if this is a numpad key.
func (k Key) IsNumpadKey() bool {
	return k >= Numpad0 && k <= NumpadEnter
}

// UnknownKeyError reports a wire name that does not identify any key.
type UnknownKeyError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key name %q", e.Name)
}

// Parse returns the Key for a wire name. Names are matched exactly;
// unrecognized names return an *UnknownKeyError rather than defaulting
// to an arbitrary key.
func Parse(name string) (Key, error) {
	if k, ok := keysByName[name]; ok {
		return k, nil
	}
	return None, &UnknownKeyError{Name: name}
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler using the wire name.
func (k Key) MarshalYAML() (any, error) {
	return k.String(), nil
}
