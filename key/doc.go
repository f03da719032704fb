// Package key defines the closed set of key identifiers used by the
// shortcuts library.
//
// Each Key has a stable wire name matching the W3C code-value style
// ("KeyA", "Digit7", "ArrowLeft", "Space", "Numpad5", "ControlLeft")
// used by configuration files, and a human-readable display token
// ("A", "7", "←", "Space", "Num 5", "Ctrl") used when rendering a
// shortcut for UI.
//
// Wire names round-trip through Parse and String. Display names never
// fail: identifiers without a dedicated token fall back to their wire
// name.
//
// Modifier keys carry their physical left/right variants
// (ControlLeft, ControlRight, ...). A shortcut's logical modifier
// requirements are expressed separately, in the shortcuts package;
// naming a modifier key as a primary key is allowed and gets the
// generic single-key behavior.
package key
