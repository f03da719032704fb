// Package shortcuts decides whether user-defined keyboard shortcuts
// fire against a per-tick keyboard state.
//
// A Shortcut is one primary key plus a modifier requirement set; a
// Group is an ordered list of alternative Shortcuts sharing one
// trigger mode. A group fires when any alternative matches.
//
// # Modifier Policy
//
// Each of the four modifiers (Control, Alt, Shift, Super) carries a
// three-state policy:
//
//   - Ignore (the default): the modifier's state does not matter
//   - RequirePressed: the modifier must be held
//   - RequireNotPressed: the modifier must not be held
//
// A logical modifier counts as held if either physical variant is held
// (ControlLeft or ControlRight satisfies Control, and so on).
//
// # Trigger Modes
//
// Repeating groups fire every tick an alternative is held; single-press
// groups fire only on the tick a key transitions from released to held,
// and not again until it is released. The newly-pressed signal is owned
// by the keyboard-state source and consumed as a pure input here.
//
// # Usage
//
//	save := shortcuts.SinglePress(key.KeyS).WithControl()
//	moveLeft := shortcuts.Repeating(key.KeyA, key.ArrowLeft)
//
//	// Once per tick, against the host's keyboard-state snapshot:
//	if save.Pressed(state) {
//		// save
//	}
//	if moveLeft.Pressed(state) {
//		// keep moving while held
//	}
//
// Groups and Shortcuts are immutable values once constructed; the
// builder methods return transformed copies. Any number of goroutines
// may evaluate the same value concurrently against a published
// read-only state snapshot.
//
// # Display
//
//	shortcuts.SinglePress(key.KeyS).WithControl().String() // "Ctrl + S"
//	shortcuts.Repeating(key.KeyA, key.ArrowLeft).String()  // "A, ←"
//
// Only RequirePressed modifiers render; RequireNotPressed is a
// matching-only constraint with no visual representation.
package shortcuts
