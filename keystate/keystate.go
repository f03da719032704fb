// Package keystate tracks which keys are held and which were newly
// pressed this tick, for hosts that do not already have a keyboard
// state source.
//
// The host feeds Press and Release as its input events arrive and
// calls Tick once per frame to expire the newly-pressed edges. Matching
// runs against a Snapshot, a read-only copy that stays stable while
// the tracker keeps moving.
package keystate

import "github.com/dshills/shortcuts/key"

// Tracker accumulates keyboard state across ticks. It is not
// synchronized; drive it from the input goroutine and hand Snapshots
// to everyone else.
type Tracker struct {
	held        map[key.Key]bool
	justPressed map[key.Key]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		held:        make(map[key.Key]bool),
		justPressed: make(map[key.Key]bool),
	}
}

// Press marks a key as held. The newly-pressed edge is set only on a
// released-to-held transition, so auto-repeat events from the host do
// not re-fire single-press shortcuts.
func (t *Tracker) Press(k key.Key) {
	if !t.held[k] {
		t.justPressed[k] = true
	}
	t.held[k] = true
}

// Release marks a key as no longer held. The newly-pressed edge
// survives until Tick, so a press and release arriving within the same
// tick still reads as just-pressed once.
func (t *Tracker) Release(k key.Key) {
	delete(t.held, k)
}

// Tick advances one frame: newly-pressed edges expire, held keys stay
// held.
func (t *Tracker) Tick() {
	clear(t.justPressed)
}

// Clear releases every key.
func (t *Tracker) Clear() {
	clear(t.held)
	clear(t.justPressed)
}

// Pressed reports whether the key is currently held.
func (t *Tracker) Pressed(k key.Key) bool {
	return t.held[k]
}

// JustPressed reports whether the key was newly pressed this tick.
func (t *Tracker) JustPressed(k key.Key) bool {
	return t.justPressed[k]
}

// Snapshot returns a stable read-only copy of the current state.
// Later tracker updates do not affect it, so it may be read
// concurrently for the rest of the tick.
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{
		held:        make(map[key.Key]bool, len(t.held)),
		justPressed: make(map[key.Key]bool, len(t.justPressed)),
	}
	for k := range t.held {
		s.held[k] = true
	}
	for k := range t.justPressed {
		s.justPressed[k] = true
	}
	return s
}

// Snapshot is an immutable keyboard state for one tick. The zero value
// reports every key released.
type Snapshot struct {
	held        map[key.Key]bool
	justPressed map[key.Key]bool
}

// Pressed reports whether the key was held when the snapshot was
// taken.
func (s Snapshot) Pressed(k key.Key) bool {
	return s.held[k]
}

// JustPressed reports whether the key was newly pressed on the
// snapshot's tick.
func (s Snapshot) JustPressed(k key.Key) bool {
	return s.justPressed[k]
}
