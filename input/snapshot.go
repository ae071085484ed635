package input

import (
	"sync"
	"time"
)

// Snapshot is the per-frame input contract consumed by the simulation
//   - IsDown is true while any of the listed actions is physically held
//   - Consume returns true at most once per physical press; the pending
//     press set is cleared by the driver's end-of-frame Reset call, so a
//     key held across many frames still activates its ability once
type Snapshot interface {
	IsDown(actions ...Action) bool
	Consume(action Action) bool
}

// Nop is the inert Snapshot used when no driver is attached; headless
// harnesses run the simulation without any input
type Nop struct{}

func (Nop) IsDown(...Action) bool { return false }
func (Nop) Consume(Action) bool   { return false }

// KeyState is the concrete Snapshot used by terminal drivers
// Terminals deliver key repeats but no release events, so "held" is
// approximated by a per-action hold window refreshed on every repeat
type KeyState struct {
	mu        sync.Mutex
	heldUntil [ActionCount]time.Time
	pressed   [ActionCount]bool
	now       func() time.Time
}

// NewKeyState creates an empty key state
func NewKeyState() *KeyState {
	return &KeyState{now: time.Now}
}

// Press records a key event for an action
// The one-shot flag is only set on a press edge (action not currently
// held), so terminal auto-repeat does not retrigger abilities
func (k *KeyState) Press(action Action, holdWindow time.Duration) {
	if action == ActionNone || action >= ActionCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.After(k.heldUntil[action]) {
		k.pressed[action] = true
	}
	k.heldUntil[action] = now.Add(holdWindow)
}

// PressRepeat records a key event whose auto-repeat also counts as a
// press edge. Drivers use it for actions that should keep activating
// while the key is held, with the ability cooldown as the rate limiter
func (k *KeyState) PressRepeat(action Action, holdWindow time.Duration) {
	if action == ActionNone || action >= ActionCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.pressed[action] = true
	k.heldUntil[action] = k.now().Add(holdWindow)
}

// IsDown reports whether any listed action is inside its hold window
func (k *KeyState) IsDown(actions ...Action) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	for _, a := range actions {
		if a < ActionCount && now.Before(k.heldUntil[a]) {
			return true
		}
	}
	return false
}

// Consume takes a pending one-shot press, at most once
func (k *KeyState) Consume(action Action) bool {
	if action >= ActionCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.pressed[action] {
		k.pressed[action] = false
		return true
	}
	return false
}

// Reset clears all pending one-shot presses; called by the driver at
// end of frame
func (k *KeyState) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := range k.pressed {
		k.pressed[i] = false
	}
}
