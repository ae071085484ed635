package input

// Action is a semantic input channel, decoupled from physical keys
// Drivers translate device events into actions; the core only ever
// queries actions
type Action uint8

const (
	ActionNone Action = iota

	// Continuous (held) movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Edge-triggered abilities
	ActionFirePrimary
	ActionDash
	ActionBurst
	ActionDropMine

	// Session control, consumed by the driver
	ActionPause
	ActionRestart
	ActionQuit

	ActionCount
)
