package engine

import "github.com/lixenwraith/neon-serpent/event"

// System is one resolver in the fixed per-tick pipeline
// Update runs once per tick in Priority order (lower first); HandleEvent
// receives the routed events consumed at the start of the tick
type System interface {
	// Name identifies the system in telemetry keys
	Name() string

	// Priority orders execution within a tick, lower runs first
	Priority() int

	// EventTypes lists the event types routed to HandleEvent
	EventTypes() []event.EventType

	// HandleEvent processes one routed event
	HandleEvent(ev event.GameEvent)

	// Update advances the system by the current tick's deltas
	Update()
}
