package parameter

import "time"

// World geometry
const (
	// WorldWidth is the playfield width in world units
	WorldWidth = 960.0

	// WorldHeight is the playfield height in world units
	WorldHeight = 540.0

	// WorldMargin is the slack beyond the bounds before projectiles expire
	WorldMargin = 40.0
)

// Simulation timing
const (
	// MaxFrameDelta caps a single tick's delta in seconds
	// Prevents instability after long pauses (e.g. suspended driver)
	MaxFrameDelta = 0.05

	// HostileTimeScale is the time dilation applied to hostile entities
	// while a temporal burst is active
	HostileTimeScale = 0.5

	// TickInterval is the real-time driver's fixed tick period
	TickInterval = 16 * time.Millisecond
)

// Event queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask is the index mask derived from EventQueueSize
	EventBufferMask = EventQueueSize - 1
)
