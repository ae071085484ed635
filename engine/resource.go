package engine

import (
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/input"
	"github.com/lixenwraith/neon-serpent/status"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// Resource holds singleton match resources, initialized during World
// creation and accessed by systems via World.Resource
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Match  *MatchState
	Player *PlayerResource
	Event  *event.EventQueue
	Status *status.Registry
	Rng    *vmath.FastRand

	// Collaborator sinks; nil-safe, the core runs headless without them
	Audio     AudioPlayer
	Particles ParticleSink

	// Input is the driver's current intent snapshot
	Input input.Snapshot
}

// TimeResource carries the current tick's timing, updated by the Ticker
// before systems run
type TimeResource struct {
	// Delta is the undilated frame delta in seconds, clamped to
	// parameter.MaxFrameDelta; governs the player, player projectiles,
	// mines and cosmetic timers
	Delta float64

	// HostileDelta is Delta scaled by the temporal-burst dilation;
	// governs enemy movement/fire, hostile projectiles, the wave clock,
	// spawn cadence and mission countdowns
	HostileDelta float64

	// Elapsed is the wave clock in dilated seconds since match start
	Elapsed float64

	// Frame is the tick counter since match start
	Frame int64
}

// ConfigResource holds the static world geometry
type ConfigResource struct {
	WorldWidth  float64
	WorldHeight float64
	Margin      float64
}

// PlayerResource pins the player entity id for direct system access
type PlayerResource struct {
	Entity core.Entity
}

// AudioPlayer is the fire-and-forget cue sink implemented by drivers
type AudioPlayer interface {
	PlayCue(sound core.SoundType)
}

// ParticleSink receives cosmetic burst requests; no feedback into
// simulation state
type ParticleSink interface {
	Burst(pos vmath.Vec2, count int, color core.RGB, speed float64)
}
