package event

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// LevelUpPayload announces the new level and the mission payout applied
type LevelUpPayload struct {
	Level  int
	Payout float64
}

// EnemyKilledPayload carries kill attribution for missions and rewards
type EnemyKilledPayload struct {
	Archetype  component.Archetype
	ScoreValue float64
	MineKill   bool
	Pos        vmath.Vec2
}

// PlayerDamagedPayload carries landed (non-negated) damage
type PlayerDamagedPayload struct {
	Amount float64
	Pos    vmath.Vec2
}

// MineDetonatedPayload carries blast origin and resulting kill count
type MineDetonatedPayload struct {
	Pos   vmath.Vec2
	Kills int
}

// PickupCollectedPayload carries the collected core's kind and base value
type PickupCollectedPayload struct {
	Kind  component.PickupKind
	Value float64
	Pos   vmath.Vec2
}

// SoundRequestPayload names a cue for the audio sink
type SoundRequestPayload struct {
	Sound core.SoundType
}

// ParticleBurstPayload is a cosmetic burst request for the particle sink
type ParticleBurstPayload struct {
	Pos   vmath.Vec2
	Count int
	Color core.RGB
	Speed float64
}

// CameraShakePayload is a shake pulse request for the driver
type CameraShakePayload struct {
	Magnitude float64
	Duration  float64
}
