package system

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/status"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// FxSystem fans semantic gameplay events out to the presentation sinks:
// audio cues, particle bursts and the camera shake envelope
// Purely cosmetic, no feedback into simulation state; runs on the
// undilated clock so feedback stays crisp during a temporal burst
// Both sinks are optional, the core runs headless without them
type FxSystem struct {
	world *engine.World

	shakeRemaining float64
	shakeMagnitude float64
	shakeDuration  float64

	statShake *status.AtomicFloat
}

func NewFxSystem(world *engine.World) engine.System {
	return &FxSystem{
		world:     world,
		statShake: world.Resource.Status.Floats.Get("fx.shake"),
	}
}

func (s *FxSystem) Name() string { return "fx" }

func (s *FxSystem) Priority() int { return parameter.PriorityFx }

func (s *FxSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMatchReset,
		event.EventGameOver,
		event.EventLevelUp,
		event.EventEnemyKilled,
		event.EventPlayerDamaged,
		event.EventMineDetonated,
		event.EventPickupCollected,
		event.EventSoundRequest,
		event.EventParticleBurst,
		event.EventCameraShake,
	}
}

func (s *FxSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMatchReset:
		s.shakeRemaining = 0
		s.shakeMagnitude = 0
		s.statShake.Set(0)

	case event.EventGameOver:
		s.playCue(core.SoundDeath)

	case event.EventLevelUp:
		s.playCue(core.SoundLevelUp)

	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			s.playCue(core.SoundKill)
			s.burst(p.Pos, 14, archetypeColor(p.Archetype), 120)
		}

	case event.EventPlayerDamaged:
		if p, ok := ev.Payload.(*event.PlayerDamagedPayload); ok {
			s.playCue(core.SoundHit)
			s.burst(p.Pos, 10, core.ColorHostile, 90)
		}

	case event.EventMineDetonated:
		if p, ok := ev.Payload.(*event.MineDetonatedPayload); ok {
			s.playCue(core.SoundExplosion)
			s.burst(p.Pos, 26, core.ColorMine, 180)
		}

	case event.EventPickupCollected:
		if p, ok := ev.Payload.(*event.PickupCollectedPayload); ok {
			s.playCue(core.SoundPickup)
			s.burst(p.Pos, 8, pickupColor(p.Kind), 70)
		}

	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.playCue(p.Sound)
		}

	case event.EventParticleBurst:
		if p, ok := ev.Payload.(*event.ParticleBurstPayload); ok {
			s.burst(p.Pos, p.Count, p.Color, p.Speed)
		}

	case event.EventCameraShake:
		if p, ok := ev.Payload.(*event.CameraShakePayload); ok {
			s.shakeMagnitude = p.Magnitude
			s.shakeDuration = p.Duration
			s.shakeRemaining = p.Duration
		}
	}
}

func (s *FxSystem) Update() {
	dt := s.world.Resource.Time.Delta

	s.world.Resource.Match.TickAnnouncement(dt)

	if s.shakeRemaining > 0 {
		s.shakeRemaining -= dt
		if s.shakeRemaining < 0 {
			s.shakeRemaining = 0
		}
	}
	if s.shakeDuration > 0 {
		s.statShake.Set(s.shakeMagnitude * (s.shakeRemaining / s.shakeDuration))
	}
}

func (s *FxSystem) playCue(sound core.SoundType) {
	if audio := s.world.Resource.Audio; audio != nil {
		audio.PlayCue(sound)
	}
}

func (s *FxSystem) burst(pos vmath.Vec2, count int, color core.RGB, speed float64) {
	if particles := s.world.Resource.Particles; particles != nil {
		particles.Burst(pos, count, color, speed)
	}
}

func archetypeColor(a component.Archetype) core.RGB {
	switch a {
	case component.ArchetypeRunner:
		return core.ColorRunner
	case component.ArchetypeTank:
		return core.ColorTank
	case component.ArchetypeSniper:
		return core.ColorSniper
	case component.ArchetypeBoss:
		return core.ColorBoss
	default:
		return core.ColorDrone
	}
}

func pickupColor(k component.PickupKind) core.RGB {
	switch k {
	case component.PickupHealth:
		return core.ColorHealth
	case component.PickupShield:
		return core.ColorShieldCore
	default:
		return core.ColorEnergy
	}
}
