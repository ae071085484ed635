package system

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/input"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// PlayerSystem advances the player control and ability state machine
// Runs on the undilated clock: the player is never slowed by their own
// temporal burst. Handles steering, cooldowns, ability activation,
// ordnance spawning, world wrap and the trailing body chain
type PlayerSystem struct {
	world *engine.World

	statShots *atomic.Int64
}

func NewPlayerSystem(world *engine.World) engine.System {
	return &PlayerSystem{
		world:     world,
		statShots: world.Resource.Status.Ints.Get("player.shots"),
	}
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType { return nil }

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {}

func (s *PlayerSystem) Update() {
	w := s.world
	playerID := w.Resource.Player.Entity

	pc, ok := w.Component.Player.Get(playerID)
	if !ok {
		return
	}
	motion, ok := w.Component.Motion.Get(playerID)
	if !ok {
		return
	}
	ab, _ := w.Component.Ability.Get(playerID)
	health, _ := w.Component.Health.Get(playerID)

	dt := w.Resource.Time.Delta
	in := w.Resource.Input

	// Steering: the previous target persists when no key is held
	var target vmath.Vec2
	if in.IsDown(input.ActionMoveUp) {
		target.Y -= 1
	}
	if in.IsDown(input.ActionMoveDown) {
		target.Y += 1
	}
	if in.IsDown(input.ActionMoveLeft) {
		target.X -= 1
	}
	if in.IsDown(input.ActionMoveRight) {
		target.X += 1
	}
	if !target.IsZero() {
		pc.TargetDir = target.Normalized()
	}
	pc.Facing.X = vmath.ExpApproach(pc.Facing.X, pc.TargetDir.X, parameter.PlayerTurnRate, dt)
	pc.Facing.Y = vmath.ExpApproach(pc.Facing.Y, pc.TargetDir.Y, parameter.PlayerTurnRate, dt)
	pc.Facing = pc.Facing.Normalized()

	// Cooldowns count down every tick regardless of use
	ab.PrimaryCooldown -= dt
	ab.DashCooldown -= dt
	ab.BurstCooldown -= dt
	ab.MineCooldown -= dt
	ab.DashRemaining -= dt
	ab.BurstRemaining -= dt

	// Every activation is a press edge: a key held across frames fires
	// once. Hold-to-fire ergonomics live in the driver, which turns
	// terminal auto-repeat into fresh edges for the primary
	if in.Consume(input.ActionFirePrimary) && ab.PrimaryCooldown <= 0 {
		ab.PrimaryCooldown = parameter.PrimaryCooldown
		s.firePrimary(motion.Pos, pc.Facing)
	}
	if in.Consume(input.ActionDash) && ab.DashCooldown <= 0 {
		ab.DashCooldown = parameter.DashCooldown
		ab.DashRemaining = parameter.DashDuration
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDash})
	}
	if in.Consume(input.ActionBurst) && ab.BurstCooldown <= 0 {
		ab.BurstCooldown = parameter.BurstCooldown
		ab.BurstRemaining = parameter.BurstDuration
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundBurst})
	}
	if in.Consume(input.ActionDropMine) && ab.MineCooldown <= 0 {
		ab.MineCooldown = parameter.MineCooldown
		s.dropMine(motion.Pos)
	}

	// Movement with stacking ability multipliers, wrapped at the bounds
	speed := parameter.PlayerBaseSpeed * ab.SpeedMultiplier(parameter.DashSpeedMult, parameter.BurstSpeedMult)
	motion.Vel = pc.Facing.Scale(speed)
	motion.Pos = motion.Pos.Add(motion.Vel.Scale(dt))
	motion.Pos.X = vmath.Wrap(motion.Pos.X, w.Resource.Config.WorldWidth)
	motion.Pos.Y = vmath.Wrap(motion.Pos.Y, w.Resource.Config.WorldHeight)

	if health.InvulnRemaining > 0 {
		health.InvulnRemaining -= dt
		if health.InvulnRemaining < 0 {
			health.InvulnRemaining = 0
		}
	}

	s.updateBody(playerID, motion.Pos, dt)

	w.Component.Player.Set(playerID, pc)
	w.Component.Motion.Set(playerID, motion)
	w.Component.Ability.Set(playerID, ab)
	w.Component.Health.Set(playerID, health)
}

// firePrimary emits the angular spread centered on the facing direction
func (s *PlayerSystem) firePrimary(origin, facing vmath.Vec2) {
	w := s.world
	for i := -(parameter.PrimaryProjectileCount - 1) / 2; i <= (parameter.PrimaryProjectileCount-1)/2; i++ {
		dir := facing.Rotate(float64(i) * parameter.PrimarySpreadStep)
		e := w.CreateEntity()
		w.Component.Projectile.Set(e, component.ProjectileComponent{
			Damage: parameter.PlayerProjectileDamage,
			TTL:    parameter.PlayerProjectileTTL,
		})
		w.Component.Motion.Set(e, component.MotionComponent{
			Pos:    origin,
			Vel:    dir.Scale(parameter.PlayerProjectileSpeed),
			Radius: parameter.PlayerProjectileRadius,
		})
	}
	s.statShots.Add(1)
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShoot})
}

func (s *PlayerSystem) dropMine(pos vmath.Vec2) {
	w := s.world
	e := w.CreateEntity()
	w.Component.Mine.Set(e, component.MineComponent{
		ArmRemaining: parameter.MineArmDelay,
		TTL:          parameter.MineTTL,
	})
	w.Component.Motion.Set(e, component.MotionComponent{
		Pos:    pos,
		Radius: parameter.MineRadius,
	})
}

// updateBody materializes queued growth one segment per tick and pulls
// each segment toward a point BodySpacing behind its predecessor
func (s *PlayerSystem) updateBody(playerID core.Entity, head vmath.Vec2, dt float64) {
	w := s.world
	body, ok := w.Component.Body.Get(playerID)
	if !ok {
		return
	}

	if body.PendingGrowth > 0 && len(body.Segments) > 0 {
		body.Segments = append(body.Segments, body.Segments[len(body.Segments)-1])
		body.PendingGrowth--
	}

	lead := head
	for i := range body.Segments {
		seg := body.Segments[i]
		offset := seg.Sub(lead)
		if offset.IsZero() {
			offset = vmath.V(-parameter.BodySpacing, 0)
		}
		desired := lead.Add(offset.Normalized().Scale(parameter.BodySpacing))
		seg.X = vmath.ExpApproach(seg.X, desired.X, parameter.BodyFollowRate, dt)
		seg.Y = vmath.ExpApproach(seg.Y, desired.Y, parameter.BodyFollowRate, dt)
		body.Segments[i] = seg
		lead = seg
	}

	w.Component.Body.Set(playerID, body)
}
