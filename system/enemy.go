package system

import (
	"math"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// EnemySystem advances all hostile behaviors on the dilated clock
// Behavior is selected by the archetype tag fixed at spawn and
// dispatched through a single switch; no per-type entity kinds
type EnemySystem struct {
	world *engine.World
}

func NewEnemySystem(world *engine.World) engine.System {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) EventTypes() []event.EventType { return nil }

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {}

func (s *EnemySystem) Update() {
	w := s.world
	dt := w.Resource.Time.HostileDelta

	playerMotion, ok := w.Component.Motion.Get(w.Resource.Player.Entity)
	if !ok {
		return
	}
	playerPos := playerMotion.Pos

	w.Component.Enemy.Range(func(e core.Entity, enemy component.EnemyComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}

		toPlayer := playerPos.Sub(motion.Pos)
		dir := toPlayer.Normalized()

		switch enemy.Archetype {
		case component.ArchetypeTank:
			motion.Vel = vmath.Blend(motion.Vel, dir.Scale(enemy.Speed), parameter.TankVelocityBlend)

		case component.ArchetypeSniper:
			s.steerSniper(&motion, &enemy, toPlayer, dir, dt)

		case component.ArchetypeBoss:
			motion.Vel = vmath.Blend(motion.Vel, dir.Scale(enemy.Speed), parameter.BossVelocityBlend)
			enemy.FireCooldown -= dt
			if enemy.FireCooldown <= 0 {
				enemy.FireCooldown = parameter.BossFireCooldown
				s.fireRadialBurst(motion.Pos)
			}

		default: // runner and unclassified: direct pursuit at full speed
			motion.Vel = dir.Scale(enemy.Speed)
		}

		// Enemies clamp at the bounds, they never wrap
		motion.Pos = motion.Pos.Add(motion.Vel.Scale(dt))
		motion.Pos.X = vmath.Clamp(motion.Pos.X, 0, w.Resource.Config.WorldWidth)
		motion.Pos.Y = vmath.Clamp(motion.Pos.Y, 0, w.Resource.Config.WorldHeight)

		w.Component.Motion.Set(e, motion)
		w.Component.Enemy.Set(e, enemy)
		return true
	})
}

// steerSniper holds the standoff band: advance when too far, retreat
// when too close, decelerate inside the band. Fires aimed single shots
// on a per-shot randomized cooldown
func (s *EnemySystem) steerSniper(motion *component.MotionComponent, enemy *component.EnemyComponent, toPlayer, dir vmath.Vec2, dt float64) {
	dist := toPlayer.Len()
	switch {
	case dist > parameter.SniperStandoffRadius+parameter.SniperStandoffBand:
		motion.Vel = dir.Scale(enemy.Speed)
	case dist < parameter.SniperStandoffRadius-parameter.SniperStandoffBand:
		motion.Vel = dir.Scale(-enemy.Speed)
	default:
		decay := 1 - parameter.SniperHoldDecel*dt
		if decay < 0 {
			decay = 0
		}
		motion.Vel = motion.Vel.Scale(decay)
	}

	enemy.FireCooldown -= dt
	if enemy.FireCooldown <= 0 {
		enemy.FireCooldown = s.world.Resource.Rng.Range(parameter.SniperCooldownMin, parameter.SniperCooldownMax)
		s.fireHostile(motion.Pos, dir.Scale(parameter.SniperProjectileSpeed),
			parameter.SniperProjectileDamage, parameter.SniperProjectileTTL)
	}
}

// fireRadialBurst emits equally spaced projectiles in a full circle
func (s *EnemySystem) fireRadialBurst(origin vmath.Vec2) {
	step := 2 * math.Pi / float64(parameter.BossBurstCount)
	for i := 0; i < parameter.BossBurstCount; i++ {
		dir := vmath.FromAngle(float64(i) * step)
		s.fireHostile(origin, dir.Scale(parameter.BossProjectileSpeed),
			parameter.BossProjectileDamage, parameter.BossProjectileTTL)
	}
}

func (s *EnemySystem) fireHostile(origin, vel vmath.Vec2, damage, ttl float64) {
	w := s.world
	e := w.CreateEntity()
	w.Component.Projectile.Set(e, component.ProjectileComponent{
		Damage:  damage,
		TTL:     ttl,
		Hostile: true,
	})
	w.Component.Motion.Set(e, component.MotionComponent{
		Pos:    origin,
		Vel:    vel,
		Radius: parameter.EnemyProjectileRadius,
	})
}
