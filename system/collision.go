package system

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// CollisionSystem resolves all proximity interactions once per tick in
// a fixed pass order that determines apparent causality when several
// effects could land in the same frame:
//
//  1. pickup collection
//  2. player projectile vs enemy (first hit in insertion order)
//  3. armed mine vs enemy (area detonation)
//  4. enemy contact vs player
//  5. hostile projectile vs player
//
// Scoring and experience mutate MatchState directly so the combo
// multiplier observed by a reward is the one in force at that instant;
// semantic events carry the same facts to missions and presentation
type CollisionSystem struct {
	world *engine.World

	statKills *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{
		world:     world,
		statKills: world.Resource.Status.Ints.Get("combat.kills"),
	}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType { return nil }

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {}

func (s *CollisionSystem) Update() {
	w := s.world
	playerID := w.Resource.Player.Entity

	playerMotion, ok := w.Component.Motion.Get(playerID)
	if !ok {
		return
	}

	s.collectPickups(playerID, playerMotion.Pos)
	s.resolvePlayerShots()
	s.resolveMines()
	s.resolveContact(playerID, playerMotion)
	s.resolveHostileShots(playerID, playerMotion)

	if health, ok := w.Component.Health.Get(playerID); ok && !health.Alive {
		match := w.Resource.Match
		if match.Phase != engine.MatchOver {
			match.Phase = engine.MatchOver
			w.PushEvent(event.EventGameOver, nil)
		}
	}
}

// collectPickups gathers every core within collection range of the head
func (s *CollisionSystem) collectPickups(playerID core.Entity, playerPos vmath.Vec2) {
	w := s.world
	match := w.Resource.Match

	w.Component.Pickup.Range(func(e core.Entity, pickup component.PickupComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		if !overlaps(motion.Pos, playerPos, parameter.PickupCollectRadius) {
			return true
		}

		match.AddScore(pickup.Value)
		match.AddExperience(pickup.Value)

		if health, ok := w.Component.Health.Get(playerID); ok {
			switch pickup.Kind {
			case component.PickupHealth:
				health.Heal(parameter.PickupHealAmount)
			case component.PickupShield:
				health.AddShield(parameter.PickupShieldAmount)
			}
			w.Component.Health.Set(playerID, health)
		}

		w.PushEvent(event.EventPickupCollected, &event.PickupCollectedPayload{
			Kind:  pickup.Kind,
			Value: pickup.Value,
			Pos:   motion.Pos,
		})
		w.DestroyEntity(e)
		return true
	})
}

// resolvePlayerShots consumes each player projectile on its first enemy
// overlap in insertion order; one projectile damages one enemy
func (s *CollisionSystem) resolvePlayerShots() {
	w := s.world

	w.Component.Projectile.Range(func(pe core.Entity, proj component.ProjectileComponent) bool {
		if proj.Hostile {
			return true
		}
		projMotion, ok := w.Component.Motion.Get(pe)
		if !ok {
			return true
		}

		for _, ee := range w.Component.Enemy.All() {
			enemyMotion, ok := w.Component.Motion.Get(ee)
			if !ok {
				continue
			}
			if !overlaps(projMotion.Pos, enemyMotion.Pos, projMotion.Radius+enemyMotion.Radius) {
				continue
			}

			w.DestroyEntity(pe)
			s.damageEnemy(ee, proj.Damage, false)
			break
		}
		return true
	})
}

// resolveMines detonates armed mines overlapping any enemy and applies
// linear falloff damage to every enemy inside the blast gate, not only
// the one that triggered it
func (s *CollisionSystem) resolveMines() {
	w := s.world

	w.Component.Mine.Range(func(me core.Entity, mine component.MineComponent) bool {
		if !mine.Armed() {
			return true
		}
		mineMotion, ok := w.Component.Motion.Get(me)
		if !ok {
			return true
		}

		triggered := false
		for _, ee := range w.Component.Enemy.All() {
			enemyMotion, ok := w.Component.Motion.Get(ee)
			if !ok {
				continue
			}
			if overlaps(mineMotion.Pos, enemyMotion.Pos, mineMotion.Radius+enemyMotion.Radius) {
				triggered = true
				break
			}
		}
		if !triggered {
			return true
		}

		w.DestroyEntity(me)
		kills := 0
		for _, ee := range w.Component.Enemy.All() {
			enemyMotion, ok := w.Component.Motion.Get(ee)
			if !ok {
				continue
			}
			dist := vmath.Dist(mineMotion.Pos, enemyMotion.Pos)
			if dist > parameter.MineBlastRadius+enemyMotion.Radius {
				continue
			}
			damage := parameter.MineBlastBase - parameter.MineBlastFalloff*dist
			if s.damageEnemy(ee, damage, true) {
				kills++
			}
		}

		w.PushEvent(event.EventMineDetonated, &event.MineDetonatedPayload{
			Pos:   mineMotion.Pos,
			Kills: kills,
		})
		return true
	})
}

// resolveContact applies continuous overlap damage from enemies
func (s *CollisionSystem) resolveContact(playerID core.Entity, playerMotion component.MotionComponent) {
	w := s.world
	dt := w.Resource.Time.HostileDelta

	w.Component.Enemy.Range(func(e core.Entity, enemy component.EnemyComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		if !overlaps(motion.Pos, playerMotion.Pos, motion.Radius+playerMotion.Radius) {
			return true
		}
		s.damagePlayer(playerID, enemy.ContactDamage*dt*parameter.ContactDamageFactor, playerMotion.Pos)
		return true
	})
}

// resolveHostileShots consumes enemy projectiles overlapping the player
func (s *CollisionSystem) resolveHostileShots(playerID core.Entity, playerMotion component.MotionComponent) {
	w := s.world

	w.Component.Projectile.Range(func(e core.Entity, proj component.ProjectileComponent) bool {
		if !proj.Hostile {
			return true
		}
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		if !overlaps(motion.Pos, playerMotion.Pos, motion.Radius+playerMotion.Radius) {
			return true
		}
		w.DestroyEntity(e)
		s.damagePlayer(playerID, proj.Damage, playerMotion.Pos)
		return true
	})
}

// overlaps is the squared-distance circle test used by every pass;
// blast falloff is the only consumer that needs the true distance
func overlaps(a, b vmath.Vec2, reach float64) bool {
	return b.Sub(a).LenSq() <= reach*reach
}

// damageEnemy applies direct damage and runs kill attribution when the
// enemy dies: score times combo, unmultiplied experience, body growth
// and the kill event for missions and presentation. Returns true on kill
func (s *CollisionSystem) damageEnemy(e core.Entity, damage float64, mineKill bool) bool {
	w := s.world
	health, ok := w.Component.Health.Get(e)
	if !ok {
		return false
	}

	health.Current -= damage
	if health.Current > 0 {
		w.Component.Health.Set(e, health)
		return false
	}

	enemy, _ := w.Component.Enemy.Get(e)
	motion, _ := w.Component.Motion.Get(e)
	match := w.Resource.Match

	match.AddScore(enemy.ScoreValue)
	match.AddExperience(enemy.ScoreValue)

	growth := parameter.BodyGrowthPerKill
	if enemy.Archetype == component.ArchetypeBoss {
		growth = parameter.BodyGrowthPerBoss
	}
	playerID := w.Resource.Player.Entity
	if body, ok := w.Component.Body.Get(playerID); ok {
		body.Grow(growth)
		w.Component.Body.Set(playerID, body)
	}

	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Archetype:  enemy.Archetype,
		ScoreValue: enemy.ScoreValue,
		MineKill:   mineKill,
		Pos:        motion.Pos,
	})
	s.statKills.Add(1)
	w.DestroyEntity(e)
	return true
}

// damagePlayer routes damage through the shield-first absorption law
// Only damage that actually lands (not negated by invulnerability)
// resets the combo, flags the level and pulses the camera
func (s *CollisionSystem) damagePlayer(playerID core.Entity, damage float64, at vmath.Vec2) {
	w := s.world
	health, ok := w.Component.Health.Get(playerID)
	if !ok {
		return
	}

	applied := health.ApplyDamage(damage)
	w.Component.Health.Set(playerID, health)
	if applied <= 0 {
		return
	}

	match := w.Resource.Match
	match.ResetCombo()
	match.TookDamageThisLevel = true

	w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Amount: applied, Pos: at})
	w.PushEvent(event.EventCameraShake, &event.CameraShakePayload{
		Magnitude: parameter.ShakeMagnitude,
		Duration:  parameter.ShakeDuration,
	})
}
