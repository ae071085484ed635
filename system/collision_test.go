package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// newCombatWorld builds a world with a spawned player and one tick of
// timing already in place, without any registered systems
func newCombatWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld(1)
	engine.SpawnPlayer(w)
	w.Resource.Time.Delta = 0.016
	w.Resource.Time.HostileDelta = 0.016
	return w
}

func addEnemy(w *engine.World, arch component.Archetype, pos vmath.Vec2, health float64) core.Entity {
	stats := arch.Stats()
	e := w.CreateEntity()
	w.Component.Enemy.Set(e, component.EnemyComponent{
		Archetype:     arch,
		Speed:         stats.Speed,
		ContactDamage: stats.ContactDamage,
		ScoreValue:    stats.ScoreValue,
	})
	w.Component.Motion.Set(e, component.MotionComponent{Pos: pos, Radius: stats.Radius})
	w.Component.Health.Set(e, component.HealthComponent{Current: health, Max: health, Alive: true})
	return e
}

func addPlayerShot(w *engine.World, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Component.Projectile.Set(e, component.ProjectileComponent{
		Damage: parameter.PlayerProjectileDamage,
		TTL:    1,
	})
	w.Component.Motion.Set(e, component.MotionComponent{Pos: pos, Radius: parameter.PlayerProjectileRadius})
	return e
}

func findEvent(w *engine.World, et event.EventType) (event.GameEvent, bool) {
	for _, ev := range w.Resource.Event.Consume() {
		if ev.Type == et {
			return ev, true
		}
	}
	return event.GameEvent{}, false
}

func TestProjectileFirstHitOnly(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)

	// Two overlapping enemies; insertion order decides the victim
	first := addEnemy(w, component.ArchetypeRunner, vmath.V(100, 100), 100)
	second := addEnemy(w, component.ArchetypeRunner, vmath.V(102, 100), 100)
	shot := addPlayerShot(w, vmath.V(100, 100))

	sys.Update()

	if w.Component.Projectile.Has(shot) {
		t.Error("projectile must be consumed on first hit")
	}
	h1, _ := w.Component.Health.Get(first)
	h2, _ := w.Component.Health.Get(second)
	if h1.Current != 100-parameter.PlayerProjectileDamage {
		t.Errorf("first enemy health = %v, want %v", h1.Current, 100-parameter.PlayerProjectileDamage)
	}
	if h2.Current != 100 {
		t.Errorf("second enemy damaged by a consumed projectile: %v", h2.Current)
	}
}

func TestKillRewardsAndGrowth(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)
	match := w.Resource.Match

	enemy := addEnemy(w, component.ArchetypeRunner, vmath.V(100, 100), 10)
	addPlayerShot(w, vmath.V(100, 100))

	sys.Update()

	if w.Component.Enemy.Has(enemy) {
		t.Fatal("enemy should be removed on kill")
	}
	wantScore := int64(math.Round(component.ArchetypeRunner.Stats().ScoreValue * parameter.ComboMin))
	if match.Score != wantScore {
		t.Errorf("score = %d, want %d", match.Score, wantScore)
	}
	if match.Experience != component.ArchetypeRunner.Stats().ScoreValue {
		t.Errorf("experience = %v, want unmultiplied base %v", match.Experience, component.ArchetypeRunner.Stats().ScoreValue)
	}

	body, _ := w.Component.Body.Get(w.Resource.Player.Entity)
	if body.PendingGrowth != parameter.BodyGrowthPerKill {
		t.Errorf("pending growth = %d, want %d", body.PendingGrowth, parameter.BodyGrowthPerKill)
	}

	if _, ok := findEvent(w, event.EventEnemyKilled); !ok {
		t.Error("expected EventEnemyKilled")
	}
}

func TestBossKillGrowsFourSegments(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)

	addEnemy(w, component.ArchetypeBoss, vmath.V(100, 100), 5)
	addPlayerShot(w, vmath.V(100, 100))

	sys.Update()

	body, _ := w.Component.Body.Get(w.Resource.Player.Entity)
	if body.PendingGrowth != parameter.BodyGrowthPerBoss {
		t.Errorf("pending growth = %d, want %d", body.PendingGrowth, parameter.BodyGrowthPerBoss)
	}
}

func TestMineDetonationFalloff(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)

	// Keep the player out of contact range
	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)
	pm.Pos = vmath.V(900, 500)
	w.Component.Motion.Set(playerID, pm)

	center := vmath.V(200, 200)
	near := addEnemy(w, component.ArchetypeRunner, center, 1000)
	mid := addEnemy(w, component.ArchetypeRunner, vmath.V(290, 200), 1000) // 90 units away
	far := addEnemy(w, component.ArchetypeRunner, vmath.V(460, 200), 1000) // 260 units, outside the gate

	mine := w.CreateEntity()
	w.Component.Mine.Set(mine, component.MineComponent{ArmRemaining: 0, TTL: 5})
	w.Component.Motion.Set(mine, component.MotionComponent{Pos: center, Radius: parameter.MineRadius})

	sys.Update()

	if w.Component.Mine.Has(mine) {
		t.Fatal("mine should be consumed by detonation")
	}

	hNear, _ := w.Component.Health.Get(near)
	hMid, _ := w.Component.Health.Get(mid)
	hFar, _ := w.Component.Health.Get(far)

	dmgNear := 1000 - hNear.Current
	dmgMid := 1000 - hMid.Current
	if math.Abs(dmgNear-parameter.MineBlastBase) > 1e-9 {
		t.Errorf("damage at distance 0 = %v, want %v", dmgNear, parameter.MineBlastBase)
	}
	wantMid := parameter.MineBlastBase - parameter.MineBlastFalloff*90
	if math.Abs(dmgMid-wantMid) > 1e-9 {
		t.Errorf("damage at distance 90 = %v, want %v", dmgMid, wantMid)
	}
	if hFar.Current != 1000 {
		t.Errorf("enemy outside the blast gate took damage: %v", 1000-hFar.Current)
	}

	if _, ok := findEvent(w, event.EventMineDetonated); !ok {
		t.Error("expected EventMineDetonated")
	}
}

func TestUnarmedMineDoesNotDetonate(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)

	addEnemy(w, component.ArchetypeRunner, vmath.V(200, 200), 100)
	mine := w.CreateEntity()
	w.Component.Mine.Set(mine, component.MineComponent{ArmRemaining: 0.3, TTL: 5})
	w.Component.Motion.Set(mine, component.MotionComponent{Pos: vmath.V(200, 200), Radius: parameter.MineRadius})

	sys.Update()

	if !w.Component.Mine.Has(mine) {
		t.Error("unarmed mine must not detonate")
	}
}

func TestContactDamageResetsCombo(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)
	match := w.Resource.Match
	match.Combo = 3.4

	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)
	addEnemy(w, component.ArchetypeRunner, pm.Pos, 1000)

	sys.Update()

	if match.Combo != parameter.ComboMin {
		t.Errorf("combo = %v, want reset to %v", match.Combo, parameter.ComboMin)
	}
	if !match.TookDamageThisLevel {
		t.Error("damage flag not set")
	}
	health, _ := w.Component.Health.Get(playerID)
	wantDamage := component.ArchetypeRunner.Stats().ContactDamage * 0.016 * parameter.ContactDamageFactor
	if math.Abs((parameter.PlayerInitialMaxHealth-health.Current)-wantDamage) > 1e-9 {
		t.Errorf("contact damage = %v, want %v", parameter.PlayerInitialMaxHealth-health.Current, wantDamage)
	}
	if _, ok := findEvent(w, event.EventCameraShake); !ok {
		t.Error("expected EventCameraShake on landed damage")
	}
}

func TestInvulnerableContactHasNoSideEffects(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)
	match := w.Resource.Match
	match.Combo = 3.0

	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)
	health, _ := w.Component.Health.Get(playerID)
	health.InvulnRemaining = 0.2
	w.Component.Health.Set(playerID, health)

	addEnemy(w, component.ArchetypeRunner, pm.Pos, 1000)

	sys.Update()

	if match.Combo != 3.0 {
		t.Errorf("combo = %v, negated damage must not reset it", match.Combo)
	}
	if match.TookDamageThisLevel {
		t.Error("negated damage must not set the damage flag")
	}
	if _, ok := findEvent(w, event.EventPlayerDamaged); ok {
		t.Error("negated damage must not emit EventPlayerDamaged")
	}
}

func TestHostileProjectileHitsPlayer(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)

	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)

	shot := w.CreateEntity()
	w.Component.Projectile.Set(shot, component.ProjectileComponent{
		Damage:  parameter.SniperProjectileDamage,
		TTL:     2,
		Hostile: true,
	})
	w.Component.Motion.Set(shot, component.MotionComponent{Pos: pm.Pos, Radius: parameter.EnemyProjectileRadius})

	sys.Update()

	if w.Component.Projectile.Has(shot) {
		t.Error("hostile projectile must be consumed on hit")
	}
	health, _ := w.Component.Health.Get(playerID)
	if health.Current != parameter.PlayerInitialMaxHealth-parameter.SniperProjectileDamage {
		t.Errorf("health = %v, want %v", health.Current, parameter.PlayerInitialMaxHealth-parameter.SniperProjectileDamage)
	}
}

func TestPickupCollection(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)
	match := w.Resource.Match

	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)
	health, _ := w.Component.Health.Get(playerID)
	health.Current = 50
	w.Component.Health.Set(playerID, health)

	pickup := w.CreateEntity()
	w.Component.Pickup.Set(pickup, component.PickupComponent{Kind: component.PickupHealth, Value: parameter.PickupHealthValue})
	w.Component.Motion.Set(pickup, component.MotionComponent{Pos: pm.Pos.Add(vmath.V(10, 0)), Radius: parameter.PickupRadius})

	sys.Update()

	if w.Component.Pickup.Has(pickup) {
		t.Error("pickup should be consumed")
	}
	if match.Score != int64(parameter.PickupHealthValue) {
		t.Errorf("score = %d, want %v", match.Score, parameter.PickupHealthValue)
	}
	health, _ = w.Component.Health.Get(playerID)
	if health.Current != 50+parameter.PickupHealAmount {
		t.Errorf("health = %v, want %v", health.Current, 50+parameter.PickupHealAmount)
	}
	if _, ok := findEvent(w, event.EventPickupCollected); !ok {
		t.Error("expected EventPickupCollected")
	}
}

func TestPlayerDeathEndsMatch(t *testing.T) {
	w := newCombatWorld(t)
	sys := NewCollisionSystem(w)

	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)
	health, _ := w.Component.Health.Get(playerID)
	health.Current = 0.01
	w.Component.Health.Set(playerID, health)

	shot := w.CreateEntity()
	w.Component.Projectile.Set(shot, component.ProjectileComponent{Damage: 50, TTL: 2, Hostile: true})
	w.Component.Motion.Set(shot, component.MotionComponent{Pos: pm.Pos, Radius: parameter.EnemyProjectileRadius})

	sys.Update()

	if w.Resource.Match.Phase != engine.MatchOver {
		t.Error("match should be over after player death")
	}
	if _, ok := findEvent(w, event.EventGameOver); !ok {
		t.Error("expected EventGameOver")
	}
}
