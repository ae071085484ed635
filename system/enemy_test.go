package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

func newEnemyWorld(t *testing.T) (*engine.World, engine.System) {
	t.Helper()
	w := engine.NewWorld(1)
	engine.SpawnPlayer(w)
	w.Resource.Time.Delta = 0.016
	w.Resource.Time.HostileDelta = 0.016
	return w, NewEnemySystem(w)
}

func hostileShots(w *engine.World) int {
	n := 0
	w.Component.Projectile.Range(func(e core.Entity, proj component.ProjectileComponent) bool {
		if proj.Hostile {
			n++
		}
		return true
	})
	return n
}

func TestRunnerPursuesPlayer(t *testing.T) {
	w, sys := newEnemyWorld(t)
	playerPos, _ := w.Component.Motion.Get(w.Resource.Player.Entity)

	e := addEnemy(w, component.ArchetypeRunner, vmath.V(100, 100), 100)
	sys.Update()

	motion, _ := w.Component.Motion.Get(e)
	want := playerPos.Pos.Sub(vmath.V(100, 100)).Normalized()
	got := motion.Vel.Normalized()
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("runner velocity direction %+v, want %+v", got, want)
	}
	if math.Abs(motion.Vel.Len()-component.ArchetypeRunner.Stats().Speed) > 1e-6 {
		t.Errorf("runner speed = %v, want full %v", motion.Vel.Len(), component.ArchetypeRunner.Stats().Speed)
	}
}

func TestTankTurnsSlowly(t *testing.T) {
	w, sys := newEnemyWorld(t)

	e := addEnemy(w, component.ArchetypeTank, vmath.V(100, 100), 100)
	sys.Update()

	motion, _ := w.Component.Motion.Get(e)
	// One blend step from rest: a small fraction of full pursuit speed
	want := component.ArchetypeTank.Stats().Speed * parameter.TankVelocityBlend
	if math.Abs(motion.Vel.Len()-want) > 1e-6 {
		t.Errorf("tank speed after one tick = %v, want %v", motion.Vel.Len(), want)
	}
}

func TestSniperRetreatsWhenTooClose(t *testing.T) {
	w, sys := newEnemyWorld(t)
	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)

	// 50 units from the player, well inside the standoff radius
	pos := pm.Pos.Add(vmath.V(50, 0))
	e := addEnemy(w, component.ArchetypeSniper, pos, 100)
	setFireCooldown(w, e, 10)

	sys.Update()

	motion, _ := w.Component.Motion.Get(e)
	if motion.Vel.X <= 0 {
		t.Errorf("sniper velocity %+v, want retreat away from player", motion.Vel)
	}
}

func TestSniperAdvancesWhenTooFar(t *testing.T) {
	w, sys := newEnemyWorld(t)
	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)

	pos := pm.Pos.Add(vmath.V(400, 0))
	e := addEnemy(w, component.ArchetypeSniper, pos, 100)
	setFireCooldown(w, e, 10)

	sys.Update()

	motion, _ := w.Component.Motion.Get(e)
	if motion.Vel.X >= 0 {
		t.Errorf("sniper velocity %+v, want advance toward player", motion.Vel)
	}
}

func TestSniperDeceleratesInsideBand(t *testing.T) {
	w, sys := newEnemyWorld(t)
	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)

	pos := pm.Pos.Add(vmath.V(parameter.SniperStandoffRadius, 0))
	e := addEnemy(w, component.ArchetypeSniper, pos, 100)
	setFireCooldown(w, e, 10)

	motion, _ := w.Component.Motion.Get(e)
	motion.Vel = vmath.V(80, 0)
	w.Component.Motion.Set(e, motion)

	sys.Update()

	motion, _ = w.Component.Motion.Get(e)
	if motion.Vel.Len() >= 80 {
		t.Errorf("sniper speed = %v, want decelerating inside the hold band", motion.Vel.Len())
	}
}

func TestSniperFiresAimedShot(t *testing.T) {
	w, sys := newEnemyWorld(t)
	playerID := w.Resource.Player.Entity
	pm, _ := w.Component.Motion.Get(playerID)

	pos := pm.Pos.Add(vmath.V(parameter.SniperStandoffRadius, 0))
	e := addEnemy(w, component.ArchetypeSniper, pos, 100)
	setFireCooldown(w, e, 0.001)

	sys.Update()

	if got := hostileShots(w); got != 1 {
		t.Fatalf("hostile shots = %d, want 1", got)
	}
	w.Component.Projectile.Range(func(pe core.Entity, proj component.ProjectileComponent) bool {
		motion, _ := w.Component.Motion.Get(pe)
		if motion.Vel.X >= 0 {
			t.Errorf("shot velocity %+v, want aimed toward player", motion.Vel)
		}
		return true
	})

	// Cooldown re-randomized into the configured interval
	enemy, _ := w.Component.Enemy.Get(e)
	if enemy.FireCooldown < parameter.SniperCooldownMin || enemy.FireCooldown >= parameter.SniperCooldownMax {
		t.Errorf("next cooldown = %v, want within [%v, %v)",
			enemy.FireCooldown, parameter.SniperCooldownMin, parameter.SniperCooldownMax)
	}
}

func TestBossRadialBurst(t *testing.T) {
	w, sys := newEnemyWorld(t)

	e := addEnemy(w, component.ArchetypeBoss, vmath.V(200, 200), 1000)
	setFireCooldown(w, e, 0.001)

	sys.Update()

	if got := hostileShots(w); got != parameter.BossBurstCount {
		t.Errorf("burst shots = %d, want %d", got, parameter.BossBurstCount)
	}
}

func TestEnemyClampsAtBounds(t *testing.T) {
	w, sys := newEnemyWorld(t)
	cfg := w.Resource.Config

	// Spawned outside the edge, pursuing inward never exits the clamp
	e := addEnemy(w, component.ArchetypeRunner, vmath.V(-parameter.SpawnEdgeOffset, 100), 100)
	for i := 0; i < 5; i++ {
		sys.Update()
	}

	motion, _ := w.Component.Motion.Get(e)
	if motion.Pos.X < 0 || motion.Pos.X > cfg.WorldWidth || motion.Pos.Y < 0 || motion.Pos.Y > cfg.WorldHeight {
		t.Errorf("enemy position %+v outside bounds", motion.Pos)
	}
}

func TestHostileClockSlowsEnemies(t *testing.T) {
	w, sys := newEnemyWorld(t)

	full := addEnemy(w, component.ArchetypeRunner, vmath.V(100, 100), 100)
	sys.Update()
	fullMotion, _ := w.Component.Motion.Get(full)
	fullStep := fullMotion.Pos.Sub(vmath.V(100, 100)).Len()
	w.DestroyEntity(full)

	w.Resource.Time.HostileDelta = 0.008 // dilated to half
	slow := addEnemy(w, component.ArchetypeRunner, vmath.V(100, 100), 100)
	sys.Update()
	slowMotion, _ := w.Component.Motion.Get(slow)
	slowStep := slowMotion.Pos.Sub(vmath.V(100, 100)).Len()

	if math.Abs(slowStep*2-fullStep) > 1e-6 {
		t.Errorf("dilated step = %v, want half of %v", slowStep, fullStep)
	}
}

func setFireCooldown(w *engine.World, e core.Entity, cooldown float64) {
	enemy, _ := w.Component.Enemy.Get(e)
	enemy.FireCooldown = cooldown
	w.Component.Enemy.Set(e, enemy)
}
