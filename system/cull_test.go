package system

import (
	"testing"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

func TestCullExpiredProjectiles(t *testing.T) {
	w := engine.NewWorld(1)
	sys := NewCullSystem(w)

	expired := w.CreateEntity()
	w.Component.Projectile.Set(expired, component.ProjectileComponent{TTL: -0.01})
	w.Component.Motion.Set(expired, component.MotionComponent{Pos: vmath.V(100, 100)})

	live := w.CreateEntity()
	w.Component.Projectile.Set(live, component.ProjectileComponent{TTL: 0.5})
	w.Component.Motion.Set(live, component.MotionComponent{Pos: vmath.V(100, 100)})

	sys.Update()

	if w.Component.Projectile.Has(expired) {
		t.Error("expired projectile survived the cull")
	}
	if !w.Component.Projectile.Has(live) {
		t.Error("live projectile culled")
	}
}

func TestCullOutOfBoundsProjectiles(t *testing.T) {
	w := engine.NewWorld(1)
	sys := NewCullSystem(w)
	cfg := w.Resource.Config

	// Outside the world but inside the margin: kept
	nearEdge := w.CreateEntity()
	w.Component.Projectile.Set(nearEdge, component.ProjectileComponent{TTL: 1})
	w.Component.Motion.Set(nearEdge, component.MotionComponent{Pos: vmath.V(-cfg.Margin/2, 100)})

	// Beyond the margin: dropped
	gone := w.CreateEntity()
	w.Component.Projectile.Set(gone, component.ProjectileComponent{TTL: 1})
	w.Component.Motion.Set(gone, component.MotionComponent{Pos: vmath.V(cfg.WorldWidth+cfg.Margin+1, 100)})

	sys.Update()

	if !w.Component.Projectile.Has(nearEdge) {
		t.Error("projectile inside the margin culled")
	}
	if w.Component.Projectile.Has(gone) {
		t.Error("projectile beyond the margin survived")
	}
}

func TestCullFizzledMines(t *testing.T) {
	w := engine.NewWorld(1)
	sys := NewCullSystem(w)

	fizzled := w.CreateEntity()
	w.Component.Mine.Set(fizzled, component.MineComponent{TTL: 0})
	w.Component.Motion.Set(fizzled, component.MotionComponent{Pos: vmath.V(100, 100), Radius: parameter.MineRadius})

	armed := w.CreateEntity()
	w.Component.Mine.Set(armed, component.MineComponent{TTL: 4})
	w.Component.Motion.Set(armed, component.MotionComponent{Pos: vmath.V(120, 100), Radius: parameter.MineRadius})

	sys.Update()

	if w.Component.Mine.Has(fizzled) {
		t.Error("fizzled mine survived the cull")
	}
	if !w.Component.Mine.Has(armed) {
		t.Error("live mine culled")
	}
}

func TestCullDeadEnemies(t *testing.T) {
	w := engine.NewWorld(1)
	sys := NewCullSystem(w)

	dead := addEnemy(w, component.ArchetypeRunner, vmath.V(100, 100), 10)
	health, _ := w.Component.Health.Get(dead)
	health.Alive = false
	w.Component.Health.Set(dead, health)

	alive := addEnemy(w, component.ArchetypeRunner, vmath.V(200, 100), 10)

	sys.Update()

	if w.Component.Enemy.Has(dead) {
		t.Error("dead enemy survived the cull")
	}
	if !w.Component.Enemy.Has(alive) {
		t.Error("living enemy culled")
	}
}
