package system

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
)

// ProjectileSystem advances linear shots and their lifetimes
// Player-fired projectiles run on the undilated clock; hostile ones on
// the dilated clock, so a temporal burst slows incoming fire but not
// the player's own. Expired shots are swept by the cull pass
type ProjectileSystem struct {
	world *engine.World
}

func NewProjectileSystem(world *engine.World) engine.System {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType { return nil }

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {}

func (s *ProjectileSystem) Update() {
	w := s.world
	tr := w.Resource.Time

	w.Component.Projectile.Range(func(e core.Entity, proj component.ProjectileComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}

		dt := tr.Delta
		if proj.Hostile {
			dt = tr.HostileDelta
		}

		motion.Pos = motion.Pos.Add(motion.Vel.Scale(dt))
		proj.TTL -= dt

		w.Component.Motion.Set(e, motion)
		w.Component.Projectile.Set(e, proj)
		return true
	})
}
