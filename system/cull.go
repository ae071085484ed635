package system

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
)

// CullSystem is the end-of-tick sweep removing expired entities:
// projectiles past their lifetime or outside the bounds plus margin,
// fizzled mines, and any enemy left dead by earlier passes
// Runs last so every resolver in the same tick saw a stable entity set
type CullSystem struct {
	world *engine.World

	// reused across ticks to avoid per-tick allocation
	toDestroy []core.Entity
}

func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) EventTypes() []event.EventType { return nil }

func (s *CullSystem) HandleEvent(ev event.GameEvent) {}

func (s *CullSystem) Update() {
	w := s.world
	cfg := w.Resource.Config
	s.toDestroy = s.toDestroy[:0]

	w.Component.Projectile.Range(func(e core.Entity, proj component.ProjectileComponent) bool {
		if proj.TTL <= 0 {
			s.toDestroy = append(s.toDestroy, e)
			return true
		}
		if motion, ok := w.Component.Motion.Get(e); ok {
			if motion.Pos.X < -cfg.Margin || motion.Pos.X > cfg.WorldWidth+cfg.Margin ||
				motion.Pos.Y < -cfg.Margin || motion.Pos.Y > cfg.WorldHeight+cfg.Margin {
				s.toDestroy = append(s.toDestroy, e)
			}
		}
		return true
	})

	w.Component.Mine.Range(func(e core.Entity, mine component.MineComponent) bool {
		if mine.TTL <= 0 {
			s.toDestroy = append(s.toDestroy, e)
		}
		return true
	})

	w.Component.Enemy.Range(func(e core.Entity, _ component.EnemyComponent) bool {
		if health, ok := w.Component.Health.Get(e); ok && !health.Alive {
			s.toDestroy = append(s.toDestroy, e)
		}
		return true
	})

	if len(s.toDestroy) > 0 {
		w.DestroyBatch(s.toDestroy)
	}
}
