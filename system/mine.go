package system

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
)

// MineSystem advances mine arm and fizzle timers
// Mines are player ordnance: they run on the undilated clock and are
// unaffected by a temporal burst. Detonation itself is resolved in the
// collision pass; fizzled mines are swept by the cull pass
type MineSystem struct {
	world *engine.World
}

func NewMineSystem(world *engine.World) engine.System {
	return &MineSystem{world: world}
}

func (s *MineSystem) Name() string { return "mine" }

func (s *MineSystem) Priority() int { return parameter.PriorityMine }

func (s *MineSystem) EventTypes() []event.EventType { return nil }

func (s *MineSystem) HandleEvent(ev event.GameEvent) {}

func (s *MineSystem) Update() {
	w := s.world
	dt := w.Resource.Time.Delta

	w.Component.Mine.Range(func(e core.Entity, mine component.MineComponent) bool {
		if mine.ArmRemaining > 0 {
			mine.ArmRemaining -= dt
			if mine.ArmRemaining < 0 {
				mine.ArmRemaining = 0
			}
		}
		mine.TTL -= dt
		w.Component.Mine.Set(e, mine)
		return true
	})
}
