package system

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
)

// MissionSystem advances the per-level objective set
// Kill, mine-kill and pickup missions increment from combat events; the
// no-damage mission accrues elapsed time passively while the level's
// damage flag stays unset; the combo-tier mission follows the match's
// tier high-water mark. Terminal missions never mutate again
type MissionSystem struct {
	world *engine.World

	// accrual holds fractional no-damage progress per live mission;
	// Mission.Progress only carries whole seconds
	accrual map[*engine.Mission]float64
}

func NewMissionSystem(world *engine.World) engine.System {
	return &MissionSystem{
		world:   world,
		accrual: make(map[*engine.Mission]float64),
	}
}

func (s *MissionSystem) Name() string { return "mission" }

func (s *MissionSystem) Priority() int { return parameter.PriorityMission }

func (s *MissionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMatchReset,
		event.EventLevelUp,
		event.EventEnemyKilled,
		event.EventPickupCollected,
	}
}

func (s *MissionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMatchReset, event.EventLevelUp:
		// The live mission set was replaced; drop stale accrual
		s.accrual = make(map[*engine.Mission]float64)

	case event.EventEnemyKilled:
		p, ok := ev.Payload.(*event.EnemyKilledPayload)
		if !ok {
			return
		}
		for _, m := range s.world.Resource.Match.Missions {
			switch m.Type {
			case parameter.MissionKillRunners:
				if p.Archetype == component.ArchetypeRunner {
					m.Advance(1)
				}
			case parameter.MissionMineKills:
				if p.MineKill {
					m.Advance(1)
				}
			}
		}

	case event.EventPickupCollected:
		for _, m := range s.world.Resource.Match.Missions {
			if m.Type == parameter.MissionCollectPickups {
				m.Advance(1)
			}
		}
	}
}

func (s *MissionSystem) Update() {
	match := s.world.Resource.Match
	dt := s.world.Resource.Time.HostileDelta

	for _, m := range match.Missions {
		if m.Terminal() {
			continue
		}

		switch m.Type {
		case parameter.MissionAvoidDamage:
			if !match.TookDamageThisLevel {
				s.accrual[m] += dt
				m.Raise(int(s.accrual[m]))
			}
		case parameter.MissionComboTier:
			m.Raise(match.ComboTier)
		}

		m.TickCountdown(dt)
	}
}
