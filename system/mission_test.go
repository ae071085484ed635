package system

import (
	"testing"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
)

func newMissionWorld(t *testing.T, missions ...*engine.Mission) (*engine.World, *MissionSystem) {
	t.Helper()
	w := engine.NewWorld(1)
	w.Resource.Time.Delta = 0.016
	w.Resource.Time.HostileDelta = 0.016
	w.Resource.Match.Missions = missions
	sys := NewMissionSystem(w).(*MissionSystem)
	return w, sys
}

func killEvent(arch component.Archetype, mineKill bool) event.GameEvent {
	return event.GameEvent{
		Type:    event.EventEnemyKilled,
		Payload: &event.EnemyKilledPayload{Archetype: arch, MineKill: mineKill},
	}
}

func TestRunnerKillsAdvanceMission(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionKillRunners, Target: 3}
	_, sys := newMissionWorld(t, m)

	sys.HandleEvent(killEvent(component.ArchetypeRunner, false))
	sys.HandleEvent(killEvent(component.ArchetypeTank, false)) // wrong archetype
	sys.HandleEvent(killEvent(component.ArchetypeRunner, false))

	if m.Progress != 2 {
		t.Errorf("progress = %d, want 2 (tank kill must not count)", m.Progress)
	}

	sys.HandleEvent(killEvent(component.ArchetypeRunner, false))
	if !m.Done {
		t.Error("mission should be done at target")
	}
}

func TestMineKillsAdvanceMission(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionMineKills, Target: 2}
	_, sys := newMissionWorld(t, m)

	sys.HandleEvent(killEvent(component.ArchetypeRunner, true))
	sys.HandleEvent(killEvent(component.ArchetypeRunner, false)) // projectile kill
	sys.HandleEvent(killEvent(component.ArchetypeTank, true))

	if !m.Done {
		t.Errorf("progress = %d, want done at 2 mine kills", m.Progress)
	}
}

func TestPickupMission(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionCollectPickups, Target: 2}
	_, sys := newMissionWorld(t, m)

	ev := event.GameEvent{
		Type:    event.EventPickupCollected,
		Payload: &event.PickupCollectedPayload{Kind: component.PickupEnergy},
	}
	sys.HandleEvent(ev)
	sys.HandleEvent(ev)

	if !m.Done {
		t.Errorf("progress = %d, want done at 2 pickups", m.Progress)
	}
}

func TestAvoidDamageAccrualAndCompletion(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionAvoidDamage, Target: 2, Timed: true, TimeRemaining: 2}
	w, sys := newMissionWorld(t, m)
	w.Resource.Time.HostileDelta = 1.0

	sys.Update()
	if m.Progress != 1 {
		t.Fatalf("progress = %d, want 1 after one undamaged second", m.Progress)
	}

	sys.Update()
	if !m.Done {
		t.Errorf("mission should complete at full undamaged duration, progress=%d failed=%v", m.Progress, m.Failed)
	}
}

func TestAvoidDamageFailsAfterDamage(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionAvoidDamage, Target: 3, Timed: true, TimeRemaining: 3}
	w, sys := newMissionWorld(t, m)
	w.Resource.Time.HostileDelta = 1.0

	sys.Update()
	w.Resource.Match.TookDamageThisLevel = true
	sys.Update()
	sys.Update()

	if !m.Failed {
		t.Fatalf("mission should fail once the timer lapses with target unmet, progress=%d", m.Progress)
	}
	if m.Progress != 1 {
		t.Errorf("progress = %d, want frozen at 1 after damage", m.Progress)
	}
}

func TestComboTierMissionFollowsHighWater(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionComboTier, Target: 3}
	w, sys := newMissionWorld(t, m)

	w.Resource.Match.ComboTier = 2
	sys.Update()
	if m.Progress != 2 {
		t.Fatalf("progress = %d, want 2", m.Progress)
	}

	// High-water semantics: a lower tier never regresses progress
	w.Resource.Match.ComboTier = 1
	sys.Update()
	if m.Progress != 2 {
		t.Errorf("progress = %d, regressed below high-water mark", m.Progress)
	}

	w.Resource.Match.ComboTier = 3
	sys.Update()
	if !m.Done {
		t.Error("mission should complete at the target tier")
	}
}

func TestResetDropsAccrual(t *testing.T) {
	m := &engine.Mission{Type: parameter.MissionAvoidDamage, Target: 5, Timed: true, TimeRemaining: 5}
	w, sys := newMissionWorld(t, m)
	w.Resource.Time.HostileDelta = 1.0

	sys.Update()
	sys.HandleEvent(event.GameEvent{Type: event.EventMatchReset})

	fresh := &engine.Mission{Type: parameter.MissionAvoidDamage, Target: 5, Timed: true, TimeRemaining: 5}
	w.Resource.Match.Missions = []*engine.Mission{fresh}

	sys.Update()
	if fresh.Progress != 1 {
		t.Errorf("progress = %d, stale accrual leaked across reset", fresh.Progress)
	}
}
