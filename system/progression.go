package system

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// ProgressionSystem is the difficulty director: enemy and pickup spawn
// cadence, archetype selection with boss gating, level thresholds with
// experience carry-over, mission draws and the combo decay clock
// Spawn and wave timing run on the dilated clock, so a temporal burst
// also slows reinforcements
type ProgressionSystem struct {
	world *engine.World

	enemyTimer  float64
	pickupTimer float64

	statEnemies *atomic.Int64
	statPickups *atomic.Int64
}

func NewProgressionSystem(world *engine.World) engine.System {
	s := &ProgressionSystem{
		world:       world,
		statEnemies: world.Resource.Status.Ints.Get("spawn.enemies"),
		statPickups: world.Resource.Status.Ints.Get("spawn.pickups"),
	}
	s.reset()
	return s
}

func (s *ProgressionSystem) Name() string { return "progression" }

func (s *ProgressionSystem) Priority() int { return parameter.PriorityProgression }

func (s *ProgressionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventMatchReset}
}

func (s *ProgressionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMatchReset {
		s.reset()
	}
}

func (s *ProgressionSystem) reset() {
	s.enemyTimer = s.jitteredEnemyInterval()
	s.pickupTimer = s.world.Resource.Rng.Range(parameter.PickupSpawnMin, parameter.PickupSpawnMax)
	s.drawMissions()
}

func (s *ProgressionSystem) Update() {
	w := s.world
	match := w.Resource.Match
	dt := w.Resource.Time.HostileDelta

	for match.Experience >= match.XPThreshold() {
		s.levelUp()
	}

	match.TickCombo(dt)

	s.enemyTimer -= dt
	if s.enemyTimer <= 0 {
		s.enemyTimer = s.jitteredEnemyInterval()
		count := 1
		if match.Level >= parameter.DoubleSpawnLevel {
			count = 2
		}
		for i := 0; i < count; i++ {
			s.spawnEnemy()
		}
	}

	s.pickupTimer -= dt
	if s.pickupTimer <= 0 {
		s.pickupTimer = w.Resource.Rng.Range(parameter.PickupSpawnMin, parameter.PickupSpawnMax)
		if w.Component.Pickup.Count() < parameter.PickupLiveCap {
			s.spawnPickup()
		}
	}
}

// levelUp applies the full threshold-crossing sequence: carry-over,
// level increment, flag reset, mission payout and redraw, permanent
// max-health gain, partial heal, shield top-up and the announcement
func (s *ProgressionSystem) levelUp() {
	w := s.world
	match := w.Resource.Match

	match.Experience -= match.XPThreshold()
	match.Level++
	match.TookDamageThisLevel = false
	match.ComboTier = int(math.Floor(match.Combo))

	payout := match.MissionPayout()
	match.Score += int64(math.Round(payout))

	s.drawMissions()

	playerID := w.Resource.Player.Entity
	if health, ok := w.Component.Health.Get(playerID); ok {
		health.Max += parameter.LevelUpMaxHealthBonus
		health.Heal(parameter.LevelUpHealAmount)
		health.AddShield(parameter.LevelUpShieldAmount)
		w.Component.Health.Set(playerID, health)
	}

	match.Announce(fmt.Sprintf("LEVEL %d", match.Level), parameter.LevelUpAnnounceDuration)
	w.PushEvent(event.EventLevelUp, &event.LevelUpPayload{Level: match.Level, Payout: payout})
}

// drawMissions shuffles the template pool and stamps the level's set:
// two missions, three on every third level
func (s *ProgressionSystem) drawMissions() {
	w := s.world
	match := w.Resource.Match
	rng := w.Resource.Rng

	order := make([]int, len(parameter.MissionPool))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	count := parameter.MissionDrawCount
	if match.Level%parameter.MissionBonusLevelInterval == 0 {
		count = parameter.MissionDrawCountBonus
	}
	if count > len(order) {
		count = len(order)
	}

	match.Missions = match.Missions[:0]
	for _, idx := range order[:count] {
		tpl := parameter.MissionPool[idx]
		match.Missions = append(match.Missions, &engine.Mission{
			ID:            tpl.ID,
			Text:          tpl.Text,
			Type:          tpl.Type,
			Target:        tpl.Target,
			Timed:         tpl.Duration > 0,
			TimeRemaining: tpl.Duration,
			Reward:        tpl.Reward,
		})
	}
}

func (s *ProgressionSystem) jitteredEnemyInterval() float64 {
	level := float64(s.world.Resource.Match.Level)
	base := vmath.Clamp(parameter.SpawnIntervalBase-level*parameter.SpawnIntervalPerLevel,
		parameter.SpawnIntervalMin, parameter.SpawnIntervalBase)
	jitter := s.world.Resource.Rng.Range(-parameter.SpawnJitter, parameter.SpawnJitter)
	return base * (1 + jitter)
}

// spawnEnemy rolls an archetype, bakes level scaling into its stats and
// places it just outside a uniformly chosen world edge
func (s *ProgressionSystem) spawnEnemy() {
	w := s.world
	match := w.Resource.Match
	rng := w.Resource.Rng

	arch := s.rollArchetype()
	stats := arch.Stats()

	// The three scaling axes are independent: higher levels are not
	// uniformly harder along every axis
	levels := float64(match.Level - 1)
	healthScale := 1 + levels*parameter.EnemyHealthScalePerLevel
	damageScale := 1 + levels*parameter.EnemyDamageScalePerLevel
	speedScale := 1 + levels*parameter.EnemySpeedScalePerLevel

	fireCooldown := 0.0
	switch arch {
	case component.ArchetypeSniper:
		fireCooldown = rng.Range(parameter.SniperCooldownMin, parameter.SniperCooldownMax)
	case component.ArchetypeBoss:
		fireCooldown = parameter.BossFireCooldown
	}

	e := w.CreateEntity()
	w.Component.Enemy.Set(e, component.EnemyComponent{
		Archetype:     arch,
		Speed:         stats.Speed * speedScale,
		ContactDamage: stats.ContactDamage * damageScale,
		ScoreValue:    stats.ScoreValue,
		FireCooldown:  fireCooldown,
	})
	w.Component.Motion.Set(e, component.MotionComponent{
		Pos:    s.edgePosition(),
		Radius: stats.Radius,
	})
	w.Component.Health.Set(e, component.HealthComponent{
		Current: stats.MaxHealth * healthScale,
		Max:     stats.MaxHealth * healthScale,
		Alive:   true,
	})
	s.statEnemies.Add(1)
}

// rollArchetype picks by weighted roll, overridden to boss on every
// boss-gated level while no boss is alive (at most one concurrently)
func (s *ProgressionSystem) rollArchetype() component.Archetype {
	match := s.world.Resource.Match

	if match.Level%parameter.BossLevelInterval == 0 && !s.bossAlive() {
		return component.ArchetypeBoss
	}

	r := s.world.Resource.Rng.Float64()
	switch {
	case r < parameter.SpawnWeightRunner:
		return component.ArchetypeRunner
	case r < parameter.SpawnWeightRunner+parameter.SpawnWeightSniper:
		return component.ArchetypeSniper
	case r < parameter.SpawnWeightRunner+parameter.SpawnWeightSniper+parameter.SpawnWeightTank:
		return component.ArchetypeTank
	default:
		return component.ArchetypeDefault
	}
}

func (s *ProgressionSystem) bossAlive() bool {
	alive := false
	s.world.Component.Enemy.Range(func(e core.Entity, enemy component.EnemyComponent) bool {
		if enemy.Archetype == component.ArchetypeBoss {
			alive = true
			return false
		}
		return true
	})
	return alive
}

// edgePosition picks one of the four world edges uniformly and a point
// just outside the visible bound along it
func (s *ProgressionSystem) edgePosition() vmath.Vec2 {
	cfg := s.world.Resource.Config
	rng := s.world.Resource.Rng

	switch rng.Intn(4) {
	case 0: // top
		return vmath.V(rng.Range(0, cfg.WorldWidth), -parameter.SpawnEdgeOffset)
	case 1: // bottom
		return vmath.V(rng.Range(0, cfg.WorldWidth), cfg.WorldHeight+parameter.SpawnEdgeOffset)
	case 2: // left
		return vmath.V(-parameter.SpawnEdgeOffset, rng.Range(0, cfg.WorldHeight))
	default: // right
		return vmath.V(cfg.WorldWidth+parameter.SpawnEdgeOffset, rng.Range(0, cfg.WorldHeight))
	}
}

func (s *ProgressionSystem) spawnPickup() {
	w := s.world
	rng := w.Resource.Rng

	kind := component.PickupEnergy
	value := parameter.PickupEnergyValue
	switch r := rng.Float64(); {
	case r < 0.25:
		kind = component.PickupHealth
		value = parameter.PickupHealthValue
	case r < 0.5:
		kind = component.PickupShield
		value = parameter.PickupShieldValue
	}

	cfg := w.Resource.Config
	pos := vmath.V(
		rng.Range(parameter.PickupRadius, cfg.WorldWidth-parameter.PickupRadius),
		rng.Range(parameter.PickupRadius, cfg.WorldHeight-parameter.PickupRadius),
	)

	e := w.CreateEntity()
	w.Component.Pickup.Set(e, component.PickupComponent{Kind: kind, Value: value})
	w.Component.Motion.Set(e, component.MotionComponent{Pos: pos, Radius: parameter.PickupRadius})
	s.statPickups.Add(1)
}
