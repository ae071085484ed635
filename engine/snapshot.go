package engine

import (
	"fmt"

	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// EntityView is one renderable simulation entity
type EntityView struct {
	Pos    vmath.Vec2
	Radius float64
	Color  core.RGB

	// HealthRatio is current/max for damageable entities, 1 otherwise
	HealthRatio float64
}

// CooldownView holds readiness ratios in [0,1]; 1 means ready
type CooldownView struct {
	Primary float64
	Dash    float64
	Burst   float64
	Mine    float64
}

// HudView is the per-frame scoreboard state
type HudView struct {
	Score      int64
	Level      int
	Health     float64
	MaxHealth  float64
	Shield     float64
	Combo      float64
	Experience float64
	XPNeeded   float64

	Missions     []string
	Announcement string

	Paused   bool
	GameOver bool
}

// Snapshot is a read-only projection of the world for presentation
// Built between ticks; the renderer never touches live stores
type Snapshot struct {
	Player      EntityView
	Body        []vmath.Vec2
	Enemies     []EntityView
	Projectiles []EntityView
	Mines       []EntityView
	Pickups     []EntityView

	Cooldowns CooldownView
	Hud       HudView

	// Shake is the current camera shake magnitude in world units
	Shake float64
}

// BuildSnapshot projects the current world state into a Snapshot
func BuildSnapshot(w *World) *Snapshot {
	snap := &Snapshot{}
	match := w.Resource.Match
	playerID := w.Resource.Player.Entity

	if motion, ok := w.Component.Motion.Get(playerID); ok {
		view := EntityView{Pos: motion.Pos, Radius: motion.Radius, Color: core.ColorPlayer, HealthRatio: 1}
		if health, ok := w.Component.Health.Get(playerID); ok && health.Max > 0 {
			view.HealthRatio = vmath.Clamp(health.Current/health.Max, 0, 1)
		}
		snap.Player = view
	}
	if body, ok := w.Component.Body.Get(playerID); ok {
		snap.Body = append(snap.Body, body.Segments...)
	}
	if ab, ok := w.Component.Ability.Get(playerID); ok {
		snap.Cooldowns = CooldownView{
			Primary: readiness(ab.PrimaryCooldown, parameter.PrimaryCooldown),
			Dash:    readiness(ab.DashCooldown, parameter.DashCooldown),
			Burst:   readiness(ab.BurstCooldown, parameter.BurstCooldown),
			Mine:    readiness(ab.MineCooldown, parameter.MineCooldown),
		}
	}

	w.Component.Enemy.Range(func(e core.Entity, enemy component.EnemyComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		view := EntityView{Pos: motion.Pos, Radius: motion.Radius, Color: archetypeColor(enemy.Archetype), HealthRatio: 1}
		if health, ok := w.Component.Health.Get(e); ok && health.Max > 0 {
			view.HealthRatio = vmath.Clamp(health.Current/health.Max, 0, 1)
		}
		snap.Enemies = append(snap.Enemies, view)
		return true
	})

	w.Component.Projectile.Range(func(e core.Entity, proj component.ProjectileComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		color := core.ColorShot
		if proj.Hostile {
			color = core.ColorHostile
		}
		snap.Projectiles = append(snap.Projectiles, EntityView{
			Pos: motion.Pos, Radius: motion.Radius, Color: color, HealthRatio: 1,
		})
		return true
	})

	w.Component.Mine.Range(func(e core.Entity, mine component.MineComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		ratio := 1.0
		if !mine.Armed() {
			ratio = 0.5
		}
		snap.Mines = append(snap.Mines, EntityView{
			Pos: motion.Pos, Radius: motion.Radius, Color: core.ColorMine, HealthRatio: ratio,
		})
		return true
	})

	w.Component.Pickup.Range(func(e core.Entity, pickup component.PickupComponent) bool {
		motion, ok := w.Component.Motion.Get(e)
		if !ok {
			return true
		}
		snap.Pickups = append(snap.Pickups, EntityView{
			Pos: motion.Pos, Radius: motion.Radius, Color: pickupColor(pickup.Kind), HealthRatio: 1,
		})
		return true
	})

	snap.Hud = HudView{
		Score:        match.Score,
		Level:        match.Level,
		Combo:        match.Combo,
		Experience:   match.Experience,
		XPNeeded:     match.XPThreshold(),
		Announcement: match.Announcement,
		Paused:       match.Paused,
		GameOver:     match.Phase == MatchOver,
	}
	if health, ok := w.Component.Health.Get(playerID); ok {
		snap.Hud.Health = health.Current
		snap.Hud.MaxHealth = health.Max
		snap.Hud.Shield = health.Shield
	}
	for _, mission := range match.Missions {
		snap.Hud.Missions = append(snap.Hud.Missions, missionLine(mission))
	}

	snap.Shake = w.Resource.Status.Floats.Get("fx.shake").Get()

	return snap
}

// missionLine renders one mission as a HUD string
func missionLine(m *Mission) string {
	line := fmt.Sprintf("%s: %d/%d", m.Text, m.Progress, m.Target)
	switch {
	case m.Done:
		line += " [DONE]"
	case m.Failed:
		line += " [FAILED]"
	case m.Timed:
		line += fmt.Sprintf(" (%.0fs)", m.TimeRemaining)
	}
	return line
}

func readiness(remaining, total float64) float64 {
	if total <= 0 || remaining <= 0 {
		return 1
	}
	return vmath.Clamp(1-remaining/total, 0, 1)
}

func archetypeColor(a component.Archetype) core.RGB {
	switch a {
	case component.ArchetypeRunner:
		return core.ColorRunner
	case component.ArchetypeTank:
		return core.ColorTank
	case component.ArchetypeSniper:
		return core.ColorSniper
	case component.ArchetypeBoss:
		return core.ColorBoss
	default:
		return core.ColorDrone
	}
}

func pickupColor(k component.PickupKind) core.RGB {
	switch k {
	case component.PickupHealth:
		return core.ColorHealth
	case component.PickupShield:
		return core.ColorShieldCore
	default:
		return core.ColorEnergy
	}
}
