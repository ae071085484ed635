package engine

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// SpawnPlayer creates the player entity at the world center and pins it
// in PlayerResource. Called at match start and on restart
func SpawnPlayer(w *World) core.Entity {
	e := w.CreateEntity()
	center := vmath.V(w.Resource.Config.WorldWidth/2, w.Resource.Config.WorldHeight/2)

	w.Component.Player.Set(e, component.PlayerComponent{
		TargetDir: vmath.V(1, 0),
		Facing:    vmath.V(1, 0),
	})
	w.Component.Motion.Set(e, component.MotionComponent{
		Pos:    center,
		Radius: parameter.PlayerRadius,
	})
	w.Component.Health.Set(e, component.HealthComponent{
		Current: parameter.PlayerInitialMaxHealth,
		Max:     parameter.PlayerInitialMaxHealth,
		Alive:   true,
	})
	w.Component.Ability.Set(e, component.AbilityComponent{})

	segments := make([]vmath.Vec2, parameter.BodyInitialLength)
	for i := range segments {
		segments[i] = vmath.V(center.X-float64(i+1)*parameter.BodySpacing, center.Y)
	}
	w.Component.Body.Set(e, component.BodyComponent{Segments: segments})

	w.Resource.Player.Entity = e
	return e
}
