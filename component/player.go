package component

import "github.com/lixenwraith/neon-serpent/vmath"

// PlayerComponent holds steering state for the player head
// TargetDir is the raw input-derived direction and persists when no
// directional key is held; Facing is the smoothed unit direction
type PlayerComponent struct {
	TargetDir vmath.Vec2
	Facing    vmath.Vec2
}
