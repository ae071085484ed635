package component

import "github.com/lixenwraith/neon-serpent/vmath"

// MotionComponent holds continuous position/velocity state in world units
type MotionComponent struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}
