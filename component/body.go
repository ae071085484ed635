package component

import "github.com/lixenwraith/neon-serpent/vmath"

// BodyComponent is the player's ordered trailing segment chain
// Segment zero follows the head; each later segment follows its
// predecessor. Kills append pending growth consumed one segment per tick
type BodyComponent struct {
	Segments []vmath.Vec2

	// PendingGrowth is segments queued by kills, not yet materialized
	PendingGrowth int
}

// Grow queues n additional segments
func (b *BodyComponent) Grow(n int) {
	b.PendingGrowth += n
}

// Length returns the current materialized segment count
func (b *BodyComponent) Length() int {
	return len(b.Segments)
}
