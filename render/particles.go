package render

import (
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/vmath"
)

const (
	particleCap = 512
	particleTTL = 0.6
)

// particle is one cosmetic spark
type particle struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	ttl   float64
	color core.RGB
}

// ParticlePool implements the simulation's particle sink with a fixed
// capacity; bursts past the cap silently drop the overflow
// Cosmetic timers run on the driver's real frame delta, never on game
// time, so particles keep moving while the simulation is paused-frozen
// at game over
type ParticlePool struct {
	particles []particle
	rng       *vmath.FastRand
}

func NewParticlePool(seed uint64) *ParticlePool {
	return &ParticlePool{
		particles: make([]particle, 0, particleCap),
		rng:       vmath.NewFastRand(seed),
	}
}

// Burst spawns count sparks at pos with randomized radial velocities
func (p *ParticlePool) Burst(pos vmath.Vec2, count int, color core.RGB, speed float64) {
	for i := 0; i < count; i++ {
		if len(p.particles) >= particleCap {
			return
		}
		dir := vmath.FromAngle(p.rng.Range(0, 6.2831853))
		p.particles = append(p.particles, particle{
			pos:   pos,
			vel:   dir.Scale(p.rng.Range(speed*0.4, speed)),
			ttl:   p.rng.Range(particleTTL*0.5, particleTTL),
			color: color,
		})
	}
}

// Update advances and compacts the pool; dt is the real frame delta
func (p *ParticlePool) Update(dt float64) {
	live := p.particles[:0]
	for _, pt := range p.particles {
		pt.ttl -= dt
		if pt.ttl <= 0 {
			continue
		}
		pt.pos = pt.pos.Add(pt.vel.Scale(dt))
		live = append(live, pt)
	}
	p.particles = live
}

// Each visits every live particle with its remaining-life fraction
func (p *ParticlePool) Each(fn func(pos vmath.Vec2, color core.RGB, life float64)) {
	for _, pt := range p.particles {
		fn(pt.pos, pt.color, pt.ttl/particleTTL)
	}
}

// Clear drops all live particles
func (p *ParticlePool) Clear() {
	p.particles = p.particles[:0]
}
