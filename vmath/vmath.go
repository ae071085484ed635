package vmath

import "math"

// Clamp limits v to the inclusive range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into the half-open range [0, span)
func Wrap(v, span float64) float64 {
	if span <= 0 {
		return 0
	}
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}

// ExpApproach moves current toward target with exponential smoothing
// rate is 1/sec; dt in seconds. Frame-rate independent low-pass filter
func ExpApproach(current, target, rate, dt float64) float64 {
	return current + (target-current)*(1-math.Exp(-rate*dt))
}

// ExpDecayToward relaxes current toward target at decay rate per second
// Used for combo relaxation; never overshoots
func ExpDecayToward(current, target, rate, dt float64) float64 {
	return target + (current-target)*math.Exp(-rate*dt)
}

// --- Randomness ---

// FastRand is a xorshift64 generator for gameplay randomness
// Deterministic for a given seed; not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
