package component

// AbilityComponent tracks per-ability cooldowns and active-effect timers
// Cooldowns count down every tick regardless of use; activation is only
// permitted at <= 0 and resets the cooldown to its fixed constant
type AbilityComponent struct {
	PrimaryCooldown float64
	DashCooldown    float64
	BurstCooldown   float64
	MineCooldown    float64

	// Active-duration windows; both multipliers stack while positive
	DashRemaining  float64
	BurstRemaining float64
}

// SpeedMultiplier returns the combined movement multiplier from active
// ability windows
func (a *AbilityComponent) SpeedMultiplier(dashMult, burstMult float64) float64 {
	mult := 1.0
	if a.DashRemaining > 0 {
		mult *= dashMult
	}
	if a.BurstRemaining > 0 {
		mult *= burstMult
	}
	return mult
}

// BurstActive reports whether the temporal burst window is open
func (a *AbilityComponent) BurstActive() bool {
	return a.BurstRemaining > 0
}
