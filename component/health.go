package component

import "github.com/lixenwraith/neon-serpent/parameter"

// HealthComponent holds clamped health/shield state and the
// post-hit invulnerability timer
type HealthComponent struct {
	Current float64
	Max     float64

	// Shield absorbs damage before health, capped at PlayerMaxShield
	Shield float64

	// InvulnRemaining nullifies all incoming damage while positive
	InvulnRemaining float64

	Alive bool
}

// ApplyDamage routes damage through the shield-first absorption law and
// returns the damage that actually landed (shield plus health). A zero
// return means the hit was fully negated by invulnerability and must not
// trigger side effects (combo reset, damage flag, camera shake)
func (h *HealthComponent) ApplyDamage(amount float64) float64 {
	if amount <= 0 || h.InvulnRemaining > 0 {
		return 0
	}

	applied := 0.0
	if h.Shield > 0 {
		absorbed := amount
		if absorbed > h.Shield {
			absorbed = h.Shield
		}
		h.Shield -= absorbed
		amount -= absorbed
		applied += absorbed
	}
	if amount > 0 {
		h.Current -= amount
		applied += amount
	}
	h.clamp()

	if applied > 0 {
		h.InvulnRemaining = parameter.PlayerInvulnDuration
	}
	if h.Current <= 0 {
		h.Alive = false
	}
	return applied
}

// Heal restores health up to Max
func (h *HealthComponent) Heal(amount float64) {
	h.Current += amount
	h.clamp()
}

// AddShield grants shield up to the cap
func (h *HealthComponent) AddShield(amount float64) {
	h.Shield += amount
	h.clamp()
}

func (h *HealthComponent) clamp() {
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Shield > parameter.PlayerMaxShield {
		h.Shield = parameter.PlayerMaxShield
	}
	if h.Shield < 0 {
		h.Shield = 0
	}
}
