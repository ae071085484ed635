package parameter

// Contact damage
const (
	// ContactDamageFactor scales enemy contact damage per second of
	// overlap: damage = contact * dt * ContactDamageFactor
	ContactDamageFactor = 3.5
)

// Mines
const (
	// MineRadius is the device's own collision radius
	MineRadius = 8.0

	// MineArmDelay is the delay before a dropped mine can trigger
	MineArmDelay = 0.5

	// MineTTL is the mine lifetime in seconds after which it fizzles
	MineTTL = 10.0

	// MineBlastRadius is the base blast reach; the per-enemy gate is
	// MineBlastRadius plus that enemy's radius
	MineBlastRadius = 90.0

	// MineBlastBase is the damage at zero distance
	MineBlastBase = 65.0

	// MineBlastFalloff is damage lost per unit of distance
	// The result is deliberately not floor-clamped at zero; targets past
	// ~186 units inside the gate take no effective damage
	MineBlastFalloff = 0.35
)

// Combo model
const (
	// ComboMin is the resting multiplier
	ComboMin = 1.0

	// ComboMax is the multiplier cap
	ComboMax = 6.0

	// ComboStep is the bump applied by each scoring event
	ComboStep = 0.2

	// ComboDecayWindow is seconds of grace after a scoring event before
	// the multiplier starts relaxing
	ComboDecayWindow = 4.0

	// ComboRelaxRate is the exponential relaxation rate toward ComboMin
	ComboRelaxRate = 1.2
)

// Camera feedback
const (
	// ShakeMagnitude is the camera shake pulse strength on player damage
	ShakeMagnitude = 6.0

	// ShakeDuration is the pulse length in seconds
	ShakeDuration = 0.25
)
