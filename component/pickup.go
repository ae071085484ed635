package component

// PickupKind discriminates core pickup effects
type PickupKind int

const (
	PickupEnergy PickupKind = iota // Score only
	PickupHealth                   // Heal plus score
	PickupShield                   // Shield plus score
)

// String returns the kind tag name
func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupShield:
		return "shield"
	default:
		return "energy"
	}
}

// PickupComponent is a collectible core granting score and/or resources
type PickupComponent struct {
	Kind PickupKind

	// Value is the base reward fed to scoring and experience
	Value float64
}
