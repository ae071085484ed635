package component

// Archetype selects an enemy's behavior, fixed at spawn for its lifetime
type Archetype int

const (
	ArchetypeDefault Archetype = iota // Direct pursuit fallback
	ArchetypeRunner                   // Direct pursuit at full speed
	ArchetypeTank                     // Heavy-inertia pursuit
	ArchetypeSniper                   // Standoff band, aimed single shots
	ArchetypeBoss                     // Very heavy inertia, radial bursts
)

// String returns the archetype tag name
func (a Archetype) String() string {
	switch a {
	case ArchetypeRunner:
		return "runner"
	case ArchetypeTank:
		return "tank"
	case ArchetypeSniper:
		return "sniper"
	case ArchetypeBoss:
		return "boss"
	default:
		return "default"
	}
}

// ArchetypeStats holds per-archetype base tunables applied at spawn,
// before level scaling
type ArchetypeStats struct {
	Radius        float64
	MaxHealth     float64
	Speed         float64
	ContactDamage float64
	ScoreValue    float64
}

// ArchetypeTable is the behavior tunables table; unknown tags dispatch to
// ArchetypeDefault
var ArchetypeTable = map[Archetype]ArchetypeStats{
	ArchetypeRunner:  {Radius: 9, MaxHealth: 26, Speed: 150, ContactDamage: 9, ScoreValue: 25},
	ArchetypeTank:    {Radius: 16, MaxHealth: 80, Speed: 70, ContactDamage: 16, ScoreValue: 40},
	ArchetypeSniper:  {Radius: 11, MaxHealth: 34, Speed: 95, ContactDamage: 8, ScoreValue: 35},
	ArchetypeBoss:    {Radius: 30, MaxHealth: 520, Speed: 55, ContactDamage: 24, ScoreValue: 250},
	ArchetypeDefault: {Radius: 10, MaxHealth: 30, Speed: 110, ContactDamage: 10, ScoreValue: 20},
}

// Stats returns the base stats for an archetype with default fallback
func (a Archetype) Stats() ArchetypeStats {
	if s, ok := ArchetypeTable[a]; ok {
		return s
	}
	return ArchetypeTable[ArchetypeDefault]
}

// EnemyComponent holds hostile entity state; health lives in
// HealthComponent, position/velocity in MotionComponent
type EnemyComponent struct {
	Archetype Archetype

	// Level-scaled stats baked at spawn time
	Speed         float64
	ContactDamage float64
	ScoreValue    float64

	// FireCooldown counts down on the hostile clock (sniper/boss)
	FireCooldown float64
}
