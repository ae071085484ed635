package parameter

// Archetype movement
const (
	// TankVelocityBlend is the per-tick velocity blend factor toward the
	// pursuit direction; tanks are slow to turn
	TankVelocityBlend = 0.03

	// BossVelocityBlend is the boss pursuit blend, heavier than tank
	BossVelocityBlend = 0.015

	// SniperStandoffRadius is the preferred distance band center
	SniperStandoffRadius = 210.0

	// SniperStandoffBand is the half-width of the hold band; inside it
	// the sniper decelerates instead of moving
	SniperStandoffBand = 15.0

	// SniperHoldDecel is the velocity damping rate while holding (1/sec)
	SniperHoldDecel = 6.0
)

// Archetype fire control
const (
	// SniperCooldownMin is the lower bound of the randomized shot interval
	SniperCooldownMin = 1.4

	// SniperCooldownMax is the upper bound of the randomized shot interval
	SniperCooldownMax = 2.2

	// BossFireCooldown is the fixed radial burst interval in seconds
	BossFireCooldown = 1.15

	// BossBurstCount is projectiles per radial burst, equally spaced
	BossBurstCount = 12
)

// Enemy projectiles
const (
	SniperProjectileSpeed  = 260.0
	SniperProjectileDamage = 10.0
	SniperProjectileTTL    = 4.0

	BossProjectileSpeed  = 180.0
	BossProjectileDamage = 12.0
	BossProjectileTTL    = 5.0

	// EnemyProjectileRadius is the collision radius for all hostile shots
	EnemyProjectileRadius = 4.0
)

// Per-level spawn scaling; the three axes scale independently so higher
// levels are not uniformly harder along every axis
const (
	// EnemyHealthScalePerLevel grows max health per level above 1
	EnemyHealthScalePerLevel = 0.25

	// EnemyDamageScalePerLevel grows contact damage per level above 1
	EnemyDamageScalePerLevel = 0.10

	// EnemySpeedScalePerLevel grows movement speed per level above 1
	EnemySpeedScalePerLevel = 0.035
)

// Per-archetype base stats live in component.ArchetypeTable, next to the
// behavior dispatch that consumes them
