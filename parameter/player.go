package parameter

// Player movement
const (
	// PlayerRadius is the head collision radius in world units
	PlayerRadius = 10.0

	// PlayerBaseSpeed is the undilated movement speed in units/sec
	PlayerBaseSpeed = 185.0

	// PlayerTurnRate is the exponential smoothing rate toward the input
	// direction (1/sec); higher turns snappier
	PlayerTurnRate = 10.0
)

// Player resources
const (
	// PlayerInitialMaxHealth is the starting health cap
	PlayerInitialMaxHealth = 100.0

	// PlayerMaxShield is the hard shield cap
	PlayerMaxShield = 120.0

	// PlayerInvulnDuration is the post-hit window during which all
	// further damage is ignored entirely, in seconds
	PlayerInvulnDuration = 0.2
)

// Ability cooldowns in seconds; timers count down every tick
const (
	PrimaryCooldown = 0.18
	DashCooldown    = 3.5
	BurstCooldown   = 8.0
	MineCooldown    = 2.2
)

// Ability active effects
const (
	// DashDuration is the dash speed-boost window in seconds
	DashDuration = 0.24

	// DashSpeedMult multiplies movement speed while dashing
	DashSpeedMult = 2.6

	// BurstDuration is the temporal burst window in seconds
	BurstDuration = 2.2

	// BurstSpeedMult multiplies the player's own speed during a burst
	BurstSpeedMult = 1.3
)

// Primary fire
const (
	// PrimarySpreadStep is the angular step between spread projectiles
	// in radians; three projectiles at -1, 0, +1 steps
	PrimarySpreadStep = 0.09

	// PrimaryProjectileCount is the projectiles emitted per shot
	PrimaryProjectileCount = 3

	// PlayerProjectileSpeed in units/sec (undilated)
	PlayerProjectileSpeed = 520.0

	// PlayerProjectileDamage per hit
	PlayerProjectileDamage = 18.0

	// PlayerProjectileTTL in seconds
	PlayerProjectileTTL = 1.1

	// PlayerProjectileRadius is the collision radius
	PlayerProjectileRadius = 3.0
)

// Trailing body
const (
	// BodyInitialLength is the starting segment count
	BodyInitialLength = 6

	// BodySpacing is the target distance between consecutive segments
	BodySpacing = 12.0

	// BodyFollowRate is the exponential follow rate of each segment
	// toward its predecessor (1/sec)
	BodyFollowRate = 18.0

	// BodyGrowthPerKill is segments gained per ordinary kill
	BodyGrowthPerKill = 1

	// BodyGrowthPerBoss is segments gained per boss kill
	BodyGrowthPerBoss = 4
)
