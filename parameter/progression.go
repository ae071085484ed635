package parameter

// Enemy spawn cadence
const (
	// SpawnIntervalBase is the level-1 enemy spawn interval in seconds
	SpawnIntervalBase = 2.2

	// SpawnIntervalPerLevel is the interval reduction per level
	SpawnIntervalPerLevel = 0.08

	// SpawnIntervalMin is the cadence floor
	SpawnIntervalMin = 0.45

	// SpawnJitter is the symmetric interval jitter fraction (±25%)
	SpawnJitter = 0.25

	// DoubleSpawnLevel is the level at and above which each spawn event
	// produces two enemies
	DoubleSpawnLevel = 6

	// SpawnEdgeOffset places spawns just outside the visible bound
	SpawnEdgeOffset = 20.0
)

// Archetype roll weights; the remainder rolls "default"
const (
	SpawnWeightRunner = 0.35
	SpawnWeightSniper = 0.20
	SpawnWeightTank   = 0.15
)

// Boss gating
const (
	// BossLevelInterval forces a boss spawn on every level divisible by
	// this value, provided no boss is currently alive
	BossLevelInterval = 4
)

// Leveling
const (
	// XPThresholdBase is the base experience required per level
	XPThresholdBase = 450.0

	// XPThresholdPerLevel is the additional requirement per level
	XPThresholdPerLevel = 170.0

	// LevelUpMaxHealthBonus is the permanent max-health gain per level
	LevelUpMaxHealthBonus = 6.0

	// LevelUpHealAmount is the partial heal applied on level-up
	LevelUpHealAmount = 30.0

	// LevelUpShieldAmount is the shield top-up applied on level-up
	LevelUpShieldAmount = 40.0

	// LevelUpAnnounceDuration is how long the announcement stays on the
	// HUD snapshot, in seconds
	LevelUpAnnounceDuration = 2.5
)
