package parameter

// Pickup geometry and caps
const (
	// PickupRadius is the pickup's own radius
	PickupRadius = 7.0

	// PickupCollectRadius is the distance from the player head within
	// which a pickup is collected
	PickupCollectRadius = 26.0

	// PickupLiveCap is the maximum concurrent uncollected pickups
	PickupLiveCap = 9
)

// Pickup spawn cadence
const (
	// PickupSpawnMin is the lower bound of the spawn interval in seconds
	PickupSpawnMin = 1.2

	// PickupSpawnMax is the upper bound of the spawn interval in seconds
	PickupSpawnMax = 2.6
)

// Pickup effects; Value feeds scoring (multiplied by combo) and
// experience (unmultiplied)
const (
	PickupEnergyValue = 25.0

	PickupHealthValue = 20.0
	// PickupHealAmount is health restored by a health core
	PickupHealAmount = 15.0

	PickupShieldValue = 20.0
	// PickupShieldAmount is shield granted by a shield core
	PickupShieldAmount = 25.0
)
