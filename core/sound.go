package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit       SoundType = iota // Damage landed on the player
	SoundPickup                     // Core pickup collected
	SoundShoot                      // Primary fire
	SoundDash                       // Dash activation
	SoundBurst                      // Temporal burst activation
	SoundExplosion                  // Mine detonation
	SoundKill                       // Enemy destroyed
	SoundLevelUp                    // Level threshold crossed
	SoundDeath                      // Player death
	SoundTypeCount
)
