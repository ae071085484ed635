package event

// EventType represents the type of game event
type EventType int

const (
	// === Session Events ===

	// EventMatchReset reinitializes every system's session state
	// Trigger: driver restart after game over
	// Consumer: all systems | Payload: nil
	EventMatchReset EventType = iota

	// EventGameOver signals the match reached its terminal state
	// Trigger: CollisionSystem when player health hits zero
	// Consumer: FxSystem, driver via match phase | Payload: nil
	EventGameOver

	// EventLevelUp announces a crossed level threshold
	// Trigger: ProgressionSystem
	// Consumer: FxSystem, MissionSystem (fresh draw happens in
	// ProgressionSystem itself) | Payload: *LevelUpPayload
	EventLevelUp

	// === Combat Events ===

	// EventEnemyKilled signals an enemy's removal by damage
	// Trigger: CollisionSystem (projectile and mine passes)
	// Consumer: MissionSystem, FxSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerDamaged signals damage that actually landed
	// (fully invulnerability-negated hits emit nothing)
	// Trigger: CollisionSystem contact/projectile passes
	// Consumer: FxSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventMineDetonated signals a mine blast
	// Trigger: CollisionSystem mine pass
	// Consumer: FxSystem | Payload: *MineDetonatedPayload
	EventMineDetonated

	// === Collection Events ===

	// EventPickupCollected signals a collected core
	// Trigger: CollisionSystem pickup pass
	// Consumer: MissionSystem, FxSystem | Payload: *PickupCollectedPayload
	EventPickupCollected

	// === Presentation Requests ===

	// EventSoundRequest requests a fire-and-forget audio cue
	// Trigger: gameplay systems
	// Consumer: FxSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventParticleBurst requests a cosmetic particle burst
	// Trigger: gameplay systems
	// Consumer: FxSystem | Payload: *ParticleBurstPayload
	EventParticleBurst

	// EventCameraShake requests a camera shake pulse
	// Trigger: CollisionSystem on landed player damage
	// Consumer: FxSystem | Payload: *CameraShakePayload
	EventCameraShake
)

// GameEvent pairs a type with its payload and origin frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
