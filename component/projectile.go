package component

// ProjectileComponent marks a linear shot; player-fired projectiles
// advance on the undilated clock, hostile ones on the dilated clock
type ProjectileComponent struct {
	Damage float64

	// TTL is remaining lifetime in seconds
	TTL float64

	// Hostile is true for enemy-fired shots targeting the player
	Hostile bool
}
