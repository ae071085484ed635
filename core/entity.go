package core

// Entity is a unique identifier for a simulated entity
// Zero is never allocated and doubles as "no entity"
type Entity uint64

// NoEntity is the sentinel for an absent entity reference
const NoEntity Entity = 0
