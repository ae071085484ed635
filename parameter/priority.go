package parameter

// System priorities, lower runs first
// The order is load-bearing: collision resolution must observe the
// positions produced by the movement systems of the same tick, and the
// cull pass must run last so every resolver sees a stable entity set
const (
	PriorityPlayer      = 10
	PriorityEnemy       = 20
	PriorityProjectile  = 30
	PriorityMine        = 40
	PriorityCollision   = 50
	PriorityMission     = 60
	PriorityProgression = 70
	PriorityFx          = 80
	PriorityCull        = 90
)
