package system

import "github.com/lixenwraith/neon-serpent/engine"

// RegisterAll wires the full simulation pipeline into the world in its
// load-bearing priority order. Call before constructing the Ticker so
// the event routing table sees every system
func RegisterAll(world *engine.World) {
	world.AddSystem(NewPlayerSystem(world))
	world.AddSystem(NewEnemySystem(world))
	world.AddSystem(NewProjectileSystem(world))
	world.AddSystem(NewMineSystem(world))
	world.AddSystem(NewCollisionSystem(world))
	world.AddSystem(NewMissionSystem(world))
	world.AddSystem(NewProgressionSystem(world))
	world.AddSystem(NewFxSystem(world))
	world.AddSystem(NewCullSystem(world))
}
