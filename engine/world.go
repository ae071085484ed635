package engine

import (
	"github.com/lixenwraith/neon-serpent/component"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/input"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/status"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// ComponentStore groups the typed component stores for direct,
// reflection-free system access
type ComponentStore struct {
	Player     *Store[component.PlayerComponent]
	Motion     *Store[component.MotionComponent]
	Health     *Store[component.HealthComponent]
	Ability    *Store[component.AbilityComponent]
	Body       *Store[component.BodyComponent]
	Enemy      *Store[component.EnemyComponent]
	Projectile *Store[component.ProjectileComponent]
	Mine       *Store[component.MineComponent]
	Pickup     *Store[component.PickupComponent]
}

// World contains all entities, their components and the match resources
// Mutation is sequential within a tick; systems receive the world for
// the duration of one Update call and retain nothing across ticks
type World struct {
	nextEntityID core.Entity

	Component ComponentStore
	Resource  Resource

	systems   []System
	allStores []AnyStore
}

// NewWorld creates a world with initialized stores and resources
// seed drives all gameplay randomness; identical seeds and inputs
// reproduce identical matches
func NewWorld(seed uint64) *World {
	w := &World{
		nextEntityID: 1,
		Component: ComponentStore{
			Player:     NewStore[component.PlayerComponent](),
			Motion:     NewStore[component.MotionComponent](),
			Health:     NewStore[component.HealthComponent](),
			Ability:    NewStore[component.AbilityComponent](),
			Body:       NewStore[component.BodyComponent](),
			Enemy:      NewStore[component.EnemyComponent](),
			Projectile: NewStore[component.ProjectileComponent](),
			Mine:       NewStore[component.MineComponent](),
			Pickup:     NewStore[component.PickupComponent](),
		},
		Resource: Resource{
			Time: &TimeResource{},
			Config: &ConfigResource{
				WorldWidth:  parameter.WorldWidth,
				WorldHeight: parameter.WorldHeight,
				Margin:      parameter.WorldMargin,
			},
			Match:  NewMatchState(),
			Player: &PlayerResource{},
			Event:  event.NewEventQueue(),
			Status: status.NewRegistry(),
			Rng:    vmath.NewFastRand(seed),
			Input:  input.Nop{},
		},
	}

	c := &w.Component
	w.allStores = []AnyStore{
		c.Player, c.Motion, c.Health, c.Ability, c.Body,
		c.Enemy, c.Projectile, c.Mine, c.Pickup,
	}

	return w
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// DestroyBatch removes a set of entities from every store in one
// compaction pass per store, preserving survivor iteration order
func (w *World) DestroyBatch(entities []core.Entity) {
	for _, s := range w.allStores {
		s.RemoveBatch(entities)
	}
}

// ClearEntities removes all entities and components, keeping resources
// The player handle goes stale with its entity and is invalidated until
// the next spawn
func (w *World) ClearEntities() {
	w.nextEntityID = 1
	w.Resource.Player.Entity = core.NoEntity
	for _, s := range w.allStores {
		s.Clear()
	}
}

// AddSystem registers a system, kept sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, small N
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() > w.systems[i].Priority() {
			w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
		}
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Event.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resource.Time.Frame,
	})
}
