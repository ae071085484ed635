package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-serpent/event"
	"github.com/lixenwraith/neon-serpent/parameter"
)

// Ticker is the explicit tick(dt) entry point driving the simulation
// Any driver works: the real-time scheduler in cmd, a deterministic test
// harness, or a replay harness. One Tick call advances the entire world
// exactly once; there is no parallelism and no locking inside a tick
type Ticker struct {
	world  *World
	routes map[event.EventType][]System

	gameOverFlushed bool

	statTicks      *atomic.Int64
	statQueueDepth *atomic.Int64
}

// NewTicker builds the event routing table from the registered systems
// Register all systems before constructing the ticker
func NewTicker(world *World) *Ticker {
	t := &Ticker{
		world:          world,
		routes:         make(map[event.EventType][]System),
		statTicks:      world.Resource.Status.Ints.Get("engine.ticks"),
		statQueueDepth: world.Resource.Status.Ints.Get("engine.queue_depth"),
	}

	for _, s := range world.Systems() {
		for _, et := range s.EventTypes() {
			t.routes[et] = append(t.routes[et], s)
		}
	}
	return t
}

// Tick advances the world by dt seconds
// Order per tick: clamp delta → derive hostile delta → dispatch queued
// events → run systems in priority order. Pause and the terminal
// game-over phase freeze everything: no state advances and no
// collaborator side effects fire
func (t *Ticker) Tick(dt float64) {
	match := t.world.Resource.Match
	if match.Paused || match.Phase != MatchRunning {
		return
	}
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	hostile := dt
	if ab, ok := t.world.Component.Ability.Get(t.world.Resource.Player.Entity); ok && ab.BurstActive() {
		hostile = dt * parameter.HostileTimeScale
	}

	tr := t.world.Resource.Time
	tr.Delta = dt
	tr.HostileDelta = hostile
	tr.Elapsed += hostile
	tr.Frame++

	t.statQueueDepth.Store(int64(t.world.Resource.Event.Len()))
	t.dispatchEvents()
	t.world.Update()

	// Flush the terminal transition once so the death cue and final
	// kill attribution reach their consumers before the freeze
	if match.Phase == MatchOver && !t.gameOverFlushed {
		t.gameOverFlushed = true
		t.dispatchEvents()
	}

	t.statTicks.Add(1)
}

// SetPaused halts or resumes the simulation between ticks
// No effect on the terminal game-over state
func (t *Ticker) SetPaused(paused bool) {
	t.world.Resource.Match.Paused = paused
}

// Reset reinitializes the match: entities cleared, match state reset,
// player respawned, and EventMatchReset delivered synchronously so every
// system drops its session state before the next tick
func (t *Ticker) Reset() {
	// Drop stale events from the previous session
	_ = t.world.Resource.Event.Consume()

	t.world.ClearEntities()
	t.world.Resource.Match.Reset()
	tr := t.world.Resource.Time
	tr.Delta = 0
	tr.HostileDelta = 0
	tr.Elapsed = 0
	tr.Frame = 0
	t.gameOverFlushed = false

	SpawnPlayer(t.world)

	t.world.PushEvent(event.EventMatchReset, nil)
	t.dispatchEvents()
}

// dispatchEvents routes all queued events to their subscribed systems
func (t *Ticker) dispatchEvents() {
	for _, ev := range t.world.Resource.Event.Consume() {
		for _, s := range t.routes[ev.Type] {
			s.HandleEvent(ev)
		}
	}
}
