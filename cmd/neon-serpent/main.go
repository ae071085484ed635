package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-serpent/audio"
	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/input"
	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/render"
	"github.com/lixenwraith/neon-serpent/system"
)

// holdWindow approximates key-held state from terminal repeats; a key
// with no repeat inside this window counts as released
const holdWindow = 150 * time.Millisecond

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "gameplay rng seed")
	mute := flag.Bool("mute", false, "disable audio cues")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashHook(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
		screen.Fini()
	}()
	screen.HideCursor()

	cues := audio.NewCuePlayer()
	if err := cues.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("audio unavailable: %v", err)
	}
	cues.SetMuted(*mute)
	defer cues.Cleanup()

	particles := render.NewParticlePool(*seed ^ 0x9e3779b97f4a7c15)
	keys := input.NewKeyState()

	world := engine.NewWorld(*seed)
	world.Resource.Audio = cues
	world.Resource.Particles = particles
	world.Resource.Input = keys
	system.RegisterAll(world)

	ticker := engine.NewTicker(world)
	ticker.Reset()

	game := &game{
		screen:    screen,
		world:     world,
		ticker:    ticker,
		renderer:  render.NewRenderer(screen, parameter.WorldWidth, parameter.WorldHeight),
		particles: particles,
		keys:      keys,
		clock:     engine.NewPausableClock(),
	}
	game.run()
}

type game struct {
	screen    tcell.Screen
	world     *engine.World
	ticker    *engine.Ticker
	renderer  *render.Renderer
	particles *render.ParticlePool
	keys      *input.KeyState
	clock     *engine.PausableClock

	paused bool
}

// run is the real-time driver loop: poll input, tick the simulation on
// game time, draw the snapshot on wall time
func (g *game) run() {
	frame := time.NewTicker(parameter.TickInterval)
	defer frame.Stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	lastTick := g.clock.Now()
	lastReal := time.Now()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}

		case <-frame.C:
			now := g.clock.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			realNow := time.Now()
			realDt := realNow.Sub(lastReal).Seconds()
			lastReal = realNow

			g.ticker.Tick(dt)
			g.keys.Reset()

			g.particles.Update(realDt)
			g.renderer.Draw(engine.BuildSnapshot(g.world), g.particles)
		}
	}
}

// handleEvent maps terminal keys onto semantic actions; returns false
// to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.keys.Press(input.ActionMoveUp, holdWindow)
	case tcell.KeyDown:
		g.keys.Press(input.ActionMoveDown, holdWindow)
	case tcell.KeyLeft:
		g.keys.Press(input.ActionMoveLeft, holdWindow)
	case tcell.KeyRight:
		g.keys.Press(input.ActionMoveRight, holdWindow)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'k':
			g.keys.Press(input.ActionMoveUp, holdWindow)
		case 's', 'j':
			g.keys.Press(input.ActionMoveDown, holdWindow)
		case 'a', 'h':
			g.keys.Press(input.ActionMoveLeft, holdWindow)
		case 'd', 'l':
			g.keys.Press(input.ActionMoveRight, holdWindow)
		case ' ':
			g.keys.PressRepeat(input.ActionFirePrimary, holdWindow)
		case 'f':
			g.keys.Press(input.ActionDash, holdWindow)
		case 'b':
			g.keys.Press(input.ActionBurst, holdWindow)
		case 'm':
			g.keys.Press(input.ActionDropMine, holdWindow)
		case 'p':
			g.togglePause()
		case 'r':
			g.restart()
		case 'q':
			return false
		}
	}
	return true
}

func (g *game) togglePause() {
	g.paused = !g.paused
	g.ticker.SetPaused(g.paused)
	if g.paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

func (g *game) restart() {
	if g.paused {
		g.togglePause()
	}
	g.particles.Clear()
	g.ticker.Reset()
}
