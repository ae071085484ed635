package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/neon-serpent/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// CuePlayer synthesizes short fire-and-forget cues for gameplay events
// Implements the simulation's audio sink. When no speaker is available
// (headless host, busy device) it degrades to a silent no-op instead of
// failing the game
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCuePlayer creates an uninitialized player; call Initialize before
// use
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
// A failed open leaves the player silent but usable
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(cp.mixer)
	cp.initialized = true
	return nil
}

// Cleanup silences all cues; beep has no speaker Close, clearing the
// mixer is the best available shutdown
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	cp.mixer.Clear()
	cp.initialized = false
}

// SetMuted toggles cue playback without touching the speaker
func (cp *CuePlayer) SetMuted(muted bool) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.muted = muted
}

// cueTable holds one synthesis recipe per gameplay sound
var cueTable = [core.SoundTypeCount]func() beep.Streamer{
	core.SoundShoot:     func() beep.Streamer { return take(40, NewBlipGenerator(sampleRate, 880, -600)) },
	core.SoundHit:       func() beep.Streamer { return take(120, NewBlipGenerator(sampleRate, 160, -40)) },
	core.SoundPickup:    func() beep.Streamer { return take(90, NewBlipGenerator(sampleRate, 660, 500)) },
	core.SoundDash:      func() beep.Streamer { return take(140, NewBlipGenerator(sampleRate, 320, 700)) },
	core.SoundBurst:     func() beep.Streamer { return take(400, NewBlipGenerator(sampleRate, 520, -380)) },
	core.SoundExplosion: func() beep.Streamer { return take(350, NewCrashGenerator(sampleRate)) },
	core.SoundKill:      func() beep.Streamer { return take(110, NewBlipGenerator(sampleRate, 440, 330)) },
	core.SoundLevelUp:   func() beep.Streamer { return take(500, NewChimeGenerator(sampleRate)) },
	core.SoundDeath:     func() beep.Streamer { return take(900, NewBlipGenerator(sampleRate, 220, -160)) },
}

// PlayCue schedules the cue for a gameplay sound; fire-and-forget
func (cp *CuePlayer) PlayCue(sound core.SoundType) {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized || cp.muted {
		return
	}
	if sound < 0 || sound >= core.SoundTypeCount {
		return
	}

	cp.mixer.Add(cueTable[sound]())
}

func take(ms int, g beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(time.Duration(ms)*time.Millisecond), g)
}
