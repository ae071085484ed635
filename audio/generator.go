package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator produces a sine tone with an exponential fade and a
// linear frequency sweep; positive sweep rises, negative falls
// Covers most cues: shots, hits, pickups, dashes
type BlipGenerator struct {
	sr    beep.SampleRate
	freq  float64
	sweep float64
	pos   int
}

func NewBlipGenerator(sr beep.SampleRate, freq, sweep float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, sweep: sweep}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.freq + g.sweep*t
		if freq < 40 {
			freq = 40
		}

		envelope := math.Exp(-t * 10)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error { return nil }

// CrashGenerator produces filtered noise over a low rumble for the mine
// detonation cue
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewCrashGenerator(sr beep.SampleRate) *CrashGenerator {
	return &CrashGenerator{sr: sr, seed: time.Now().UnixNano()}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error { return nil }

// ChimeGenerator produces a short ascending two-note arpeggio for the
// level-up cue
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteSamples := g.sr.N(time.Millisecond * 250)
	freqs := [2]float64{523.25, 783.99} // C5, G5

	for i := range samples {
		note := g.pos / noteSamples
		if note > 1 {
			note = 1
		}
		notePos := g.pos % noteSamples
		t := float64(notePos) / float64(g.sr)

		envelope := math.Exp(-t * 7)
		sample := 0.18 * envelope * math.Sin(2*math.Pi*freqs[note]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error { return nil }
