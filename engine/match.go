package engine

import (
	"math"

	"github.com/lixenwraith/neon-serpent/parameter"
	"github.com/lixenwraith/neon-serpent/vmath"
)

// MatchPhase is the coarse session state
type MatchPhase int

const (
	MatchRunning MatchPhase = iota
	MatchOver
)

// Mission is a live per-level objective stamped from a template
// Once Done or Failed it is terminal: progress and state never change
// again
type Mission struct {
	ID   string
	Text string
	Type parameter.MissionType

	Target   int
	Progress int

	Timed         bool
	TimeRemaining float64

	Done   bool
	Failed bool

	Reward float64
}

// Terminal reports whether the mission accepts no further mutation
func (m *Mission) Terminal() bool {
	return m.Done || m.Failed
}

// Advance adds progress toward the target, clamped, and marks Done on
// reaching it. No-op once terminal
func (m *Mission) Advance(n int) {
	if m.Terminal() || n <= 0 {
		return
	}
	m.Progress += n
	if m.Progress >= m.Target {
		m.Progress = m.Target
		m.Done = true
	}
}

// Raise lifts progress to at least p (high-water semantics for the
// combo-tier mission). No-op once terminal
func (m *Mission) Raise(p int) {
	if m.Terminal() || p <= m.Progress {
		return
	}
	m.Progress = p
	if m.Progress >= m.Target {
		m.Progress = m.Target
		m.Done = true
	}
}

// TickCountdown advances a timed mission's clock and fails it when the
// timer lapses with the target unmet. No-op once terminal or untimed
func (m *Mission) TickCountdown(dt float64) {
	if m.Terminal() || !m.Timed {
		return
	}
	m.TimeRemaining -= dt
	if m.TimeRemaining <= 0 {
		m.TimeRemaining = 0
		m.Failed = true
	}
}

// MatchState is the shared mutable match context threaded through every
// resolver within a tick. Owned exclusively by the tick orchestrator
type MatchState struct {
	Phase  MatchPhase
	Paused bool

	Score int64
	Level int

	// Experience toward the next level, unmultiplied base values
	Experience float64

	// Combo multiplier state
	Combo               float64
	ComboDecayRemaining float64

	// ComboTier is the highest integer floor of combo reached this level
	ComboTier int

	// TookDamageThisLevel gates the no-damage mission
	TookDamageThisLevel bool

	Missions []*Mission

	// Announcement is a transient HUD banner (level-up etc.)
	Announcement      string
	AnnounceRemaining float64
}

// NewMatchState creates a level-1 match in its initial state
func NewMatchState() *MatchState {
	m := &MatchState{}
	m.Reset()
	return m
}

// Reset reinitializes the match for a fresh session
func (m *MatchState) Reset() {
	m.Phase = MatchRunning
	m.Paused = false
	m.Score = 0
	m.Level = 1
	m.Experience = 0
	m.Combo = parameter.ComboMin
	m.ComboDecayRemaining = 0
	m.ComboTier = int(parameter.ComboMin)
	m.TookDamageThisLevel = false
	m.Missions = nil
	m.Announcement = ""
	m.AnnounceRemaining = 0
}

// AddScore applies a scoring event: score gains the base value times the
// current combo (rounded), the decay window refreshes and the combo
// bumps by its fixed step. Returns the score gained
func (m *MatchState) AddScore(base float64) int64 {
	gained := int64(math.Round(base * m.Combo))
	m.Score += gained

	m.ComboDecayRemaining = parameter.ComboDecayWindow
	m.Combo = vmath.Clamp(m.Combo+parameter.ComboStep, parameter.ComboMin, parameter.ComboMax)

	if tier := int(math.Floor(m.Combo)); tier > m.ComboTier {
		m.ComboTier = tier
	}
	return gained
}

// AddExperience accrues unmultiplied base value toward the next level
func (m *MatchState) AddExperience(base float64) {
	m.Experience += base
}

// ResetCombo snaps the multiplier back to its floor; the per-level tier
// high-water mark is intentionally preserved
func (m *MatchState) ResetCombo() {
	m.Combo = parameter.ComboMin
	m.ComboDecayRemaining = 0
}

// TickCombo advances the decay window and, once it lapses, relaxes the
// multiplier smoothly toward its floor
func (m *MatchState) TickCombo(dt float64) {
	if m.ComboDecayRemaining > 0 {
		m.ComboDecayRemaining -= dt
		return
	}
	m.Combo = vmath.ExpDecayToward(m.Combo, parameter.ComboMin, parameter.ComboRelaxRate, dt)
	m.Combo = vmath.Clamp(m.Combo, parameter.ComboMin, parameter.ComboMax)
}

// XPThreshold returns the experience required to leave the current level
func (m *MatchState) XPThreshold() float64 {
	return parameter.XPThresholdBase + float64(m.Level)*parameter.XPThresholdPerLevel
}

// MissionPayout sums the fixed rewards of done missions
func (m *MatchState) MissionPayout() float64 {
	total := 0.0
	for _, mission := range m.Missions {
		if mission.Done {
			total += mission.Reward
		}
	}
	return total
}

// Announce sets the transient HUD banner
func (m *MatchState) Announce(text string, duration float64) {
	m.Announcement = text
	m.AnnounceRemaining = duration
}

// TickAnnouncement decays the banner on the cosmetic clock
func (m *MatchState) TickAnnouncement(dt float64) {
	if m.AnnounceRemaining > 0 {
		m.AnnounceRemaining -= dt
		if m.AnnounceRemaining <= 0 {
			m.Announcement = ""
		}
	}
}
