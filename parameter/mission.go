package parameter

// MissionType drives which game event advances a mission
type MissionType int

const (
	// MissionKillRunners increments on runner kills
	MissionKillRunners MissionType = iota

	// MissionCollectPickups increments on any pickup collection
	MissionCollectPickups

	// MissionAvoidDamage accrues elapsed time while the level's damage
	// flag stays unset; fails when its timer lapses with target unmet
	MissionAvoidDamage

	// MissionMineKills increments on kills attributed to mines
	MissionMineKills

	// MissionComboTier tracks the level's combo-tier high-water mark
	MissionComboTier
)

// MissionTemplate is an immutable pool entry; live missions are stamped
// from these at level start
type MissionTemplate struct {
	ID       string
	Text     string
	Type     MissionType
	Target   int
	Duration float64 // Countdown in seconds, 0 = untimed
	Reward   float64
}

// MissionPool is the fixed template pool shuffled at each level start
var MissionPool = []MissionTemplate{
	{ID: "cull-runners", Text: "Cull runners", Type: MissionKillRunners, Target: 6, Reward: 120},
	{ID: "harvest-cores", Text: "Harvest cores", Type: MissionCollectPickups, Target: 5, Reward: 100},
	{ID: "untouchable", Text: "Stay untouched", Type: MissionAvoidDamage, Target: 20, Duration: 20, Reward: 160},
	{ID: "demolitions", Text: "Mine demolitions", Type: MissionMineKills, Target: 4, Reward: 140},
	{ID: "chain-frenzy", Text: "Reach combo tier", Type: MissionComboTier, Target: 3, Reward: 130},
}

// Mission draw counts
const (
	// MissionDrawCount is the normal missions drawn per level
	MissionDrawCount = 2

	// MissionDrawCountBonus is drawn instead on every third level
	MissionDrawCountBonus = 3

	// MissionBonusLevelInterval selects levels receiving the bonus draw
	MissionBonusLevelInterval = 3
)
