package component

// MineComponent is a player-deployed delayed-arm area-damage device
// It cannot trigger until ArmRemaining reaches zero
type MineComponent struct {
	ArmRemaining float64
	TTL          float64
}

// Armed reports whether the mine can detonate
func (m *MineComponent) Armed() bool {
	return m.ArmRemaining <= 0
}
