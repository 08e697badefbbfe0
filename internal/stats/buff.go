// internal/stats/buff.go
package stats

// Buff is an additive stat modifier. A single Buff value is shared by pointer
// between every entity it is applied to; entities hold references, never copies,
// and removing a reference never mutates the Buff itself.
type Buff struct {
	ID                string  `json:"id"`
	MaxHealthBuff     int     `json:"max_health"`
	DefenseBuff       int     `json:"defense"`
	MovementSpeedBuff float64 `json:"movement_speed"`
	MeleeAttackBuff   int     `json:"melee_attack"`
	RangedAttackBuff  int     `json:"ranged_attack"`
	// Multiplier scales every component. Zero in authored data means one stack.
	Multiplier float64 `json:"multiplier,omitempty"`
}

// GetMultiplier returns the stacking multiplier applied to every component.
func (b *Buff) GetMultiplier() float64 {
	if b.Multiplier == 0 {
		return 1
	}
	return b.Multiplier
}

// IsEmpty reports whether the buff changes nothing.
func (b *Buff) IsEmpty() bool {
	return b.MaxHealthBuff == 0 && b.DefenseBuff == 0 && b.MovementSpeedBuff == 0 &&
		b.MeleeAttackBuff == 0 && b.RangedAttackBuff == 0
}
