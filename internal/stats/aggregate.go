// internal/stats/aggregate.go
package stats

// Base holds the unbuffed stats of an entity.
type Base struct {
	Health         int
	Defense        int
	MoveSpeed      float64
	MeleeAffinity  int
	RangedAffinity int
}

// Derived is the result of folding a buff list over a Base.
type Derived struct {
	MaxHealth      int
	Defense        int
	MoveSpeed      float64
	MeleeAffinity  int
	RangedAffinity int
}

// scaled truncates a single buff term toward zero.
func scaled(component int, b *Buff) int {
	return int(float64(component) * b.GetMultiplier())
}

// MaxHealth returns base health plus every buff's health term.
func MaxHealth(base Base, buffs []*Buff) int {
	total := base.Health
	for _, b := range buffs {
		if b == nil {
			continue
		}
		total += scaled(b.MaxHealthBuff, b)
	}
	return total
}

// Defense returns base defense plus every buff's defense term.
func Defense(base Base, buffs []*Buff) int {
	total := base.Defense
	for _, b := range buffs {
		if b == nil {
			continue
		}
		total += scaled(b.DefenseBuff, b)
	}
	return total
}

// MoveSpeed returns base speed plus every buff's speed term.
func MoveSpeed(base Base, buffs []*Buff) float64 {
	total := base.MoveSpeed
	for _, b := range buffs {
		if b == nil {
			continue
		}
		total += b.MovementSpeedBuff * b.GetMultiplier()
	}
	return total
}

// MeleeAffinity returns base melee affinity plus every buff's melee term.
func MeleeAffinity(base Base, buffs []*Buff) int {
	total := base.MeleeAffinity
	for _, b := range buffs {
		if b == nil {
			continue
		}
		total += scaled(b.MeleeAttackBuff, b)
	}
	return total
}

// RangedAffinity returns base ranged affinity plus every buff's ranged term.
func RangedAffinity(base Base, buffs []*Buff) int {
	total := base.RangedAffinity
	for _, b := range buffs {
		if b == nil {
			continue
		}
		total += scaled(b.RangedAttackBuff, b)
	}
	return total
}

// Aggregate folds the whole buff list at once.
func Aggregate(base Base, buffs []*Buff) Derived {
	return Derived{
		MaxHealth:      MaxHealth(base, buffs),
		Defense:        Defense(base, buffs),
		MoveSpeed:      MoveSpeed(base, buffs),
		MeleeAffinity:  MeleeAffinity(base, buffs),
		RangedAffinity: RangedAffinity(base, buffs),
	}
}
