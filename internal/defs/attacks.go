// internal/defs/attacks.go
package defs

import "fmt"

// AttackDefinition holds the static timing and damage data of one attack.
// Timings are measured in seconds from the moment the attack starts.
type AttackDefinition struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind AttackKind `json:"kind"`
	// Startup is when the hitbox turns Active.
	Startup float64 `json:"startup"`
	// ActiveUntil is when the hitbox turns Cooldown (cumulative, not a duration).
	ActiveUntil float64 `json:"active_until"`
	// Total is when the attack ends and the owner returns to Idle.
	Total   float64 `json:"total"`
	Damage  int     `json:"damage"`
	Range   float64 `json:"range"` // радиус хитбокса
	Reach   float64 `json:"reach"` // смещение центра хитбокса вперёд
	CanMove bool    `json:"can_move"`
	// Animation names the animation/hitbox geometry the renderer would use.
	Animation string `json:"animation"`
}

// ActiveDuration returns how long the hitbox can register hits.
func (a *AttackDefinition) ActiveDuration() float64 {
	return a.ActiveUntil - a.Startup
}

// CooldownDuration returns the recovery time after the active window.
func (a *AttackDefinition) CooldownDuration() float64 {
	return a.Total - a.ActiveUntil
}

// Validate checks that the phase boundaries are ordered.
func (a *AttackDefinition) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("attack definition without id")
	}
	if a.Startup < 0 || a.Startup > a.ActiveUntil || a.ActiveUntil > a.Total {
		return fmt.Errorf("attack %s: phases must satisfy 0 <= startup <= active_until <= total (got %.3f, %.3f, %.3f)",
			a.ID, a.Startup, a.ActiveUntil, a.Total)
	}
	if a.Kind != AttackMelee && a.Kind != AttackRanged {
		return fmt.Errorf("attack %s: unknown kind %q", a.ID, a.Kind)
	}
	return nil
}
