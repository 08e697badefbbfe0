// internal/component/status_effect.go
package component

import (
	"math"

	"github.com/yohamta/donburi"
)

// Invulnerability tracks i-frames and the flicker shown while they last.
type Invulnerability struct {
	TimeSinceLastHit float64
	Duration         float64 // i-frame window after a hit
	FlickerRate      float64 // seconds between visibility toggles
	SinceFlicker     float64
	Visible          bool
	Forced           bool // explicit flag, only SetInvulnerable touches it
	Dodging          bool // window at the start of a dodge
}

// NewInvulnerability starts with no recent hit.
func NewInvulnerability(duration, flickerRate float64) Invulnerability {
	return Invulnerability{
		TimeSinceLastHit: math.Inf(1),
		Duration:         duration,
		FlickerRate:      flickerRate,
		Visible:          true,
	}
}

// Active reports whether the entity currently ignores hits.
func (i *Invulnerability) Active() bool {
	return i.Forced || i.Dodging || i.TimeSinceLastHit < i.Duration
}

var InvulnerabilityComponent = donburi.NewComponentType[Invulnerability]()
