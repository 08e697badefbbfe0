// internal/component/combat.go
package component

import (
	"go-dungeon-arpg/internal/defs"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Health — компонент здоровья
type Health struct {
	Current int
	Dead    bool // Смерть уже обработана
}

// HitboxPhase — фаза хитбокса атаки
type HitboxPhase int

const (
	HitboxInactive HitboxPhase = iota
	HitboxStartup
	HitboxActive
	HitboxCooldown
)

func (p HitboxPhase) String() string {
	switch p {
	case HitboxStartup:
		return "Startup"
	case HitboxActive:
		return "Active"
	case HitboxCooldown:
		return "Cooldown"
	}
	return "Inactive"
}

// Hitbox — зона поражения атаки. Наносит урон только в фазе Active.
type Hitbox struct {
	Owner       donburi.Entity
	OwnerRole   defs.Role
	Attack      *defs.AttackDefinition
	Phase       HitboxPhase
	Reach       float64 // Смещение центра от владельца по направлению взгляда
	Radius      float64
	Center      f64.Vec2
	HitEntities map[donburi.Entity]bool // Кого уже задели этой атакой
}

// CanHit reports whether the hitbox registers overlaps in its current phase.
func (h *Hitbox) CanHit() bool {
	return h.Phase == HitboxActive
}

var (
	HealthComponent = donburi.NewComponentType[Health]()
	HitboxComponent = donburi.NewComponentType[Hitbox]()
)
