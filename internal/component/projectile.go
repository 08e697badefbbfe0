// internal/component/projectile.go
package component

import (
	"go-dungeon-arpg/internal/defs"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Projectile представляет летящий снаряд дальней атаки.
type Projectile struct {
	Owner     donburi.Entity
	OwnerRole defs.Role
	Direction f64.Vec2 // Единичный вектор
	Speed     float64
	Damage    int
	Radius    float64
	Remaining float64 // Оставшаяся дальность полёта
}

var ProjectileComponent = donburi.NewComponentType[Projectile]()
