package component

import (
	"go-dungeon-arpg/internal/defs"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Params        defs.EnemyParams
	RoomID        string           // Комната, к которой привязан враг
	NearbyTargets []donburi.Entity // Члены отряда в радиусе обзора, по возрастанию дистанции
	WanderTimer   float64
	WanderDir     f64.Vec2
	Frozen        bool // Комната неактивна
}

// ClosestTarget returns the nearest party member in view.
func (e *Enemy) ClosestTarget() (donburi.Entity, bool) {
	if len(e.NearbyTargets) == 0 {
		return donburi.Null, false
	}
	return e.NearbyTargets[0], true
}

var EnemyComponent = donburi.NewComponentType[Enemy]()
