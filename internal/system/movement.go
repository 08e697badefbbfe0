// internal/system/movement.go
package system

import (
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/entity"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var movers = donburi.NewQuery(filter.Contains(component.MotionComponent))

// MovementSystem интегрирует положения по скоростям, выставленным состояниями.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	movers.Each(s.ecs.World, func(entry *donburi.Entry) {
		m := component.MotionComponent.Get(entry)
		if pkgutils.IsZero(m.Velocity) {
			return
		}
		m.Position = pkgutils.Add(m.Position, pkgutils.Scale(m.Velocity, deltaTime))
	})
}
