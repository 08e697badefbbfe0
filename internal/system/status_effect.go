// internal/system/status_effect.go
package system

import (
	"go-dungeon-arpg/internal/character"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var characters = donburi.NewQuery(filter.Contains(character.MachineComponent))

// CharacterSystem прокручивает автоматы всех персонажей: тайминги атак,
// рывки, неуязвимость и мерцание.
type CharacterSystem struct {
	svc *character.Services
}

func NewCharacterSystem(svc *character.Services) *CharacterSystem {
	return &CharacterSystem{svc: svc}
}

// Update — логический тик.
func (s *CharacterSystem) Update(deltaTime float64) {
	for _, e := range collect(s.svc.ECS.World, characters) {
		if c, ok := character.Get(s.svc, e); ok {
			c.Update(deltaTime)
		}
	}
}

// FixedUpdate — шаг физики: состояния выставляют скорость и поворот.
func (s *CharacterSystem) FixedUpdate(deltaTime float64) {
	for _, e := range collect(s.svc.ECS.World, characters) {
		if c, ok := character.Get(s.svc, e); ok {
			c.FixedUpdate(deltaTime)
		}
	}
}
