// internal/component/movement.go
package component

import (
	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Motion — положение, скорость и ориентация на плоскости пола
type Motion struct {
	Position           f64.Vec2
	Velocity           f64.Vec2
	Axis               f64.Vec2 // Последний ввод движения
	SpeedModifier      float64
	Facing             float64 // Рыскание в градусах [0, 360), 0 — вдоль +y
	TurnSmoothVelocity float64
	TurnSmoothTime     float64
}

var MotionComponent = donburi.NewComponentType[Motion]()
