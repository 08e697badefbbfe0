// component/render.go
package component

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Renderable — компонент для отладочной отрисовки
type Renderable struct {
	Color  color.RGBA
	Radius float32
}

var RenderableComponent = donburi.NewComponentType[Renderable]()
