// internal/system/render.go
package system

import (
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/dungeon"
	"go-dungeon-arpg/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/math/f64"
)

var drawables = donburi.NewQuery(filter.Contains(component.RenderableComponent))

// RenderSystem рисует отладочную картинку: комнаты, выходы, персонажей, снаряды.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// ToScreen переводит точку пола в пиксели; ось y направлена вверх, focus в центре экрана.
func ToScreen(p, focus f64.Vec2) (float32, float32) {
	x := config.ScreenWidth/2 + (p[0]-focus[0])*config.PixelsPerUnit
	y := config.ScreenHeight/2 - (p[1]-focus[1])*config.PixelsPerUnit
	return float32(x), float32(y)
}

func (s *RenderSystem) Draw(screen *ebiten.Image, d *dungeon.Dungeon, focus f64.Vec2) {
	const ppu = float32(config.PixelsPerUnit)

	// Сначала комнаты и выходы
	if d != nil {
		for _, r := range d.Rooms() {
			if !r.Revealed {
				continue
			}
			corner := f64.Vec2{r.Center[0] - r.Extents[0]/2, r.Center[1] + r.Extents[1]/2}
			x, y := ToScreen(corner, focus)
			vector.StrokeRect(screen, x, y, float32(r.Extents[0])*ppu, float32(r.Extents[1])*ppu, 2, config.RoomColor, true)
			for _, ex := range r.Exits {
				clr := config.ExitClosedColor
				if ex.IsOpen() {
					clr = config.ExitOpenColor
				}
				ex0, ex1 := ToScreen(ex.Position, focus)
				vector.StrokeCircle(screen, ex0, ex1, float32(ex.TriggerRadius)*ppu, 1.5, clr, true)
			}
		}
	}

	// Затем сущности с Renderable
	drawables.Each(s.ecs.World, func(entry *donburi.Entry) {
		var pos f64.Vec2
		switch {
		case entry.HasComponent(component.MotionComponent):
			pos = component.MotionComponent.Get(entry).Position
		case entry.HasComponent(component.PickupComponent):
			pos = component.PickupComponent.Get(entry).Position
		default:
			return
		}
		if entry.HasComponent(component.InvulnerabilityComponent) && !component.InvulnerabilityComponent.Get(entry).Visible {
			return
		}
		render := component.RenderableComponent.Get(entry)
		x, y := ToScreen(pos, focus)
		vector.DrawFilledCircle(screen, x, y, render.Radius*ppu, render.Color, true)
	})

	// Активные хитбоксы
	hitboxes.Each(s.ecs.World, func(entry *donburi.Entry) {
		hb := component.HitboxComponent.Get(entry)
		if !hb.CanHit() {
			return
		}
		x, y := ToScreen(hb.Center, focus)
		vector.StrokeCircle(screen, x, y, float32(hb.Radius)*ppu, 1, config.HitboxColor, true)
	})
}
