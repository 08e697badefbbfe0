// internal/input/ebiten.go
package input

import (
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/math/f64"
)

var actionKeys = map[Action][]ebiten.Key{
	ActionAttack:        {ebiten.KeyJ, ebiten.KeySpace},
	ActionRangedAttack:  {ebiten.KeyK},
	ActionDodge:         {ebiten.KeyShiftLeft, ebiten.KeyL},
	ActionInteract:      {ebiten.KeyE},
	ActionPause:         {ebiten.KeyEscape, ebiten.KeyF9},
	ActionUpgradeHealth: {ebiten.Key1},
	ActionUpgradeSpeed:  {ebiten.Key2},
	ActionDropArtifact:  {ebiten.KeyBackspace},
}

// Keyboard reads WASD / arrows and the action keys through ebiten.
type Keyboard struct{}

func (Keyboard) Axis() f64.Vec2 {
	var v f64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v[1]--
	}
	return pkgutils.ClampLength(v, 1)
}

func (Keyboard) Pressed(a Action) bool {
	for _, k := range actionKeys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
