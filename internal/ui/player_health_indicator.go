// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

var (
	healthLowColor   = color.RGBA{200, 40, 40, 255}
	healthExtraColor = color.RGBA{60, 100, 220, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье лидера сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// pipColor выбирает цвет j-го кружка: пустые чёрные, «избыток» сверх половины синий.
func pipColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthEmptyColor
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return healthExtraColor
	}
	return healthLowColor
}

// Draw рисует подпись и сетку кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	ebitenutil.DebugPrintAt(screen, "HP "+strconv.Itoa(health)+"/"+strconv.Itoa(maxHealth), int(i.X), int(i.Y))

	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	top := i.Y + 18
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := top + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, pipColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}
}

// Height returns the drawn height for maxHealth pips.
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return 18 + float32(rows)*float32(HealthCircleRadius*2+HealthCircleSpacing)
}
