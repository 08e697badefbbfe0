// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-dungeon-arpg/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует её под затемнением.
// Возврат идёт в то же состояние без повторного Enter.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.current = s.previous
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", config.ScreenWidth/2-20, config.ScreenHeight/2)
}

// Exit runs only when the machine leaves the pause for another screen.
func (s *PauseState) Exit() {
	if s.previous != nil {
		s.previous.Exit()
	}
}
