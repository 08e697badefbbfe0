// internal/state/menu_state.go
package state

import (
	"log"

	"go-dungeon-arpg/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран; SPACE начинает новый забег.
type MenuState struct {
	sm       *StateMachine
	settings *config.Settings
	message  string
}

func NewMenuState(sm *StateMachine, settings *config.Settings, message string) *MenuState {
	return &MenuState{sm: sm, settings: settings, message: message}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.settings)
	if err != nil {
		log.Printf("Menu: failed to start a run: %v", err)
		m.message = "Failed to start: " + err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight/2 - 2*config.HUDLineHeight
	if m.message != "" {
		ebitenutil.DebugPrintAt(screen, m.message, config.ScreenWidth/2-120, y)
	}
	ebitenutil.DebugPrintAt(screen, "[SPACE] descend", config.ScreenWidth/2-50, y+2*config.HUDLineHeight)
}

func (m *MenuState) Exit() {}
