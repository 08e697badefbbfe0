// internal/state/game_state.go
package state

import (
	game "go-dungeon-arpg/internal/app"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/input"
	"go-dungeon-arpg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры: мир, HUD и переходы в паузу и меню.
type GameState struct {
	sm       *StateMachine
	settings *config.Settings
	game     *game.Game
	counter  *ui.ArtifactCounter
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, settings *config.Settings) (*GameState, error) {
	gameLogic, err := game.NewGame(settings, input.Keyboard{})
	if err != nil {
		return nil, err
	}
	counter := ui.NewArtifactCounter(gameLogic.Events)
	return &GameState{
		sm:       sm,
		settings: settings,
		game:     gameLogic,
		counter:  counter,
		hud:      ui.NewHUD(counter),
	}, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.sm.SetState(NewMenuState(g.sm, g.settings, "The warlock has fallen."))
		}
		return
	}
	if g.game.Input.Pressed(input.ActionPause) {
		g.sm.current = NewPauseState(g.sm, g)
		return
	}
	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen, g.game.Snapshot())
}

// Exit tears the run down.
func (g *GameState) Exit() {
	g.counter.Close()
	g.game.Close()
}
