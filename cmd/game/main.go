// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if settings.DebugAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.DebugAddr, nil))
		}()
	}

	sm := state.NewStateMachine()
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, settings, ""))
	} else {
		gs, err := state.NewGameState(sm, settings)
		if err != nil {
			log.Fatalf("Game: %v", err)
		}
		sm.SetState(gs)
	}
	defer sm.Shutdown()

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Dungeon Warlock")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
