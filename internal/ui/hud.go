// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-dungeon-arpg/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Snapshot is what the HUD shows for one frame.
type Snapshot struct {
	Health    int
	MaxHealth int
	State     string
	Keys      int
	RoomDepth int
	RoomID    string
	Cleared   bool
	Stairs    bool
	Dialogue  string
	Dead      bool
}

// HUD draws debug text over the world.
type HUD struct {
	health    *PlayerHealthIndicator
	artifacts *ArtifactCounter
}

func NewHUD(artifacts *ArtifactCounter) *HUD {
	return &HUD{
		health:    NewPlayerHealthIndicator(10, 10),
		artifacts: artifacts,
	}
}

// Lines returns the text block drawn below the health pips.
func (h *HUD) Lines(s Snapshot) []string {
	lines := []string{
		RoomLabel(s.RoomDepth, s.RoomID, s.Cleared, s.Stairs),
		fmt.Sprintf("State: %s  Keys: %d", s.State, s.Keys),
	}
	if arts := h.artifacts.Lines(); len(arts) > 0 {
		lines = append(lines, "Artifacts:")
		for _, a := range arts {
			lines = append(lines, "  "+a)
		}
	}
	if s.Dialogue != "" {
		lines = append(lines, "", s.Dialogue, "[E] next")
	}
	if s.Dead {
		lines = append(lines, "", "The warlock has fallen. [SPACE] to return to the menu")
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, s Snapshot) {
	h.health.Draw(screen, s.Health, s.MaxHealth)
	y := int(h.health.Y+h.health.Height(s.MaxHealth)) + 4
	for i, line := range h.Lines(s) {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*config.HUDLineHeight)
	}
}
