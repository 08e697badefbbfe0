package ui

import (
	"testing"

	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestArtifactCounterFollowsEvents(t *testing.T) {
	events := event.NewDispatcher()
	c := NewArtifactCounter(events)
	charm := &defs.ArtifactDefinition{ID: "charm", Name: "Heart Charm"}
	horn := &defs.ArtifactDefinition{ID: "horn", Name: "Demon Horn"}

	collect := func(def *defs.ArtifactDefinition) {
		events.Dispatch(event.Event{Type: event.ArtifactCollected, Data: event.ArtifactData{Definition: def}})
	}
	collect(charm)
	collect(charm)
	collect(horn)
	events.Dispatch(event.Event{Type: event.ArtifactRejected, Data: event.ArtifactData{Definition: horn}})

	assert.Equal(t, 2, c.Count("charm"))
	assert.Equal(t, []string{"Demon Horn x1", "Heart Charm x2"}, c.Lines())

	events.Dispatch(event.Event{Type: event.ArtifactRemoved, Data: event.ArtifactData{Definition: horn}})
	assert.Equal(t, 0, c.Count("horn"))
	assert.Equal(t, []string{"Heart Charm x2"}, c.Lines())

	c.Close()
	collect(horn)
	assert.Equal(t, 0, c.Count("horn"))
}

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range tests {
		assert.Equal(t, want, toRoman(in), in)
	}
}

func TestRoomLabel(t *testing.T) {
	assert.Equal(t, "Room II (crypt) - sealed", RoomLabel(2, "crypt", false, false))
	assert.Equal(t, "Room I (entrance) - cleared", RoomLabel(1, "entrance", true, false))
	assert.Equal(t, "Room II (crypt) - stairs open", RoomLabel(2, "crypt", true, true))
}

func TestPipColor(t *testing.T) {
	// 7 из 10: два «лишних» синих, затем красные, затем пустые
	assert.Equal(t, healthExtraColor, pipColor(0, 7, 10))
	assert.Equal(t, healthExtraColor, pipColor(1, 7, 10))
	assert.Equal(t, healthLowColor, pipColor(2, 7, 10))
	assert.Equal(t, healthLowColor, pipColor(6, 7, 10))
	assert.Equal(t, healthEmptyColor, pipColor(7, 7, 10))
	assert.Equal(t, healthLowColor, pipColor(0, 3, 10))
}

func TestHUDLines(t *testing.T) {
	events := event.NewDispatcher()
	c := NewArtifactCounter(events)
	events.Dispatch(event.Event{Type: event.ArtifactCollected, Data: event.ArtifactData{Definition: &defs.ArtifactDefinition{ID: "k", Name: "Rusty Key"}}})
	hud := NewHUD(c)

	lines := hud.Lines(Snapshot{State: "Idle", Keys: 3, RoomDepth: 1, RoomID: "entrance", Dialogue: "Gatekeeper: Halt."})
	assert.Equal(t, []string{
		"Room I (entrance) - sealed",
		"State: Idle  Keys: 3",
		"Artifacts:",
		"  Rusty Key x1",
		"",
		"Gatekeeper: Halt.",
		"[E] next",
	}, lines)
}
