package app

import (
	"testing"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/input"
	"go-dungeon-arpg/internal/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

func newTestGame(t *testing.T, frames ...input.Frame) (*Game, *input.Scripted) {
	t.Helper()
	in := input.NewScripted(frames...)
	g, err := NewGame(config.Default(), in)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g, in
}

func TestNewGameBuildsRun(t *testing.T) {
	g, _ := newTestGame(t)

	leader, ok := g.Leader()
	require.True(t, ok)
	assert.Equal(t, "Warlock", leader.Name())
	assert.Len(t, g.Party.Minions(), 2)

	room := g.Dungeon.Active()
	require.NotNil(t, room)
	assert.Equal(t, "entrance", room.ID)
	assert.False(t, room.Cleared)
	assert.Equal(t, 1, room.EnemyCount())
	assert.False(t, room.Exits[0].IsOpen())

	s := g.Snapshot()
	assert.Equal(t, 10, s.MaxHealth)
	assert.Equal(t, "Idle", s.State)
	assert.Equal(t, 1, s.RoomDepth)
}

func TestFramesRunWithoutInput(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 120; i++ {
		g.Update(config.FixedDelta)
	}
	assert.False(t, g.IsOver())
	assert.Equal(t, party.Free, g.Party.State())
	assert.InDelta(t, 2.0, g.GetGameTime(), 1e-9)
}

func TestKillingGuardOpensExit(t *testing.T) {
	g, _ := newTestGame(t)
	room := g.Dungeon.Active()
	for _, e := range room.Enemies() {
		c, ok := character.Get(g.Services, e)
		require.True(t, ok)
		c.Hit(1000)
	}

	g.Update(config.FixedDelta)
	assert.True(t, room.Cleared)
	assert.True(t, room.Exits[0].IsOpen())
}

func TestWalkingOverPickupCollectsIt(t *testing.T) {
	g, _ := newTestGame(t)
	leader, _ := g.Leader()
	leader.SetPosition(f64.Vec2{2, -3})

	g.Update(config.FixedDelta)
	assert.Equal(t, 1, g.Artifacts.Count("heart_charm"))
	assert.Equal(t, 20, leader.GetMaxHealth())
}

func TestTalkingToGatekeeper(t *testing.T) {
	g, in := newTestGame(t,
		input.Frame{Actions: []input.Action{input.ActionInteract}},
		input.Frame{Actions: []input.Action{input.ActionInteract}},
	)
	leader, _ := g.Leader()
	leader.SetPosition(f64.Vec2{3, 1})

	in.Advance()
	g.Update(config.FixedDelta)
	require.True(t, g.Dialogue.Active())
	first := g.Snapshot().Dialogue
	assert.Contains(t, first, "Gatekeeper:")

	in.Advance()
	g.Update(config.FixedDelta)
	assert.NotEqual(t, first, g.Snapshot().Dialogue)
}
