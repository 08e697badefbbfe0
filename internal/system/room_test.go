package system

import (
	"context"
	"testing"

	"go-dungeon-arpg/internal/artifact"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/dungeon"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/party"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

func corridor() *defs.DungeonDefinition {
	return &defs.DungeonDefinition{
		StartRoom: "a",
		Rooms: []defs.RoomDefinition{
			{ID: "a", Extents: f64.Vec2{10, 10}, Exits: []defs.ExitDefinition{
				{ID: "n", Direction: defs.North, Position: f64.Vec2{0, 5}, TriggerRadius: 1, ConnectsTo: &defs.ExitLink{Room: "b", Exit: "s"}},
			}},
			{ID: "b", Center: f64.Vec2{0, 12}, Extents: f64.Vec2{10, 10}, Exits: []defs.ExitDefinition{
				{ID: "s", Direction: defs.South, Position: f64.Vec2{0, 7}, TriggerRadius: 1, ConnectsTo: &defs.ExitLink{Room: "a", Exit: "n"}},
			}},
		},
	}
}

func buildDungeon(t *testing.T, w *world) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.Build(corridor(), w.ecs, w.events)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func TestPartyWalksThroughOpenExit(t *testing.T) {
	w := newWorld(t)
	d := buildDungeon(t, w)
	leader := w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{0, 4.5})
	m := w.spawn(t, imp(), defs.RoleMinion, f64.Vec2{0, 3})
	transitions := &eventLog{}
	w.events.Subscribe(event.PartyTransition, transitions)
	d.Start()
	require.Equal(t, "a", d.Active().ID)

	rooms := NewRoomSystem(context.Background(), d, w.party, w.events)
	rooms.Update(dt)
	require.Equal(t, party.Scripted, w.party.State())
	require.Len(t, transitions.events, 1)
	assert.Equal(t, event.TransitionData{FromRoom: "a", ToRoom: "b", ToExit: "s"}, transitions.events[0].Data)

	for i := 0; i < 600 && w.party.State() == party.Scripted; i++ {
		w.chars.Update(dt)
		w.chars.FixedUpdate(dt)
		w.movement.Update(dt)
		rooms.Update(dt)
	}
	require.Equal(t, party.Free, w.party.State())
	assert.Equal(t, "b", d.Active().ID)
	assert.LessOrEqual(t, pkgutils.Distance(leader.Position(), f64.Vec2{0, 9}), config.TransitionStoppingDistance)
	assert.LessOrEqual(t, pkgutils.Distance(m.Position(), w.party.FormationSlot(f64.Vec2{0, 9}, f64.Vec2{0, 1}, 0)), config.TransitionStoppingDistance)

	// Отряд стоит вне триггера: следующий тик не уводит его обратно.
	rooms.Update(dt)
	assert.Equal(t, party.Free, w.party.State())
	assert.Len(t, transitions.events, 1)
}

func TestClosedExitKeepsParty(t *testing.T) {
	w := newWorld(t)
	d := buildDungeon(t, w)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{0, 4.5})
	guard := w.spawn(t, ghoul(), defs.RoleEnemy, f64.Vec2{3, 0})
	d.BindEnemy("a", guard.Entity())
	d.Start()

	rooms := NewRoomSystem(context.Background(), d, w.party, w.events)
	rooms.Update(dt)
	assert.Equal(t, party.Free, w.party.State())
	assert.False(t, d.Active().Cleared)

	guard.Hit(100)
	rooms.Update(dt)
	assert.True(t, d.Active().Cleared)
	// Лидер всё ещё в зоне: нужен новый вход в триггер.
	assert.Equal(t, party.Free, w.party.State())
}

func TestPickupCollectsArtifact(t *testing.T) {
	w := newWorld(t)
	leader := w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	registry := artifact.NewRegistry(w.svc, w.party, w.party)
	t.Cleanup(registry.Close)

	pickup := NewPickupSystem(w.ecs, w.events, w.party)
	pickup.SpawnPickup(charm(t), f64.Vec2{0, 0.8})
	far := pickup.SpawnPickup(charm(t), f64.Vec2{0, 6})

	pickup.Update(dt)
	pickup.Update(dt)
	assert.Equal(t, 1, registry.Count("charm"))
	assert.Equal(t, 15, leader.GetMaxHealth())

	w.ecs.Flush()
	assert.Equal(t, 1, count(w, pickups))
	assert.True(t, w.ecs.Valid(far))
}
