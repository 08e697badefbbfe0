// internal/system/room.go
package system

import (
	"context"
	"log"

	"go-dungeon-arpg/internal/dungeon"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/party"
	pkgutils "go-dungeon-arpg/pkg/utils"
)

// RoomSystem проверяет зачистку комнат и уводит отряд через открытые выходы.
type RoomSystem struct {
	ctx     context.Context
	dungeon *dungeon.Dungeon
	party   *party.Party
	events  *event.Dispatcher
}

func NewRoomSystem(ctx context.Context, d *dungeon.Dungeon, p *party.Party, events *event.Dispatcher) *RoomSystem {
	return &RoomSystem{ctx: ctx, dungeon: d, party: p, events: events}
}

func (s *RoomSystem) Update(deltaTime float64) {
	s.dungeon.CheckForRoomClear()

	if s.party.State() == party.Scripted {
		if err := s.party.Step(s.ctx); err != nil {
			log.Printf("RoomSystem: transition cancelled: %v", err)
		}
		return
	}

	leader, ok := s.party.Leader()
	room := s.dungeon.Active()
	if !ok || room == nil {
		return
	}
	pos := leader.Position()

	var through *dungeon.Exit
	for _, ex := range room.Exits {
		// Track must run for every exit to keep their occupancy current.
		if ex.Track(pos) && through == nil {
			through = ex
		}
	}
	if through == nil {
		return
	}
	if !through.IsOpen() || !through.HasConnectingRoom() {
		log.Printf("RoomSystem: exit %s of room %s is closed", through.ID, room.ID)
		return
	}
	s.enterThrough(room, through)
}

// enterThrough ведёт отряд к соединённому выходу; по прибытии комната становится активной.
func (s *RoomSystem) enterThrough(from *dungeon.Room, ex *dungeon.Exit) {
	to := ex.Connected
	target := to.ArrivalPoint()
	heading := pkgutils.Scale(dungeon.DirectionVector(to.Direction), -1)

	started := s.party.StartTransition(target, heading, func() {
		// Отряд стоит вне зоны триггера: сбрасываем присутствие, чтобы не уйти обратно.
		to.Track(target)
		s.dungeon.Enter(to.Room.ID)
	})
	if !started {
		return
	}
	log.Printf("RoomSystem: party leaves %s through %s for %s", from.ID, ex.ID, to.Room.ID)
	s.events.Dispatch(event.Event{Type: event.PartyTransition, Data: event.TransitionData{
		FromRoom: from.ID,
		ToRoom:   to.Room.ID,
		ToExit:   to.ID,
	}})
}
