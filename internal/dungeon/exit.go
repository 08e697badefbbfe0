// internal/dungeon/exit.go
package dungeon

import (
	"go-dungeon-arpg/internal/defs"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"golang.org/x/image/math/f64"
)

// Exit — проход из комнаты. Соединён с проходом соседней комнаты.
type Exit struct {
	ID            string
	Room          *Room
	Direction     defs.Direction
	Position      f64.Vec2
	TriggerRadius float64
	Connected     *Exit

	open     bool
	occupied bool // лидер стоял в зоне триггера на прошлом тике
}

// OppositeDirection returns the direction an exit on the other side faces.
func OppositeDirection(dir defs.Direction) defs.Direction {
	switch dir {
	case defs.North:
		return defs.South
	case defs.East:
		return defs.West
	case defs.South:
		return defs.North
	case defs.West:
		return defs.East
	}
	return defs.North
}

// DirectionVector returns the unit vector of a direction on the floor plane.
func DirectionVector(dir defs.Direction) f64.Vec2 {
	switch dir {
	case defs.North:
		return f64.Vec2{0, 1}
	case defs.East:
		return f64.Vec2{1, 0}
	case defs.South:
		return f64.Vec2{0, -1}
	case defs.West:
		return f64.Vec2{-1, 0}
	}
	return f64.Vec2{}
}

// ConnectExits links two exits both ways.
func ConnectExits(a, b *Exit) {
	a.Connected = b
	b.Connected = a
}

func (e *Exit) HasConnectingRoom() bool {
	return e.Connected != nil && e.Connected.Room != nil
}

func (e *Exit) IsOpen() bool { return e.open }

// Open opens the exit if it leads somewhere.
func (e *Exit) Open() {
	e.open = e.HasConnectingRoom()
}

func (e *Exit) Close() { e.open = false }

// Contains reports whether p lies in the trigger radius.
func (e *Exit) Contains(p f64.Vec2) bool {
	return pkgutils.Distance(e.Position, p) <= e.TriggerRadius
}

// ArrivalPoint is where the party stops after coming through this exit:
// inside the room, just past the trigger.
func (e *Exit) ArrivalPoint() f64.Vec2 {
	inward := pkgutils.Scale(DirectionVector(e.Direction), -(e.TriggerRadius + 1))
	return pkgutils.Add(e.Position, inward)
}

// Track обновляет флаг присутствия и возвращает true, если лидер только что вошёл в зону.
func (e *Exit) Track(leader f64.Vec2) bool {
	inside := e.Contains(leader)
	entered := inside && !e.occupied
	e.occupied = inside
	return entered
}
