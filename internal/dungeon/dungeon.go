// internal/dungeon/dungeon.go
package dungeon

import (
	"fmt"
	"log"

	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Dungeon — граф комнат текущего этажа
type Dungeon struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	rooms  map[string]*Room
	order  []*Room
	active *Room
	start  string
}

// Build создаёт комнаты и соединяет выходы по определению.
func Build(def *defs.DungeonDefinition, ecs *entity.ECS, events *event.Dispatcher) (*Dungeon, error) {
	d := &Dungeon{
		ecs:    ecs,
		events: events,
		rooms:  make(map[string]*Room, len(def.Rooms)),
		start:  def.StartRoom,
	}
	for i := range def.Rooms {
		r := newRoom(&def.Rooms[i])
		if _, dup := d.rooms[r.ID]; dup {
			return nil, fmt.Errorf("dungeon: duplicate room %q", r.ID)
		}
		d.rooms[r.ID] = r
		d.order = append(d.order, r)
	}
	for _, rd := range def.Rooms {
		for _, ed := range rd.Exits {
			if ed.ConnectsTo == nil {
				continue
			}
			from, _ := d.rooms[rd.ID].Exit(ed.ID)
			other, ok := d.rooms[ed.ConnectsTo.Room]
			if !ok {
				return nil, fmt.Errorf("dungeon: room %s exit %s: unknown room %q", rd.ID, ed.ID, ed.ConnectsTo.Room)
			}
			to, ok := other.Exit(ed.ConnectsTo.Exit)
			if !ok {
				return nil, fmt.Errorf("dungeon: room %s has no exit %q", other.ID, ed.ConnectsTo.Exit)
			}
			ConnectExits(from, to)
		}
	}
	if _, ok := d.rooms[d.start]; !ok && len(d.order) > 0 {
		return nil, fmt.Errorf("dungeon: unknown start room %q", d.start)
	}

	events.Subscribe(event.RoomEntered, d)
	events.Subscribe(event.RoomCleared, d)
	events.Subscribe(event.CharacterDeath, d)
	return d, nil
}

func (d *Dungeon) Room(id string) (*Room, bool) {
	r, ok := d.rooms[id]
	return r, ok
}

// Rooms returns the rooms in authored order.
func (d *Dungeon) Rooms() []*Room { return d.order }

// Active returns the room the party is in.
func (d *Dungeon) Active() *Room { return d.active }

// StartRoom returns the authored starting room.
func (d *Dungeon) StartRoom() *Room { return d.rooms[d.start] }

// Start помечает пустые комнаты пройденными, замораживает всех врагов и
// вводит отряд в стартовую комнату.
func (d *Dungeon) Start() {
	for _, r := range d.order {
		if !r.AreEnemiesAlive() {
			r.clear()
		}
		d.setFrozen(r, true)
	}
	if r := d.StartRoom(); r != nil {
		d.Enter(r.ID)
	}
}

// Enter делает комнату активной и публикует RoomEntered.
func (d *Dungeon) Enter(roomID string) {
	if _, ok := d.rooms[roomID]; !ok {
		return
	}
	d.events.Dispatch(event.Event{Type: event.RoomEntered, Data: event.RoomData{RoomID: roomID}})
}

func (d *Dungeon) OnEvent(e event.Event) {
	switch e.Type {
	case event.RoomEntered:
		if data, ok := e.Data.(event.RoomData); ok {
			d.playerEnteredRoom(data.RoomID)
		}
	case event.RoomCleared:
		if data, ok := e.Data.(event.RoomData); ok {
			if r, ok := d.rooms[data.RoomID]; ok {
				r.clear()
				log.Printf("Dungeon: room %s cleared", r.ID)
			}
		}
	case event.CharacterDeath:
		if data, ok := e.Data.(event.DeathData); ok {
			for _, r := range d.order {
				r.RemoveEnemy(data.Entity)
			}
		}
	}
}

func (d *Dungeon) playerEnteredRoom(roomID string) {
	for _, r := range d.order {
		if r.ID != roomID {
			d.setFrozen(r, true)
			continue
		}
		d.active = r
		r.Revealed = true
		d.setFrozen(r, false)
		if r.AreEnemiesAlive() {
			r.SetExitOpenStatus(false)
		}
	}
}

// CheckForRoomClear публикует RoomCleared для комнаты, где не осталось врагов.
// Каждая комната очищается один раз.
func (d *Dungeon) CheckForRoomClear() {
	for _, r := range d.order {
		if r.Cleared || r.AreEnemiesAlive() {
			continue
		}
		d.events.Dispatch(event.Event{Type: event.RoomCleared, Data: event.RoomData{RoomID: r.ID}})
	}
}

func (d *Dungeon) setFrozen(r *Room, frozen bool) {
	for e := range r.enemies {
		entry, ok := d.ecs.Entry(e)
		if !ok || !entry.HasComponent(component.EnemyComponent) {
			continue
		}
		component.EnemyComponent.Get(entry).Frozen = frozen
	}
}

// BindEnemy привязывает врага к комнате.
func (d *Dungeon) BindEnemy(roomID string, e donburi.Entity) {
	r, ok := d.rooms[roomID]
	if !ok {
		return
	}
	r.AddEnemy(e)
	if entry, ok := d.ecs.Entry(e); ok && entry.HasComponent(component.EnemyComponent) {
		component.EnemyComponent.Get(entry).RoomID = roomID
	}
}

// RoomAt returns the room containing p.
func (d *Dungeon) RoomAt(p f64.Vec2) (*Room, bool) {
	for _, r := range d.order {
		if r.Contains(p) {
			return r, true
		}
	}
	return nil, false
}

// Close unsubscribes the dungeon from the event bus.
func (d *Dungeon) Close() {
	d.events.Unsubscribe(event.RoomEntered, d)
	d.events.Unsubscribe(event.RoomCleared, d)
	d.events.Unsubscribe(event.CharacterDeath, d)
}
