// internal/dungeon/room.go
package dungeon

import (
	"log"

	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/defs"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Room — комната подземелья: выходы, враги и флаги прохождения
type Room struct {
	ID        string
	Center    f64.Vec2
	Extents   f64.Vec2
	Exits     []*Exit
	Staircase bool

	Cleared      bool
	Revealed     bool
	StairsActive bool

	enemies map[donburi.Entity]bool
}

func newRoom(def *defs.RoomDefinition) *Room {
	r := &Room{
		ID:        def.ID,
		Center:    def.Center,
		Extents:   def.Extents,
		Staircase: def.Staircase,
		enemies:   make(map[donburi.Entity]bool),
	}
	for _, ex := range def.Exits {
		radius := ex.TriggerRadius
		if radius <= 0 {
			radius = config.ExitTriggerRadius
		}
		r.Exits = append(r.Exits, &Exit{
			ID:            ex.ID,
			Room:          r,
			Direction:     ex.Direction,
			Position:      ex.Position,
			TriggerRadius: radius,
		})
	}
	return r
}

// Exit returns the exit with the given id.
func (r *Room) Exit(id string) (*Exit, bool) {
	for _, e := range r.Exits {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// GetExitsByDirection returns the exits facing dir, or the first exit when none does.
func (r *Room) GetExitsByDirection(dir defs.Direction) []*Exit {
	var exits []*Exit
	for _, e := range r.Exits {
		if e.Direction == dir {
			exits = append(exits, e)
		}
	}
	if len(exits) == 0 && len(r.Exits) > 0 {
		log.Printf("Dungeon: room %s has no %s exit, falling back to %s", r.ID, dir, r.Exits[0].ID)
		exits = append(exits, r.Exits[0])
	}
	return exits
}

// SetExitOpenStatus opens every connected exit, or closes all of them.
func (r *Room) SetExitOpenStatus(open bool) {
	for _, e := range r.Exits {
		if open {
			e.Open()
		} else {
			e.Close()
		}
	}
}

func (r *Room) AddEnemy(e donburi.Entity)    { r.enemies[e] = true }
func (r *Room) RemoveEnemy(e donburi.Entity) { delete(r.enemies, e) }

func (r *Room) EnemyCount() int { return len(r.enemies) }

func (r *Room) AreEnemiesAlive() bool { return len(r.enemies) > 0 }

// Enemies returns the enemy entities bound to the room.
func (r *Room) Enemies() []donburi.Entity {
	out := make([]donburi.Entity, 0, len(r.enemies))
	for e := range r.enemies {
		out = append(out, e)
	}
	return out
}

// Contains reports whether p is inside the room bounds.
func (r *Room) Contains(p f64.Vec2) bool {
	hx, hy := r.Extents[0]/2, r.Extents[1]/2
	return p[0] >= r.Center[0]-hx && p[0] <= r.Center[0]+hx &&
		p[1] >= r.Center[1]-hy && p[1] <= r.Center[1]+hy
}

// clear помечает комнату пройденной, открывает выходы и лестницу.
func (r *Room) clear() {
	r.Cleared = true
	r.SetExitOpenStatus(true)
	if r.Staircase {
		r.StairsActive = true
	}
}
