// internal/entity/ecs.go
package entity

import (
	"github.com/yohamta/donburi"
)

// ECS — обёртка над миром donburi: игровое время и отложенное удаление.
// Удалять сущности прямо во время обхода запроса нельзя, поэтому системы
// ставят их в очередь, а Flush вызывается в конце тика.
type ECS struct {
	World    donburi.World
	GameTime float64
	pending  []donburi.Entity
	queued   map[donburi.Entity]bool
}

func NewECS() *ECS {
	return &ECS{
		World:  donburi.NewWorld(),
		queued: make(map[donburi.Entity]bool),
	}
}

// NewEntity создаёт сущность с набором компонентов и возвращает её запись.
func (ecs *ECS) NewEntity(components ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.World.Create(components...))
}

// Entry возвращает запись живой сущности.
func (ecs *ECS) Entry(e donburi.Entity) (*donburi.Entry, bool) {
	if e == donburi.Null || !ecs.World.Valid(e) {
		return nil, false
	}
	return ecs.World.Entry(e), true
}

// Valid reports whether e is still part of the world.
func (ecs *ECS) Valid(e donburi.Entity) bool {
	return e != donburi.Null && ecs.World.Valid(e)
}

// QueueRemoval помечает сущность на удаление в конце тика. Повторные вызовы игнорируются.
func (ecs *ECS) QueueRemoval(e donburi.Entity) {
	if ecs.queued[e] {
		return
	}
	ecs.queued[e] = true
	ecs.pending = append(ecs.pending, e)
}

// IsQueued reports whether e waits for removal.
func (ecs *ECS) IsQueued(e donburi.Entity) bool {
	return ecs.queued[e]
}

// Flush удаляет все отложенные сущности и возвращает их количество.
func (ecs *ECS) Flush() int {
	removed := 0
	for _, e := range ecs.pending {
		if ecs.World.Valid(e) {
			ecs.World.Remove(e)
			removed++
		}
	}
	ecs.pending = ecs.pending[:0]
	clear(ecs.queued)
	return removed
}
