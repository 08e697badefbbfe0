// internal/system/pickup.go
package system

import (
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/party"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/math/f64"
)

var pickups = donburi.NewQuery(filter.Contains(component.PickupComponent))

// PickupSystem подбирает артефакты с пола, когда к ним подходит лидер.
type PickupSystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	party  *party.Party
}

func NewPickupSystem(ecs *entity.ECS, events *event.Dispatcher, p *party.Party) *PickupSystem {
	return &PickupSystem{ecs: ecs, events: events, party: p}
}

// SpawnPickup кладёт артефакт на пол.
func (s *PickupSystem) SpawnPickup(def *defs.ArtifactDefinition, pos f64.Vec2) donburi.Entity {
	entry := s.ecs.NewEntity(component.PickupComponent, component.RenderableComponent)
	component.PickupComponent.SetValue(entry, component.Pickup{
		Artifact: def,
		Position: pos,
		Radius:   config.PickupRadius,
	})
	component.RenderableComponent.SetValue(entry, component.Renderable{
		Color:  config.PickupColor,
		Radius: config.PickupRadius,
	})
	return entry.Entity()
}

func (s *PickupSystem) Update(deltaTime float64) {
	leader, ok := s.party.Leader()
	if !ok {
		return
	}
	pos := leader.Position()

	var taken []*defs.ArtifactDefinition
	pickups.Each(s.ecs.World, func(entry *donburi.Entry) {
		if s.ecs.IsQueued(entry.Entity()) {
			return
		}
		pk := component.PickupComponent.Get(entry)
		if pkgutils.Distance(pos, pk.Position) > pk.Radius+config.CharacterRadius {
			return
		}
		taken = append(taken, pk.Artifact)
		s.ecs.QueueRemoval(entry.Entity())
	})
	for _, def := range taken {
		s.events.Dispatch(event.Event{Type: event.ArtifactAdded, Data: event.ArtifactData{Definition: def}})
	}
}
