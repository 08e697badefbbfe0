// internal/character/interact.go
package character

import (
	"math"

	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/event"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var speakers = donburi.NewQuery(filter.Contains(component.IdentityComponent, component.MotionComponent, MachineComponent))

// AttemptInteract начинает диалог с ближайшим собеседником в радиусе.
// Разрешено только когда персонаж может перейти в Move.
func (c *Character) AttemptInteract() bool {
	if !c.CanPerformStateTransition(KindMove) {
		return false
	}
	id := c.identity()
	if id == nil {
		return false
	}
	radius := id.InteractRadius
	pos := c.Position()

	target := donburi.Null
	best := math.Inf(1)
	speakers.Each(c.svc.ECS.World, func(entry *donburi.Entry) {
		if entry.Entity() == c.entity {
			return
		}
		other := component.IdentityComponent.Get(entry)
		if other.YarnKey == "" {
			return
		}
		d := pkgutils.Distance(pos, component.MotionComponent.Get(entry).Position)
		if d <= radius && d < best {
			best, target = d, entry.Entity()
		}
	})
	if target == donburi.Null {
		return false
	}
	speaker, ok := Get(c.svc, target)
	if !ok {
		return false
	}
	return speaker.DialogueStart(c)
}

// DialogueStart turns both characters toward each other and opens this
// character's dialogue.
func (c *Character) DialogueStart(initiator *Character) bool {
	key := c.Identity().YarnKey
	if key == "" {
		return false
	}
	toInitiator := pkgutils.Sub(initiator.Position(), c.Position())
	c.SetFacingDirection(toInitiator)
	initiator.SetFacingDirection(pkgutils.Scale(toInitiator, -1))

	if !c.svc.Dialogue.StartDialogue(key) {
		return false
	}
	c.svc.Events.Dispatch(event.Event{
		Type: event.DialogueStarted,
		Data: event.DialogueData{Speaker: c.entity, Node: key},
	})
	return true
}
