// internal/system/loot.go
package system

import (
	"log"

	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/utils"
)

// LootSystem бросает артефакт на месте смерти врага по его таблице выпадения.
type LootSystem struct {
	lib     *defs.Library
	events  *event.Dispatcher
	pickups *PickupSystem
	rng     *utils.PRNGService
}

func NewLootSystem(lib *defs.Library, events *event.Dispatcher, pickups *PickupSystem, rng *utils.PRNGService) *LootSystem {
	s := &LootSystem{lib: lib, events: events, pickups: pickups, rng: rng}
	events.Subscribe(event.CharacterDeath, s)
	return s
}

func (s *LootSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.DeathData)
	if !ok || data.Role != defs.RoleEnemy {
		return
	}
	def, ok := s.lib.Character(data.DefID)
	if !ok || def.Loot == nil {
		return
	}
	if s.rng.Float64() >= def.Loot.Chance {
		return
	}
	art, ok := s.lib.Artifact(s.rng.ChooseWeighted(def.Loot.Entries))
	if !ok {
		return
	}
	s.pickups.SpawnPickup(art, data.Position)
	log.Printf("Loot: %s dropped %s", data.Name, art.Name)
}

func (s *LootSystem) Close() {
	s.events.Unsubscribe(event.CharacterDeath, s)
}
