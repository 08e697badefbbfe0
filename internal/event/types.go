// internal/event/types.go
package event

import (
	"go-dungeon-arpg/internal/defs"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

const (
	NewMinionAdded    EventType = "NewMinionAdded"    // В отряд вступил миньон
	ArtifactAdded     EventType = "ArtifactAdded"     // Артефакт подобран с пола
	ArtifactCollected EventType = "ArtifactCollected" // Артефакт применён к отряду
	ArtifactRemoved   EventType = "ArtifactRemoved"
	ArtifactRejected  EventType = "ArtifactRejected" // Повторный нестакаемый артефакт
	RoomEntered       EventType = "RoomEntered"
	RoomCleared       EventType = "RoomCleared" // Все враги комнаты мертвы
	CharacterDeath    EventType = "CharacterDeath"
	CharacterHit      EventType = "CharacterHit"
	AttackStarted     EventType = "AttackStarted"
	DodgeStarted      EventType = "DodgeStarted"
	DialogueStarted   EventType = "DialogueStarted"
	KeysChanged       EventType = "KeysChanged"
	PartyTransition   EventType = "PartyTransition" // Начался скриптовый переход между комнатами
)

// MinionData — данные для NewMinionAdded
type MinionData struct {
	Minion donburi.Entity
}

// ArtifactData is carried by every artifact event.
type ArtifactData struct {
	Instance   uuid.UUID
	Definition *defs.ArtifactDefinition
}

// RoomData — данные для RoomEntered / RoomCleared
type RoomData struct {
	RoomID string
}

// DeathData — данные для CharacterDeath
type DeathData struct {
	Entity   donburi.Entity
	DefID    string
	Name     string
	Role     defs.Role
	Position f64.Vec2
}

// HitData — данные для CharacterHit
type HitData struct {
	Entity donburi.Entity
	Damage int
	Health int
}

// AttackData — данные для AttackStarted
type AttackData struct {
	Entity donburi.Entity
	Attack *defs.AttackDefinition
}

// DodgeData — данные для DodgeStarted
type DodgeData struct {
	Entity donburi.Entity
}

// DialogueData — данные для DialogueStarted
type DialogueData struct {
	Speaker donburi.Entity
	Node    string
}

// KeysData — данные для KeysChanged
type KeysData struct {
	Keys int
}

// TransitionData — данные для PartyTransition
type TransitionData struct {
	FromRoom string
	ToRoom   string
	ToExit   string
}
