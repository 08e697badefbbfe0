// internal/component/character.go
package component

import (
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/stats"

	"github.com/yohamta/donburi"
)

// Identity — кто это и кому он принадлежит
type Identity struct {
	DefID          string
	Name           string
	Role           defs.Role
	Tribe          defs.Tribe
	YarnKey        string  // Ключ диалога, пусто — не собеседник
	InteractRadius float64 // Радиус, в котором персонаж может заговорить
}

// Stats — базовые характеристики персонажа
type Stats struct {
	Base stats.Base
}

// Buffs — активные баффы. Указатели общие, сами баффы не меняются.
type Buffs struct {
	Active []*stats.Buff
}

// Loadout — атаки и параметры уклонения персонажа
type Loadout struct {
	Melee  *defs.AttackDefinition
	Ranged *defs.AttackDefinition
	Dodge  defs.DodgeParams
}

var (
	IdentityComponent = donburi.NewComponentType[Identity]()
	StatsComponent    = donburi.NewComponentType[Stats]()
	BuffsComponent    = donburi.NewComponentType[Buffs]()
	LoadoutComponent  = donburi.NewComponentType[Loadout]()
)
