// internal/system/utils.go
package system

import (
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/defs"

	"github.com/yohamta/donburi"
)

// CalculateDamage считает урон атаки по цели: база + родство атакующего − защита цели.
// Урон не бывает отрицательным.
func CalculateDamage(atk *defs.AttackDefinition, attacker, target *character.Character) int {
	if atk == nil {
		return 0
	}
	damage := atk.Damage
	if attacker != nil {
		switch atk.Kind {
		case defs.AttackMelee:
			damage += attacker.GetMeleeAffinity()
		case defs.AttackRanged:
			damage += attacker.GetRangedAffinity()
		}
	}
	damage -= target.GetDefense()
	if damage < 0 {
		damage = 0
	}
	return damage
}

// Hostile reports whether an attack by role a can damage role b.
// Отряд бьёт врагов, враги бьют отряд, NPC неуязвимы.
func Hostile(a, b defs.Role) bool {
	switch {
	case a.IsParty():
		return b == defs.RoleEnemy
	case a == defs.RoleEnemy:
		return b.IsParty()
	}
	return false
}

// collect snapshots the entities matched by q so callers may create or queue
// entities while walking them.
func collect(world donburi.World, q *donburi.Query) []donburi.Entity {
	var out []donburi.Entity
	q.Each(world, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}
