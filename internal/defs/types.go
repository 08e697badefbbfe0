// internal/defs/types.go
package defs

// Tribe is the faction tag used to filter which characters a buff affects.
type Tribe string

const (
	TribeNeutral  Tribe = "Neutral" // для фильтров означает «любое племя»
	TribeDemon    Tribe = "Demon"
	TribeUndead   Tribe = "Undead"
	TribeSquimbus Tribe = "Squimbus"
)

// Valid reports whether t is one of the known tribes.
func (t Tribe) Valid() bool {
	switch t {
	case TribeNeutral, TribeDemon, TribeUndead, TribeSquimbus:
		return true
	}
	return false
}

// Role separates the party (leader, minions) from enemies and bystanders.
type Role string

const (
	RoleLeader Role = "leader"
	RoleMinion Role = "minion"
	RoleEnemy  Role = "enemy"
	RoleNPC    Role = "npc"
)

// IsParty reports whether the role belongs to the player's party.
func (r Role) IsParty() bool {
	return r == RoleLeader || r == RoleMinion
}

// ArtifactTarget selects which party members an artifact buffs.
type ArtifactTarget string

const (
	TargetAll    ArtifactTarget = "All"
	TargetLeader ArtifactTarget = "Leader"
	TargetMinion ArtifactTarget = "Minion"
)

// BehaviorType names the optional stateful behavior of an artifact.
type BehaviorType string

const (
	BehaviorNone              BehaviorType = "None"
	BehaviorLowHPAttackBoost  BehaviorType = "LowHPAttackBoost"
	BehaviorHealUponNewMinion BehaviorType = "HealUponNewMinion"
	BehaviorOneKey            BehaviorType = "OneKey"
)

// AttackKind selects which affinity scales an attack.
type AttackKind string

const (
	AttackMelee  AttackKind = "melee"
	AttackRanged AttackKind = "ranged"
)

// Direction is a cardinal exit direction of a room.
type Direction string

const (
	North Direction = "North"
	East  Direction = "East"
	South Direction = "South"
	West  Direction = "West"
)
