// internal/defs/characters.go
package defs

import "fmt"

// DodgeParams describes the dodge dash of a character.
type DodgeParams struct {
	Duration        float64 `json:"duration"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	InvulDuration   float64 `json:"invul_duration"`
}

// EnemyParams holds targeting and wandering data for hostile characters.
type EnemyParams struct {
	ViewRange      float64 `json:"view_range"`
	AttackingRange float64 `json:"attacking_range"`
	MinWanderTime  float64 `json:"min_wander_time"`
	MaxWanderTime  float64 `json:"max_wander_time"`
}

// CharacterDefinition holds all the static data for one kind of character.
type CharacterDefinition struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Tribe              Tribe        `json:"tribe"`
	BaseHealth         int          `json:"base_health"`
	BaseDefense        int          `json:"base_defense"`
	MoveSpeed          float64      `json:"move_speed"`
	BaseMeleeAffinity  int          `json:"base_melee_affinity"`
	BaseRangedAffinity int          `json:"base_ranged_affinity"`
	TurnSmoothTime     float64      `json:"turn_smooth_time"`
	MeleeAttackID      string       `json:"melee_attack"`
	RangedAttackID     string       `json:"ranged_attack"`
	Dodge              DodgeParams  `json:"dodge"`
	IFrameDuration     float64      `json:"iframe_duration"`
	IFrameFlickerRate  float64      `json:"iframe_flicker_rate"`
	InteractRadius     float64      `json:"interact_radius"`
	YarnKey            string       `json:"yarn_key"`
	RulesID            string       `json:"rules"`
	LootID             string       `json:"loot"`
	Enemy              *EnemyParams `json:"enemy,omitempty"`

	// Resolved by Library.link.
	MeleeAttack  *AttackDefinition `json:"-"`
	RangedAttack *AttackDefinition `json:"-"`
	Rules        *RuleTable        `json:"-"`
	Loot         *LootTable        `json:"-"`
}

// Validate checks the fields that do not depend on other definitions.
func (c *CharacterDefinition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("character definition without id")
	}
	if c.BaseHealth <= 0 {
		return fmt.Errorf("character %s: base_health must be positive", c.ID)
	}
	if c.MoveSpeed < 0 {
		return fmt.Errorf("character %s: move_speed must not be negative", c.ID)
	}
	if c.Tribe == "" {
		c.Tribe = TribeNeutral
	}
	if !c.Tribe.Valid() {
		return fmt.Errorf("character %s: unknown tribe %q", c.ID, c.Tribe)
	}
	return nil
}

// RuleTable is the authored transition table: state name -> reachable state names.
type RuleTable struct {
	ID          string              `json:"id"`
	Transitions map[string][]string `json:"transitions"`
}
