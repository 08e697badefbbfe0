// internal/defs/artifacts.go
package defs

import (
	"fmt"

	"go-dungeon-arpg/internal/stats"
)

// BehaviorParams configures the optional behavior of an artifact.
type BehaviorParams struct {
	LowHPThreshold float64     `json:"low_hp_threshold,omitempty"`
	Boost          *stats.Buff `json:"boost,omitempty"`
	HealAmount     int         `json:"heal_amount,omitempty"`
	Keys           int         `json:"keys,omitempty"`
}

// ArtifactDefinition pairs a buff with a target filter and an optional behavior.
type ArtifactDefinition struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Buff     *stats.Buff    `json:"buff,omitempty"`
	Target   ArtifactTarget `json:"target"`
	Tribe    Tribe          `json:"tribe"`
	CanStack bool           `json:"can_stack"`
	Behavior BehaviorType   `json:"behavior"`
	Params   BehaviorParams `json:"params"`
}

// Matches reports whether a party member with the given role and tribe is
// covered by the artifact's target filter.
func (a *ArtifactDefinition) Matches(role Role, tribe Tribe) bool {
	switch role {
	case RoleLeader:
		return a.Target == TargetAll || a.Target == TargetLeader
	case RoleMinion:
		if a.Target != TargetAll && a.Target != TargetMinion {
			return false
		}
		return a.Tribe == TribeNeutral || a.Tribe == tribe
	default:
		return false
	}
}

// HasBehavior reports whether a behavior handler must be created.
func (a *ArtifactDefinition) HasBehavior() bool {
	return a.Behavior != "" && a.Behavior != BehaviorNone
}

// Validate fills defaults and checks the target and tribe filter.
func (a *ArtifactDefinition) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("artifact definition without id")
	}
	if a.Target == "" {
		a.Target = TargetAll
	}
	if a.Tribe == "" {
		a.Tribe = TribeNeutral
	}
	if a.Behavior == "" {
		a.Behavior = BehaviorNone
	}
	switch a.Target {
	case TargetAll, TargetLeader, TargetMinion:
	default:
		return fmt.Errorf("artifact %s: unknown target %q", a.ID, a.Target)
	}
	if !a.Tribe.Valid() {
		return fmt.Errorf("artifact %s: unknown tribe %q", a.ID, a.Tribe)
	}
	if a.Buff != nil && a.Buff.ID == "" {
		a.Buff.ID = a.ID
	}
	return nil
}
