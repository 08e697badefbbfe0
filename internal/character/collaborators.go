// internal/character/collaborators.go
package character

import "go-dungeon-arpg/internal/defs"

// Hitbox is the attack's hit volume. The attack state only drives its phases;
// overlap detection and damage belong to whoever implements it.
type Hitbox interface {
	StartupPhase()
	ActivePhase()
	CooldownPhase()
	Deactivate()
}

// HitboxFactory creates the hitbox for an attack about to start.
type HitboxFactory interface {
	NewHitbox(owner *Character, atk *defs.AttackDefinition) Hitbox
}

// DialogueStarter opens a dialogue session by key.
type DialogueStarter interface {
	StartDialogue(key string) bool
}

type noopHitbox struct{}

func (noopHitbox) StartupPhase()  {}
func (noopHitbox) ActivePhase()   {}
func (noopHitbox) CooldownPhase() {}
func (noopHitbox) Deactivate()    {}

type noopHitboxFactory struct{}

func (noopHitboxFactory) NewHitbox(*Character, *defs.AttackDefinition) Hitbox { return noopHitbox{} }

type noopDialogue struct{}

func (noopDialogue) StartDialogue(string) bool { return false }
