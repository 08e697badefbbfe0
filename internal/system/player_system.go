// internal/system/player_system.go
package system

import (
	"errors"
	"log"

	"go-dungeon-arpg/internal/artifact"
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/input"
	"go-dungeon-arpg/internal/party"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"golang.org/x/image/math/f64"
)

// Conversation — идущий диалог, который перехватывает ввод.
type Conversation interface {
	Active() bool
	Advance()
}

// PlayerSystem переводит ввод в команды лидеру отряда.
type PlayerSystem struct {
	party     *party.Party
	input     input.Provider
	artifacts *artifact.Registry
	dialogue  Conversation
}

func NewPlayerSystem(p *party.Party, in input.Provider, artifacts *artifact.Registry, dialogue Conversation) *PlayerSystem {
	return &PlayerSystem{party: p, input: in, artifacts: artifacts, dialogue: dialogue}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	if s.party.State() == party.Scripted {
		return
	}
	leader, ok := s.party.Leader()
	if !ok {
		return
	}

	if s.dialogue != nil && s.dialogue.Active() {
		s.halt(leader)
		if s.input.Pressed(input.ActionInteract) || s.input.Pressed(input.ActionAttack) {
			s.dialogue.Advance()
		}
		return
	}

	axis := s.input.Axis()
	if pkgutils.IsZero(axis) {
		s.halt(leader)
	} else {
		leader.Move(axis, 1)
	}

	if s.input.Pressed(input.ActionDodge) {
		leader.DodgeStart()
	}
	if s.input.Pressed(input.ActionAttack) {
		leader.AttackStart()
	}
	if s.input.Pressed(input.ActionRangedAttack) {
		leader.RangedAttackStart()
	}
	if s.input.Pressed(input.ActionInteract) {
		leader.AttemptInteract()
	}

	if s.input.Pressed(input.ActionUpgradeHealth) && !s.party.Upgrade(party.UpgradeHealth) {
		log.Printf("Player: not enough keys for a health upgrade (%d)", s.party.Keys())
	}
	if s.input.Pressed(input.ActionUpgradeSpeed) && !s.party.Upgrade(party.UpgradeSpeed) {
		log.Printf("Player: not enough keys for a speed upgrade (%d)", s.party.Keys())
	}
	if s.input.Pressed(input.ActionDropArtifact) && s.artifacts != nil {
		if err := s.artifacts.RemoveOldest(); err != nil && !errors.Is(err, artifact.ErrNotFound) {
			log.Printf("Player: failed to drop artifact: %v", err)
		}
	}
}

// halt clears the input axis; a moving leader stops.
func (s *PlayerSystem) halt(leader *character.Character) {
	if leader.Kind() == character.KindMove {
		leader.Stop()
		return
	}
	leader.UpdateAxis(f64.Vec2{})
}
