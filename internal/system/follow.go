// internal/system/follow.go
package system

import (
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/party"
	pkgutils "go-dungeon-arpg/pkg/utils"
)

// FollowSystem держит миньонов в строю за лидером и бьёт врагов рядом с ними.
type FollowSystem struct {
	svc   *character.Services
	party *party.Party
}

func NewFollowSystem(svc *character.Services, p *party.Party) *FollowSystem {
	return &FollowSystem{svc: svc, party: p}
}

func (s *FollowSystem) Update(deltaTime float64) {
	if s.party.State() == party.Scripted {
		return
	}
	leader, ok := s.party.Leader()
	if !ok {
		return
	}
	at, heading := leader.Position(), leader.FacingDirection()

	for i, m := range s.party.Minions() {
		if foe, ok := nearestHostile(s.svc, m, config.MinionAggroRange); ok {
			if m.CanPerformStateTransition(character.KindAttack) {
				m.SetFacingDirection(pkgutils.Sub(foe.Position(), m.Position()))
				m.Stop()
				m.AttackStart()
			}
			continue
		}

		toSlot := pkgutils.Sub(s.party.FormationSlot(at, heading, i), m.Position())
		dist := pkgutils.Length(toSlot)
		if dist <= config.TransitionStoppingDistance {
			if m.Kind() == character.KindMove {
				m.Stop()
			}
			continue
		}
		modifier := pkgutils.Clamp(dist/s.party.FollowDistance(), 0.3, 1)
		m.MoveToward(pkgutils.Normalize(toSlot), modifier)
	}
}
