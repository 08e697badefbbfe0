// internal/system/ai.go
package system

import (
	"sort"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/party"
	"go-dungeon-arpg/internal/utils"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/math/f64"
)

var enemies = donburi.NewQuery(filter.Contains(component.EnemyComponent, character.MachineComponent))

// EnemySystem — поведение врагов: выбор целей, атака, погоня, блуждание.
type EnemySystem struct {
	svc   *character.Services
	party *party.Party
	rng   *utils.PRNGService
}

func NewEnemySystem(svc *character.Services, p *party.Party, rng *utils.PRNGService) *EnemySystem {
	return &EnemySystem{svc: svc, party: p, rng: rng}
}

type enemyOrder int

const (
	orderStop enemyOrder = iota
	orderAttack
	orderChase
	orderWander
)

func (s *EnemySystem) Update(deltaTime float64) {
	members := s.party.Members()
	for _, e := range collect(s.svc.ECS.World, enemies) {
		c, ok := character.Get(s.svc, e)
		if !ok || c.IsDead() {
			continue
		}
		entry, _ := s.svc.ECS.Entry(e)
		en := component.EnemyComponent.Get(entry)
		if en.Frozen {
			if c.Kind() == character.KindMove {
				c.Stop()
			}
			continue
		}

		pos := c.Position()
		en.NearbyTargets = nearbyTargets(pos, en.Params.ViewRange, members)
		order, dir := s.decide(en, pos, deltaTime)

		switch order {
		case orderAttack:
			if c.CanPerformStateTransition(character.KindAttack) {
				c.SetFacingDirection(dir)
				c.Stop()
				c.AttackStart()
			}
		case orderChase:
			c.MoveToward(dir, 1)
		case orderWander:
			c.MoveToward(dir, config.WanderSpeedModifier)
		default:
			if c.Kind() == character.KindMove {
				c.Stop()
			}
		}
	}
}

// decide picks the next order. It mutates only en and must run before any
// character call that may create entities.
func (s *EnemySystem) decide(en *component.Enemy, pos f64.Vec2, deltaTime float64) (enemyOrder, f64.Vec2) {
	if targetEntity, ok := en.ClosestTarget(); ok {
		if target, ok := character.Get(s.svc, targetEntity); ok {
			toTarget := pkgutils.Sub(target.Position(), pos)
			dir := pkgutils.Normalize(toTarget)
			if pkgutils.Length(toTarget) <= en.Params.AttackingRange {
				return orderAttack, dir
			}
			en.WanderTimer = 0
			return orderChase, dir
		}
	}

	if en.Params.MaxWanderTime <= 0 {
		return orderStop, f64.Vec2{}
	}
	en.WanderTimer -= deltaTime
	if en.WanderTimer <= 0 {
		en.WanderTimer = s.rng.Range(en.Params.MinWanderTime, en.Params.MaxWanderTime)
		// Каждое второе блуждание — постоять на месте
		if s.rng.Intn(2) == 0 {
			en.WanderDir = f64.Vec2{}
		} else {
			en.WanderDir = s.rng.Direction()
		}
	}
	if pkgutils.IsZero(en.WanderDir) {
		return orderStop, f64.Vec2{}
	}
	return orderWander, en.WanderDir
}

// nearbyTargets returns the living members within viewRange, closest first.
func nearbyTargets(pos f64.Vec2, viewRange float64, members []*character.Character) []donburi.Entity {
	if viewRange <= 0 {
		return nil
	}
	type candidate struct {
		entity donburi.Entity
		dist   float64
	}
	var found []candidate
	for _, m := range members {
		if m.IsDead() {
			continue
		}
		if d := pkgutils.Distance(pos, m.Position()); d <= viewRange {
			found = append(found, candidate{entity: m.Entity(), dist: d})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]donburi.Entity, len(found))
	for i, f := range found {
		out[i] = f.entity
	}
	return out
}

// nearestHostile returns the closest living character c may damage within radius.
func nearestHostile(svc *character.Services, c *character.Character, radius float64) (*character.Character, bool) {
	var best *character.Character
	bestDist := radius
	for _, e := range collect(svc.ECS.World, characters) {
		if e == c.Entity() {
			continue
		}
		other, ok := character.Get(svc, e)
		if !ok || other.IsDead() || !Hostile(c.Role(), other.Role()) {
			continue
		}
		if d := pkgutils.Distance(c.Position(), other.Position()); d <= bestDist {
			best, bestDist = other, d
		}
	}
	return best, best != nil
}
