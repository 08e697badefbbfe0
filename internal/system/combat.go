// internal/system/combat.go
package system

import (
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var hitboxes = donburi.NewQuery(filter.Contains(component.HitboxComponent))

// CombatSystem создаёт хитбоксы атак и разрешает их пересечения с персонажами.
// Реализует character.HitboxFactory.
type CombatSystem struct {
	svc *character.Services
}

func NewCombatSystem(svc *character.Services) *CombatSystem {
	return &CombatSystem{svc: svc}
}

// hitbox — дескриптор сущности хитбокса, который держит AttackState.
type hitbox struct {
	sys    *CombatSystem
	entity donburi.Entity
}

// NewHitbox spawns an inactive hitbox entity for owner's attack.
func (s *CombatSystem) NewHitbox(owner *character.Character, atk *defs.AttackDefinition) character.Hitbox {
	entry := s.svc.ECS.NewEntity(component.HitboxComponent)
	component.HitboxComponent.SetValue(entry, component.Hitbox{
		Owner:       owner.Entity(),
		OwnerRole:   owner.Role(),
		Attack:      atk,
		Reach:       atk.Reach,
		Radius:      atk.Range,
		Center:      pkgutils.Add(owner.Position(), pkgutils.Scale(owner.FacingDirection(), atk.Reach)),
		HitEntities: make(map[donburi.Entity]bool),
	})
	return &hitbox{sys: s, entity: entry.Entity()}
}

func (h *hitbox) get() *component.Hitbox {
	entry, ok := h.sys.svc.ECS.Entry(h.entity)
	if !ok {
		return nil
	}
	return component.HitboxComponent.Get(entry)
}

func (h *hitbox) setPhase(phase component.HitboxPhase) *component.Hitbox {
	hb := h.get()
	if hb != nil {
		hb.Phase = phase
	}
	return hb
}

func (h *hitbox) StartupPhase()  { h.setPhase(component.HitboxStartup) }
func (h *hitbox) CooldownPhase() { h.setPhase(component.HitboxCooldown) }

func (h *hitbox) ActivePhase() {
	hb := h.setPhase(component.HitboxActive)
	if hb == nil {
		return
	}
	clear(hb.HitEntities)
	if hb.Attack.Kind != defs.AttackRanged {
		return
	}
	owner, ok := character.Get(h.sys.svc, hb.Owner)
	if !ok {
		return
	}
	h.sys.spawnProjectile(owner, hb.Attack)
}

func (h *hitbox) Deactivate() {
	h.setPhase(component.HitboxInactive)
	h.sys.svc.ECS.QueueRemoval(h.entity)
}

// spawnProjectile выпускает снаряд дальней атаки по направлению взгляда.
func (s *CombatSystem) spawnProjectile(owner *character.Character, atk *defs.AttackDefinition) donburi.Entity {
	dir := owner.FacingDirection()
	entry := s.svc.ECS.NewEntity(
		component.ProjectileComponent,
		component.MotionComponent,
		component.RenderableComponent,
	)
	component.ProjectileComponent.SetValue(entry, component.Projectile{
		Owner:     owner.Entity(),
		OwnerRole: owner.Role(),
		Direction: dir,
		Speed:     config.ProjectileSpeed,
		Damage:    atk.Damage + owner.GetRangedAffinity(),
		Radius:    config.ProjectileRadius,
		Remaining: config.ProjectileRange,
	})
	component.MotionComponent.SetValue(entry, component.Motion{
		Position:      pkgutils.Add(owner.Position(), pkgutils.Scale(dir, config.CharacterRadius)),
		Velocity:      pkgutils.Scale(dir, config.ProjectileSpeed),
		SpeedModifier: 1,
		Facing:        owner.Facing(),
	})
	component.RenderableComponent.SetValue(entry, component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	})
	return entry.Entity()
}

type pendingHit struct {
	target *character.Character
	damage int
}

// Update двигает хитбоксы за владельцами и наносит урон в фазе Active.
// Каждую цель одна атака задевает не больше одного раза.
func (s *CombatSystem) Update(deltaTime float64) {
	var hits []pendingHit
	for _, e := range collect(s.svc.ECS.World, hitboxes) {
		entry, ok := s.svc.ECS.Entry(e)
		if !ok || s.svc.ECS.IsQueued(e) {
			continue
		}
		hb := component.HitboxComponent.Get(entry)
		owner, ok := character.Get(s.svc, hb.Owner)
		if !ok || owner.IsDead() {
			s.svc.ECS.QueueRemoval(e)
			continue
		}
		hb.Center = pkgutils.Add(owner.Position(), pkgutils.Scale(owner.FacingDirection(), hb.Reach))
		if !hb.CanHit() || hb.Attack.Kind == defs.AttackRanged {
			continue
		}

		for _, te := range collect(s.svc.ECS.World, characters) {
			if te == hb.Owner || hb.HitEntities[te] {
				continue
			}
			target, ok := character.Get(s.svc, te)
			if !ok || target.IsDead() || !Hostile(hb.OwnerRole, target.Role()) {
				continue
			}
			if pkgutils.Distance(hb.Center, target.Position()) > hb.Radius+config.CharacterRadius {
				continue
			}
			if target.IsInvulnerable() {
				continue
			}
			hb.HitEntities[te] = true
			hits = append(hits, pendingHit{target: target, damage: CalculateDamage(hb.Attack, owner, target)})
		}
	}
	for _, h := range hits {
		h.target.Hit(h.damage)
	}
}
