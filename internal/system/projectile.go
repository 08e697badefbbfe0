// internal/system/projectile.go
package system

import (
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/math/f64"
)

var projectiles = donburi.NewQuery(filter.Contains(component.ProjectileComponent, component.MotionComponent))

// ProjectileSystem ведёт снаряды и наносит урон первой враждебной цели.
type ProjectileSystem struct {
	svc *character.Services
}

func NewProjectileSystem(svc *character.Services) *ProjectileSystem {
	return &ProjectileSystem{svc: svc}
}

// Update runs after MovementSystem has moved the projectiles.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, e := range collect(s.svc.ECS.World, projectiles) {
		entry, ok := s.svc.ECS.Entry(e)
		if !ok || s.svc.ECS.IsQueued(e) {
			continue
		}
		proj := *component.ProjectileComponent.Get(entry)
		pos := component.MotionComponent.Get(entry).Position

		if target, ok := s.findTarget(proj, pos); ok {
			damage := proj.Damage - target.GetDefense()
			if damage < 0 {
				damage = 0
			}
			s.removeProjectile(e)
			target.Hit(damage)
			continue
		}

		proj.Remaining -= proj.Speed * deltaTime
		if proj.Remaining <= 0 {
			s.removeProjectile(e)
			continue
		}
		component.ProjectileComponent.SetValue(entry, proj)
	}
}

func (s *ProjectileSystem) findTarget(proj component.Projectile, pos f64.Vec2) (*character.Character, bool) {
	for _, te := range collect(s.svc.ECS.World, characters) {
		if te == proj.Owner {
			continue
		}
		target, ok := character.Get(s.svc, te)
		if !ok || target.IsDead() || !Hostile(proj.OwnerRole, target.Role()) {
			continue
		}
		if pkgutils.Distance(pos, target.Position()) > proj.Radius+config.CharacterRadius {
			continue
		}
		if target.IsInvulnerable() {
			continue
		}
		return target, true
	}
	return nil, false
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(e donburi.Entity) {
	s.svc.ECS.QueueRemoval(e)
}
