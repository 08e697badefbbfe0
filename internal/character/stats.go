// internal/character/stats.go
package character

import (
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/stats"
)

func (c *Character) baseAndBuffs() (stats.Base, []*stats.Buff) {
	e := c.entry()
	if e == nil {
		return stats.Base{}, nil
	}
	return component.StatsComponent.Get(e).Base, component.BuffsComponent.Get(e).Active
}

func (c *Character) GetMaxHealth() int {
	b, buffs := c.baseAndBuffs()
	return stats.MaxHealth(b, buffs)
}

func (c *Character) GetDefense() int {
	b, buffs := c.baseAndBuffs()
	return stats.Defense(b, buffs)
}

func (c *Character) GetMoveSpeed() float64 {
	b, buffs := c.baseAndBuffs()
	return stats.MoveSpeed(b, buffs)
}

func (c *Character) GetMeleeAffinity() int {
	b, buffs := c.baseAndBuffs()
	return stats.MeleeAffinity(b, buffs)
}

func (c *Character) GetRangedAffinity() int {
	b, buffs := c.baseAndBuffs()
	return stats.RangedAffinity(b, buffs)
}

// Stats returns every derived stat at once.
func (c *Character) Stats() stats.Derived {
	b, buffs := c.baseAndBuffs()
	return stats.Aggregate(b, buffs)
}

// Base returns the unbuffed stats.
func (c *Character) Base() stats.Base {
	b, _ := c.baseAndBuffs()
	return b
}

// AdjustBase изменяет базовые характеристики (улучшения отряда).
func (c *Character) AdjustBase(fn func(b *stats.Base)) {
	e := c.entry()
	if e == nil {
		return
	}
	fn(&component.StatsComponent.Get(e).Base)
	c.clampHealth()
}

// Buffs returns the active buff list. The slice must not be modified.
func (c *Character) Buffs() []*stats.Buff {
	_, buffs := c.baseAndBuffs()
	return buffs
}

// AddBuff appends a shared buff reference.
func (c *Character) AddBuff(b *stats.Buff) {
	e := c.entry()
	if e == nil || b == nil {
		return
	}
	buffs := component.BuffsComponent.Get(e)
	buffs.Active = append(buffs.Active, b)
}

// RemoveBuff drops one reference to b. Current health is clamped to the new maximum.
func (c *Character) RemoveBuff(b *stats.Buff) bool {
	e := c.entry()
	if e == nil || b == nil {
		return false
	}
	buffs := component.BuffsComponent.Get(e)
	for i, active := range buffs.Active {
		if active != b {
			continue
		}
		next := make([]*stats.Buff, 0, len(buffs.Active)-1)
		next = append(next, buffs.Active[:i]...)
		buffs.Active = append(next, buffs.Active[i+1:]...)
		c.clampHealth()
		return true
	}
	return false
}

// HasBuff reports whether b is in the active list.
func (c *Character) HasBuff(b *stats.Buff) bool {
	for _, active := range c.Buffs() {
		if active == b {
			return true
		}
	}
	return false
}

func (c *Character) clampHealth() {
	h := c.health()
	if h == nil || h.Dead {
		return
	}
	if limit := c.GetMaxHealth(); h.Current > limit {
		h.Current = limit
	}
}

// CurrentHealth returns the health counter.
func (c *Character) CurrentHealth() int {
	if h := c.health(); h != nil {
		return h.Current
	}
	return 0
}

// IsDead reports whether death was processed or the entity is gone.
func (c *Character) IsDead() bool {
	h := c.health()
	return h == nil || h.Dead
}

// Hit наносит урон. Отрицательный урон считается нулём. При здоровье <= 0
// персонаж умирает: одно событие CharacterDeath и удаление в конце тика.
// Возвращает true, если этот удар убил персонажа.
func (c *Character) Hit(damage int) bool {
	h := c.health()
	if h == nil || h.Dead {
		return false
	}
	if damage < 0 {
		damage = 0
	}
	h.Current -= damage
	if inv := c.invulnerability(); inv != nil {
		inv.TimeSinceLastHit = 0
	}

	if h.Current > 0 {
		c.svc.Events.Dispatch(event.Event{
			Type: event.CharacterHit,
			Data: event.HitData{Entity: c.entity, Damage: damage, Health: h.Current},
		})
		return false
	}

	h.Current = 0
	h.Dead = true
	id := c.Identity()
	pos := c.Position()
	c.install(NewIdleState(c))
	c.svc.ECS.QueueRemoval(c.entity)
	c.svc.Events.Dispatch(event.Event{
		Type: event.CharacterDeath,
		Data: event.DeathData{Entity: c.entity, DefID: id.DefID, Name: id.Name, Role: id.Role, Position: pos},
	})
	return true
}

// Heal adds health up to GetMaxHealth. Negative amounts are treated as zero.
func (c *Character) Heal(amount int) {
	h := c.health()
	if h == nil || h.Dead {
		return
	}
	if amount < 0 {
		amount = 0
	}
	h.Current += amount
	if limit := c.GetMaxHealth(); h.Current > limit {
		h.Current = limit
	}
}

// IsInvulnerable reports i-frames after a hit or the explicit flag.
func (c *Character) IsInvulnerable() bool {
	if inv := c.invulnerability(); inv != nil {
		return inv.Active()
	}
	return false
}

// SetInvulnerable sets the explicit invulnerability flag.
func (c *Character) SetInvulnerable(on bool) {
	if inv := c.invulnerability(); inv != nil {
		inv.Forced = on
	}
}

// IsVisible is the flicker state shown while invulnerable.
func (c *Character) IsVisible() bool {
	if inv := c.invulnerability(); inv != nil {
		return inv.Visible
	}
	return false
}

func (c *Character) tickInvulnerability(dt float64) {
	inv := c.invulnerability()
	if inv == nil {
		return
	}
	inv.TimeSinceLastHit += dt
	inv.SinceFlicker += dt
	if !inv.Active() {
		inv.Visible = true
		return
	}
	if inv.SinceFlicker >= inv.FlickerRate {
		inv.Visible = !inv.Visible
		inv.SinceFlicker = 0
	}
}
