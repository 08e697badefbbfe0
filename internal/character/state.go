// internal/character/state.go
package character

import (
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/utils"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// State — живое состояние персонажа. Реализации закрыты внутри пакета:
// Idle, Move, Attack, Dodge. Каждый переход создаёт новый экземпляр.
type State interface {
	Kind() Kind
	CanExit() bool
	Owner() donburi.Entity

	enter(c *Character)
	update(c *Character, dt float64)
	fixedUpdate(c *Character, dt float64)
	exit(c *Character)
}

type base struct {
	owner   donburi.Entity
	canExit bool
}

func (b *base) Owner() donburi.Entity { return b.owner }
func (b *base) CanExit() bool         { return b.canExit }

// IdleState — состояние покоя
type IdleState struct{ base }

func NewIdleState(c *Character) *IdleState {
	return &IdleState{base{owner: c.Entity(), canExit: true}}
}

func (s *IdleState) Kind() Kind                      { return KindIdle }
func (s *IdleState) enter(*Character)                {}
func (s *IdleState) update(*Character, float64)      {}
func (s *IdleState) fixedUpdate(*Character, float64) {}
func (s *IdleState) exit(*Character)                 {}

// MoveState — движение по вводу
type MoveState struct{ base }

func NewMoveState(c *Character) *MoveState {
	return &MoveState{base{owner: c.Entity(), canExit: true}}
}

func (s *MoveState) Kind() Kind                 { return KindMove }
func (s *MoveState) enter(*Character)           {}
func (s *MoveState) update(*Character, float64) {}
func (s *MoveState) exit(*Character)            {}

func (s *MoveState) fixedUpdate(c *Character, dt float64) {
	steer(c, dt)
}

// steer поворачивает персонажа к направлению ввода и задаёт скорость.
// Скорость идёт вдоль целевого направления, а не сглаженного.
func steer(c *Character, dt float64) {
	m := c.motion()
	if m == nil {
		return
	}
	if pkgutils.IsZero(m.Axis) {
		m.Velocity = f64.Vec2{}
		return
	}
	targetYaw := pkgutils.Heading(m.Axis) + c.svc.CameraYaw
	m.Facing = utils.NormalizeAngle(utils.SmoothDampAngle(m.Facing, targetYaw, &m.TurnSmoothVelocity, m.TurnSmoothTime, dt))
	speed := c.GetMoveSpeed() * m.SpeedModifier
	m.Velocity = pkgutils.Scale(yawDirection(targetYaw), speed)
}

// yawDirection — единичный вектор по рысканию в градусах (0 — +y, 90 — +x)
func yawDirection(yaw float64) f64.Vec2 {
	return pkgutils.Rotate(f64.Vec2{0, 1}, yaw)
}

// AttackState проводит атаку через фазы Startup -> Active -> Cooldown и
// возвращает персонажа в Idle, когда elapsed превысит total. Фаза меняется
// только после того, как elapsed строго больше границы.
type AttackState struct {
	base
	attack  *defs.AttackDefinition
	canMove bool
	elapsed float64
	phase   component.HitboxPhase
	hitbox  Hitbox
}

func NewAttackState(c *Character, atk *defs.AttackDefinition) *AttackState {
	return &AttackState{
		base:    base{owner: c.Entity()},
		attack:  atk,
		canMove: atk.CanMove,
	}
}

func (s *AttackState) Kind() Kind                     { return KindAttack }
func (s *AttackState) Attack() *defs.AttackDefinition { return s.attack }
func (s *AttackState) Phase() component.HitboxPhase   { return s.phase }
func (s *AttackState) Elapsed() float64               { return s.elapsed }
func (s *AttackState) CanMove() bool                  { return s.canMove }

func (s *AttackState) enter(c *Character) {
	s.hitbox = c.svc.Hitboxes.NewHitbox(c, s.attack)
	s.phase = component.HitboxStartup
	s.hitbox.StartupPhase()
	c.svc.Events.Dispatch(event.Event{
		Type: event.AttackStarted,
		Data: event.AttackData{Entity: c.Entity(), Attack: s.attack},
	})
}

func (s *AttackState) update(c *Character, dt float64) {
	s.elapsed += dt
	if s.phase == component.HitboxStartup && s.elapsed > s.attack.Startup {
		s.phase = component.HitboxActive
		s.hitbox.ActivePhase()
	}
	if s.phase == component.HitboxActive && s.elapsed > s.attack.ActiveUntil {
		s.phase = component.HitboxCooldown
		s.canExit = true
		s.hitbox.CooldownPhase()
	}
	if s.phase == component.HitboxCooldown && s.elapsed > s.attack.Total {
		c.install(NewIdleState(c))
	}
}

func (s *AttackState) fixedUpdate(c *Character, dt float64) {
	if s.canMove {
		steer(c, dt)
		return
	}
	if m := c.motion(); m != nil {
		m.Velocity = f64.Vec2{}
	}
}

func (s *AttackState) exit(*Character) {
	if s.hitbox != nil {
		s.hitbox.Deactivate()
	}
}

// DodgeState — рывок уклонения с окном неуязвимости. Прервать его нельзя.
type DodgeState struct {
	base
	params    defs.DodgeParams
	direction f64.Vec2
	elapsed   float64
	done      bool
}

func NewDodgeState(c *Character) *DodgeState {
	s := &DodgeState{base: base{owner: c.Entity()}}
	if l := c.loadout(); l != nil {
		s.params = l.Dodge
	}
	return s
}

func (s *DodgeState) Kind() Kind          { return KindDodge }
func (s *DodgeState) Direction() f64.Vec2 { return s.direction }
func (s *DodgeState) Elapsed() float64    { return s.elapsed }

func (s *DodgeState) enter(c *Character) {
	m := c.motion()
	if m == nil {
		return
	}
	if pkgutils.IsZero(m.Axis) {
		s.direction = yawDirection(m.Facing)
	} else {
		s.direction = yawDirection(pkgutils.Heading(m.Axis) + c.svc.CameraYaw)
		m.Facing = utils.NormalizeAngle(pkgutils.Heading(s.direction))
	}
	if inv := c.invulnerability(); inv != nil {
		inv.Dodging = s.params.InvulDuration > 0
	}
	c.svc.Events.Dispatch(event.Event{Type: event.DodgeStarted, Data: event.DodgeData{Entity: c.Entity()}})
}

func (s *DodgeState) update(c *Character, dt float64) {
	s.elapsed += dt
	if inv := c.invulnerability(); inv != nil {
		inv.Dodging = s.elapsed < s.params.InvulDuration
	}
	if s.elapsed >= s.params.Duration {
		s.done = true
		c.install(NewIdleState(c))
	}
}

func (s *DodgeState) fixedUpdate(c *Character, _ float64) {
	m := c.motion()
	if m == nil || s.done {
		return
	}
	m.Velocity = pkgutils.Scale(s.direction, c.GetMoveSpeed()*s.params.SpeedMultiplier)
}

func (s *DodgeState) exit(c *Character) {
	if m := c.motion(); m != nil {
		m.Velocity = f64.Vec2{}
	}
	if inv := c.invulnerability(); inv != nil {
		inv.Dodging = false
	}
}
