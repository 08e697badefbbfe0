// internal/character/character.go
package character

import (
	"fmt"
	"image/color"

	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/stats"
	"go-dungeon-arpg/internal/utils"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Machine — компонент конечного автомата персонажа
type Machine struct {
	State State
	Rules *Rules
}

var MachineComponent = donburi.NewComponentType[Machine]()

// Services — зависимости, общие для всех персонажей мира
type Services struct {
	ECS       *entity.ECS
	Events    *event.Dispatcher
	Hitboxes  HitboxFactory
	Dialogue  DialogueStarter
	CameraYaw float64

	IFrameDuration    float64 // если в определении ноль
	IFrameFlickerRate float64
}

// NewServices создаёт набор зависимостей с заглушками вместо хитбоксов и диалогов.
func NewServices(ecs *entity.ECS, events *event.Dispatcher) *Services {
	return &Services{
		ECS:               ecs,
		Events:            events,
		Hitboxes:          noopHitboxFactory{},
		Dialogue:          noopDialogue{},
		IFrameDuration:    config.DefaultIFrameDuration,
		IFrameFlickerRate: config.DefaultIFrameFlickerRate,
	}
}

// Character — лёгкий дескриптор персонажа поверх сущности мира.
// Все методы безопасны для удалённой сущности: они ничего не делают.
type Character struct {
	svc    *Services
	entity donburi.Entity
}

// Get возвращает дескриптор, если e — живой персонаж.
func Get(svc *Services, e donburi.Entity) (*Character, bool) {
	entry, ok := svc.ECS.Entry(e)
	if !ok || !entry.HasComponent(MachineComponent) {
		return nil, false
	}
	return &Character{svc: svc, entity: e}, true
}

// Spawn создаёт персонажа по определению и ставит его в Idle.
func Spawn(svc *Services, def *defs.CharacterDefinition, role defs.Role, pos f64.Vec2) (*Character, error) {
	rules, err := NewRules(def.Rules)
	if err != nil {
		return nil, err
	}

	components := []donburi.IComponentType{
		component.IdentityComponent,
		component.StatsComponent,
		component.HealthComponent,
		component.BuffsComponent,
		component.MotionComponent,
		component.InvulnerabilityComponent,
		component.LoadoutComponent,
		component.RenderableComponent,
		MachineComponent,
	}
	switch role {
	case defs.RoleLeader:
		components = append(components, component.LeaderComponent)
	case defs.RoleMinion:
		components = append(components, component.MinionComponent)
	case defs.RoleEnemy:
		components = append(components, component.EnemyComponent)
	case defs.RoleNPC:
	default:
		return nil, fmt.Errorf("character %s: unknown role %q", def.ID, role)
	}
	entry := svc.ECS.NewEntity(components...)

	interactRadius := def.InteractRadius
	if interactRadius == 0 {
		interactRadius = config.DefaultInteractRadius
	}
	component.IdentityComponent.SetValue(entry, component.Identity{
		DefID:          def.ID,
		Name:           def.Name,
		Role:           role,
		Tribe:          def.Tribe,
		YarnKey:        def.YarnKey,
		InteractRadius: interactRadius,
	})
	component.StatsComponent.SetValue(entry, component.Stats{Base: stats.Base{
		Health:         def.BaseHealth,
		Defense:        def.BaseDefense,
		MoveSpeed:      def.MoveSpeed,
		MeleeAffinity:  def.BaseMeleeAffinity,
		RangedAffinity: def.BaseRangedAffinity,
	}})
	component.HealthComponent.SetValue(entry, component.Health{Current: def.BaseHealth})

	turn := def.TurnSmoothTime
	if turn == 0 {
		turn = config.DefaultTurnSmoothTime
	}
	component.MotionComponent.SetValue(entry, component.Motion{
		Position:       pos,
		SpeedModifier:  1,
		TurnSmoothTime: turn,
	})

	iframes, flicker := def.IFrameDuration, def.IFrameFlickerRate
	if iframes == 0 {
		iframes = svc.IFrameDuration
	}
	if flicker == 0 {
		flicker = svc.IFrameFlickerRate
	}
	component.InvulnerabilityComponent.SetValue(entry, component.NewInvulnerability(iframes, flicker))
	component.LoadoutComponent.SetValue(entry, component.Loadout{
		Melee:  def.MeleeAttack,
		Ranged: def.RangedAttack,
		Dodge:  def.Dodge,
	})
	component.RenderableComponent.SetValue(entry, component.Renderable{Color: roleColor(role), Radius: 0.5})
	if role == defs.RoleEnemy && def.Enemy != nil {
		component.EnemyComponent.SetValue(entry, component.Enemy{Params: *def.Enemy})
	}

	c := &Character{svc: svc, entity: entry.Entity()}
	MachineComponent.SetValue(entry, Machine{Rules: rules})
	c.install(NewIdleState(c))
	return c, nil
}

func roleColor(role defs.Role) color.RGBA {
	switch role {
	case defs.RoleLeader:
		return config.LeaderColor
	case defs.RoleMinion:
		return config.MinionColor
	case defs.RoleEnemy:
		return config.EnemyColor
	}
	return config.NPCColor
}

func (c *Character) Entity() donburi.Entity { return c.entity }

// Services returns the dependencies the character was spawned with.
func (c *Character) Services() *Services { return c.svc }

func (c *Character) entry() *donburi.Entry {
	entry, ok := c.svc.ECS.Entry(c.entity)
	if !ok {
		return nil
	}
	return entry
}

// Valid reports whether the entity is still part of the world.
func (c *Character) Valid() bool {
	return c.svc.ECS.Valid(c.entity)
}

func (c *Character) machine() *Machine {
	if e := c.entry(); e != nil {
		return MachineComponent.Get(e)
	}
	return nil
}

func (c *Character) motion() *component.Motion {
	if e := c.entry(); e != nil {
		return component.MotionComponent.Get(e)
	}
	return nil
}

func (c *Character) health() *component.Health {
	if e := c.entry(); e != nil {
		return component.HealthComponent.Get(e)
	}
	return nil
}

func (c *Character) invulnerability() *component.Invulnerability {
	if e := c.entry(); e != nil {
		return component.InvulnerabilityComponent.Get(e)
	}
	return nil
}

func (c *Character) loadout() *component.Loadout {
	if e := c.entry(); e != nil {
		return component.LoadoutComponent.Get(e)
	}
	return nil
}

func (c *Character) identity() *component.Identity {
	if e := c.entry(); e != nil {
		return component.IdentityComponent.Get(e)
	}
	return nil
}

// Identity returns a copy of the identity component.
func (c *Character) Identity() component.Identity {
	if id := c.identity(); id != nil {
		return *id
	}
	return component.Identity{}
}

func (c *Character) Role() defs.Role   { return c.Identity().Role }
func (c *Character) Tribe() defs.Tribe { return c.Identity().Tribe }
func (c *Character) Name() string      { return c.Identity().Name }

// State returns the live state, nil for a removed entity.
func (c *Character) State() State {
	if m := c.machine(); m != nil {
		return m.State
	}
	return nil
}

// Kind returns the kind of the live state.
func (c *Character) Kind() Kind {
	if s := c.State(); s != nil {
		return s.Kind()
	}
	return KindIdle
}

// install меняет состояние без проверки правил: Exit старого, Enter нового.
func (c *Character) install(next State) {
	m := c.machine()
	if m == nil {
		return
	}
	prev := m.State
	if prev != nil {
		prev.exit(c)
	}
	// exit мог сменить архетип сущности
	if m = c.machine(); m == nil {
		return
	}
	m.State = next
	next.enter(c)
}

// CanPerformStateTransition reports whether the current state may be left for to.
func (c *Character) CanPerformStateTransition(to Kind) bool {
	m := c.machine()
	if m == nil || m.State == nil {
		return false
	}
	return m.State.CanExit() && m.Rules.CanTransition(m.State.Kind(), to)
}

// RequestTransition installs next if the gate allows it. A rejected request
// leaves the current state untouched.
func (c *Character) RequestTransition(next State) bool {
	if next == nil || next.Owner() != c.entity || c.IsDead() {
		return false
	}
	if !c.CanPerformStateTransition(next.Kind()) {
		return false
	}
	c.install(next)
	return true
}

// ForceIdle drops whatever the character is doing. Used when a scripted
// sequence is interrupted.
func (c *Character) ForceIdle() {
	if c.State() == nil {
		return
	}
	c.install(NewIdleState(c))
	if m := c.motion(); m != nil {
		m.Velocity = f64.Vec2{}
	}
}

// Move запоминает ввод и, если правила позволяют, переводит персонажа в Move.
func (c *Character) Move(axis f64.Vec2, modifier float64) bool {
	c.UpdateAxis(axis)
	if !c.CanPerformStateTransition(KindMove) {
		return false
	}
	if m := c.motion(); m != nil {
		m.SpeedModifier = modifier
	}
	if c.Kind() == KindMove {
		return true
	}
	return c.RequestTransition(NewMoveState(c))
}

// MoveToward moves along a world-space direction regardless of camera yaw.
func (c *Character) MoveToward(dir f64.Vec2, modifier float64) bool {
	return c.Move(pkgutils.Rotate(dir, -c.svc.CameraYaw), modifier)
}

// UpdateAxis records the input axis without acting on it.
func (c *Character) UpdateAxis(axis f64.Vec2) {
	if m := c.motion(); m != nil {
		m.Axis = axis
	}
}

// Stop обнуляет ввод и скорость; из Move возвращает в Idle.
func (c *Character) Stop() {
	m := c.motion()
	if m == nil {
		return
	}
	m.Axis = f64.Vec2{}
	m.Velocity = f64.Vec2{}
	if c.Kind() == KindMove {
		c.RequestTransition(NewIdleState(c))
	}
}

// AttackStart begins the melee attack.
func (c *Character) AttackStart() bool {
	if l := c.loadout(); l != nil {
		return c.AttackStartWith(l.Melee)
	}
	return false
}

// RangedAttackStart begins the ranged attack.
func (c *Character) RangedAttackStart() bool {
	if l := c.loadout(); l != nil {
		return c.AttackStartWith(l.Ranged)
	}
	return false
}

// AttackStartWith begins atk if the gate allows entering Attack.
func (c *Character) AttackStartWith(atk *defs.AttackDefinition) bool {
	if atk == nil {
		return false
	}
	return c.RequestTransition(NewAttackState(c, atk))
}

// DodgeStart begins a dodge dash.
func (c *Character) DodgeStart() bool {
	return c.RequestTransition(NewDodgeState(c))
}

// Update — логический тик: состояние, таймер неуязвимости, мерцание.
func (c *Character) Update(dt float64) {
	if c.IsDead() {
		return
	}
	if s := c.State(); s != nil {
		s.update(c, dt)
	}
	c.tickInvulnerability(dt)
}

// FixedUpdate — физический тик: состояние выставляет скорость и поворот.
func (c *Character) FixedUpdate(dt float64) {
	if c.IsDead() {
		return
	}
	if s := c.State(); s != nil {
		s.fixedUpdate(c, dt)
	}
}

// Position returns the ground-plane position.
func (c *Character) Position() f64.Vec2 {
	if m := c.motion(); m != nil {
		return m.Position
	}
	return f64.Vec2{}
}

// SetPosition teleports the character.
func (c *Character) SetPosition(p f64.Vec2) {
	if m := c.motion(); m != nil {
		m.Position = p
	}
}

func (c *Character) Velocity() f64.Vec2 {
	if m := c.motion(); m != nil {
		return m.Velocity
	}
	return f64.Vec2{}
}

func (c *Character) Axis() f64.Vec2 {
	if m := c.motion(); m != nil {
		return m.Axis
	}
	return f64.Vec2{}
}

// Facing returns the yaw in degrees.
func (c *Character) Facing() float64 {
	if m := c.motion(); m != nil {
		return m.Facing
	}
	return 0
}

// SetFacingDirection turns the character along dir.
func (c *Character) SetFacingDirection(dir f64.Vec2) {
	m := c.motion()
	if m == nil || pkgutils.IsZero(dir) {
		return
	}
	m.Facing = utils.NormalizeAngle(pkgutils.Heading(dir))
	m.TurnSmoothVelocity = 0
}

// FacingDirection returns the unit vector the character looks along.
func (c *Character) FacingDirection() f64.Vec2 {
	return yawDirection(c.Facing())
}

func (c *Character) SetMoveSpeedModifier(mod float64) {
	if m := c.motion(); m != nil {
		m.SpeedModifier = mod
	}
}

func (c *Character) MoveSpeedModifier() float64 {
	if m := c.motion(); m != nil {
		return m.SpeedModifier
	}
	return 0
}

// Loadout returns the character's attacks and dodge parameters.
func (c *Character) Loadout() component.Loadout {
	if l := c.loadout(); l != nil {
		return *l
	}
	return component.Loadout{}
}
