package system

import (
	"testing"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/party"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

const dt = 0.05

var (
	claw = &defs.AttackDefinition{
		ID: "claw", Kind: defs.AttackMelee,
		Startup: 0.1, ActiveUntil: 0.3, Total: 0.5,
		Damage: 2, Range: 1, Reach: 1,
	}
	bolt = &defs.AttackDefinition{
		ID: "bolt", Kind: defs.AttackRanged,
		Startup: 0.1, ActiveUntil: 0.2, Total: 0.4,
		Damage: 1, Range: 1, Reach: 4, CanMove: true,
	}
)

func warlock() *defs.CharacterDefinition {
	return &defs.CharacterDefinition{
		ID: "warlock", Name: "Warlock", Tribe: defs.TribeNeutral,
		BaseHealth: 10, MoveSpeed: 5,
		BaseMeleeAffinity: 1, BaseRangedAffinity: 1,
		MeleeAttack: claw, RangedAttack: bolt,
		Dodge:          defs.DodgeParams{Duration: 0.3, SpeedMultiplier: 2, InvulDuration: 0.2},
		IFrameDuration: 0.5, IFrameFlickerRate: 0.1,
		InteractRadius: 2,
	}
}

func ghoul() *defs.CharacterDefinition {
	return &defs.CharacterDefinition{
		ID: "ghoul", Name: "Ghoul", Tribe: defs.TribeUndead,
		BaseHealth: 10, MoveSpeed: 3, MeleeAttack: claw,
		IFrameDuration: 0.4, IFrameFlickerRate: 0.1,
		Enemy: &defs.EnemyParams{ViewRange: 8, AttackingRange: 1.5, MinWanderTime: 1, MaxWanderTime: 3},
	}
}

func imp() *defs.CharacterDefinition {
	return &defs.CharacterDefinition{
		ID: "imp", Name: "Imp", Tribe: defs.TribeDemon,
		BaseHealth: 5, MoveSpeed: 5, MeleeAttack: claw,
	}
}

type eventLog struct{ events []event.Event }

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

type world struct {
	ecs        *entity.ECS
	events     *event.Dispatcher
	svc        *character.Services
	party      *party.Party
	chars      *CharacterSystem
	movement   *MovementSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ecs := entity.NewECS()
	events := event.NewDispatcher()
	svc := character.NewServices(ecs, events)
	w := &world{
		ecs:        ecs,
		events:     events,
		svc:        svc,
		party:      party.New(svc),
		chars:      NewCharacterSystem(svc),
		movement:   NewMovementSystem(ecs),
		combat:     NewCombatSystem(svc),
		projectile: NewProjectileSystem(svc),
	}
	svc.Hitboxes = w.combat
	t.Cleanup(w.party.Close)
	return w
}

func (w *world) spawn(t *testing.T, def *defs.CharacterDefinition, role defs.Role, pos f64.Vec2) *character.Character {
	t.Helper()
	c, err := character.Spawn(w.svc, def, role, pos)
	require.NoError(t, err)
	switch role {
	case defs.RoleLeader:
		w.party.SetLeader(c)
	case defs.RoleMinion:
		w.party.AddMinion(c)
	}
	return c
}

// tick runs one frame in the host order: logic, then the fixed step.
func (w *world) tick() {
	w.chars.Update(dt)
	w.chars.FixedUpdate(dt)
	w.movement.Update(dt)
	w.projectile.Update(dt)
	w.combat.Update(dt)
}

func count(w *world, q *donburi.Query) int {
	return q.Count(w.ecs.World)
}

func enemyOf(t *testing.T, w *world, c *character.Character) *component.Enemy {
	t.Helper()
	entry, ok := w.ecs.Entry(c.Entity())
	require.True(t, ok)
	return component.EnemyComponent.Get(entry)
}
