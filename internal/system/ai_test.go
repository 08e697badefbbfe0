package system

import (
	"testing"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

func TestEnemyTargetsByViewRange(t *testing.T) {
	w := newWorld(t)
	leader := w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{0, 0})
	near := w.spawn(t, imp(), defs.RoleMinion, f64.Vec2{0, 4})
	w.spawn(t, imp(), defs.RoleMinion, f64.Vec2{0, 20})
	foe := w.spawn(t, ghoul(), defs.RoleEnemy, f64.Vec2{0, 5})

	ai := NewEnemySystem(w.svc, w.party, utils.NewPRNGService(1))
	ai.Update(dt)

	assert.Equal(t, []donburi.Entity{near.Entity(), leader.Entity()}, enemyOf(t, w, foe).NearbyTargets)
	closest, ok := enemyOf(t, w, foe).ClosestTarget()
	require.True(t, ok)
	assert.Equal(t, near.Entity(), closest)
}

func TestEnemyChasesThenAttacks(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	foe := w.spawn(t, ghoul(), defs.RoleEnemy, f64.Vec2{0, 5})
	ai := NewEnemySystem(w.svc, w.party, utils.NewPRNGService(1))

	ai.Update(dt)
	assert.Equal(t, character.KindMove, foe.Kind())
	w.chars.FixedUpdate(dt)
	assert.Less(t, foe.Velocity()[1], 0.0)

	foe.SetPosition(f64.Vec2{0, 1})
	ai.Update(dt)
	assert.Equal(t, character.KindAttack, foe.Kind())
	assert.InDelta(t, 180, foe.Facing(), 1e-9)
}

func TestFrozenEnemyStaysIdle(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	foe := w.spawn(t, ghoul(), defs.RoleEnemy, f64.Vec2{0, 3})
	enemyOf(t, w, foe).Frozen = true

	NewEnemySystem(w.svc, w.party, utils.NewPRNGService(1)).Update(dt)
	assert.Equal(t, character.KindIdle, foe.Kind())
	assert.Empty(t, enemyOf(t, w, foe).NearbyTargets)
}

func TestEnemyWandersOutOfView(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	foe := w.spawn(t, ghoul(), defs.RoleEnemy, f64.Vec2{0, 50})

	NewEnemySystem(w.svc, w.party, utils.NewPRNGService(7)).Update(dt)
	en := enemyOf(t, w, foe)
	assert.Empty(t, en.NearbyTargets)
	assert.GreaterOrEqual(t, en.WanderTimer, 1.0)
	assert.LessOrEqual(t, en.WanderTimer, 3.0)
	if en.WanderDir == (f64.Vec2{}) {
		assert.Equal(t, character.KindIdle, foe.Kind())
	} else {
		assert.Equal(t, character.KindMove, foe.Kind())
	}
}

func TestEnemyWithoutWanderTimeStands(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	def := ghoul()
	def.Enemy = &defs.EnemyParams{}
	dummy := w.spawn(t, def, defs.RoleEnemy, f64.Vec2{0, 1})

	NewEnemySystem(w.svc, w.party, utils.NewPRNGService(1)).Update(dt)
	assert.Equal(t, character.KindIdle, dummy.Kind())
}

func TestMinionFollowsFormation(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	m := w.spawn(t, imp(), defs.RoleMinion, f64.Vec2{5, -5})
	follow := NewFollowSystem(w.svc, w.party)

	follow.Update(dt)
	require.Equal(t, character.KindMove, m.Kind())
	w.chars.FixedUpdate(dt)
	assert.Less(t, m.Velocity()[0], 0.0)
	assert.Greater(t, m.Velocity()[1], 0.0)

	m.SetPosition(f64.Vec2{0.75, -1.5})
	follow.Update(dt)
	assert.Equal(t, character.KindIdle, m.Kind())
}

func TestMinionAttacksAdjacentEnemy(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, warlock(), defs.RoleLeader, f64.Vec2{})
	m := w.spawn(t, imp(), defs.RoleMinion, f64.Vec2{4, 0})
	w.spawn(t, ghoul(), defs.RoleEnemy, f64.Vec2{5, 0})

	NewFollowSystem(w.svc, w.party).Update(dt)
	assert.Equal(t, character.KindAttack, m.Kind())
	assert.InDelta(t, 90, m.Facing(), 1e-9)
}
