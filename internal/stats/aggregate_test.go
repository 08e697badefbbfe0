package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBuffs() []*Buff {
	return []*Buff{
		{ID: "vigor", MaxHealthBuff: 10},
		{ID: "iron", DefenseBuff: 2, MaxHealthBuff: 3},
		{ID: "haste", MovementSpeedBuff: 1.5},
		{ID: "double", MeleeAttackBuff: 3, RangedAttackBuff: 1, Multiplier: 2},
		{ID: "half", MaxHealthBuff: 5, Multiplier: 0.5},
	}
}

func TestAggregateSumsEveryComponent(t *testing.T) {
	base := Base{Health: 5, Defense: 1, MoveSpeed: 4, MeleeAffinity: 2, RangedAffinity: 0}

	got := Aggregate(base, testBuffs())

	assert.Equal(t, 5+10+3+2, got.MaxHealth) // 5*0.5 truncates to 2
	assert.Equal(t, 3, got.Defense)
	assert.InDelta(t, 5.5, got.MoveSpeed, 1e-9)
	assert.Equal(t, 2+6, got.MeleeAffinity)
	assert.Equal(t, 2, got.RangedAffinity)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	base := Base{Health: 20, MoveSpeed: 3}
	buffs := testBuffs()
	want := Aggregate(base, buffs)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := append([]*Buff(nil), buffs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Aggregate(base, shuffled))
	}
}

func TestAggregateEmptyListReturnsBase(t *testing.T) {
	base := Base{Health: 7, Defense: 2, MoveSpeed: 1, MeleeAffinity: 3, RangedAffinity: 4}
	got := Aggregate(base, nil)
	assert.Equal(t, Derived{MaxHealth: 7, Defense: 2, MoveSpeed: 1, MeleeAffinity: 3, RangedAffinity: 4}, got)
}

func TestAggregateSkipsNilEntries(t *testing.T) {
	got := MaxHealth(Base{Health: 1}, []*Buff{nil, {MaxHealthBuff: 4}})
	assert.Equal(t, 5, got)
}

func TestGetMultiplierDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1.0, (&Buff{}).GetMultiplier())
	assert.Equal(t, 3.0, (&Buff{Multiplier: 3}).GetMultiplier())
	assert.True(t, (&Buff{Multiplier: 2}).IsEmpty())
	assert.False(t, (&Buff{DefenseBuff: 1}).IsEmpty())
}
