package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

type tag struct{ N int }

var tagComponent = donburi.NewComponentType[tag]()

func TestQueuedRemovalHappensOnFlush(t *testing.T) {
	ecs := NewECS()
	entry := ecs.NewEntity(tagComponent)
	e := entry.Entity()

	ecs.QueueRemoval(e)
	ecs.QueueRemoval(e)
	assert.True(t, ecs.Valid(e))
	assert.True(t, ecs.IsQueued(e))

	assert.Equal(t, 1, ecs.Flush())
	assert.False(t, ecs.Valid(e))
	assert.False(t, ecs.IsQueued(e))

	_, ok := ecs.Entry(e)
	assert.False(t, ok)
	assert.Equal(t, 0, ecs.Flush())
}

func TestEntryOfNullIsMissing(t *testing.T) {
	ecs := NewECS()
	_, ok := ecs.Entry(donburi.Null)
	assert.False(t, ok)
}
