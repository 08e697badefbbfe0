package utils

import (
	"testing"

	"go-dungeon-arpg/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(42)

	assert.Empty(t, rng.ChooseWeighted(nil))
	assert.Equal(t, "a", rng.ChooseWeighted([]defs.LootEntry{{ArtifactID: "a"}, {ArtifactID: "b"}}))

	only := []defs.LootEntry{{ArtifactID: "never", Weight: 0}, {ArtifactID: "always", Weight: 3}}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "always", rng.ChooseWeighted(only))
	}

	seen := map[string]int{}
	mixed := []defs.LootEntry{{ArtifactID: "a", Weight: 1}, {ArtifactID: "b", Weight: 1}}
	for i := 0; i < 200; i++ {
		seen[rng.ChooseWeighted(mixed)]++
	}
	assert.Positive(t, seen["a"])
	assert.Positive(t, seen["b"])
}

func TestRangeAndDirection(t *testing.T) {
	rng := NewPRNGService(1)
	assert.Equal(t, 2.0, rng.Range(2, 1))
	for i := 0; i < 20; i++ {
		v := rng.Range(1, 3)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 3.0)
		d := rng.Direction()
		assert.InDelta(t, 1.0, d[0]*d[0]+d[1]*d[1], 1e-9)
	}
}
