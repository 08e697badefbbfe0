package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
)

func TestNormalize(t *testing.T) {
	n := Normalize(f64.Vec2{3, 4})
	assert.InDelta(t, 0.6, n[0], 1e-9)
	assert.InDelta(t, 0.8, n[1], 1e-9)
	assert.Equal(t, f64.Vec2{}, Normalize(f64.Vec2{}))
}

func TestRotateAndHeading(t *testing.T) {
	r := Rotate(f64.Vec2{0, 1}, 90)
	assert.InDelta(t, 1.0, r[0], 1e-9)
	assert.InDelta(t, 0.0, r[1], 1e-9)
	assert.InDelta(t, 90.0, Heading(r), 1e-9)
	assert.InDelta(t, 0.0, Heading(f64.Vec2{0, 1}), 1e-9)
}

func TestClampLength(t *testing.T) {
	v := ClampLength(f64.Vec2{10, 0}, 2)
	assert.Equal(t, f64.Vec2{2, 0}, v)
	assert.Equal(t, f64.Vec2{1, 0}, ClampLength(f64.Vec2{1, 0}, 2))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(f64.Vec2{1, 1}, f64.Vec2{4, 5}), 1e-9)
}
