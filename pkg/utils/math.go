// pkg/utils/math.go
package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Add returns a+b.
func Add(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a-b.
func Sub(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] - b[0], a[1] - b[1]}
}

// Scale returns v*k.
func Scale(v f64.Vec2, k float64) f64.Vec2 {
	return f64.Vec2{v[0] * k, v[1] * k}
}

// Length returns the euclidean length of v.
func Length(v f64.Vec2) float64 {
	return math.Hypot(v[0], v[1])
}

// Distance returns |a-b|.
func Distance(a, b f64.Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v f64.Vec2) f64.Vec2 {
	l := Length(v)
	if l == 0 {
		return f64.Vec2{}
	}
	return f64.Vec2{v[0] / l, v[1] / l}
}

// ClampLength limits the length of v to max.
func ClampLength(v f64.Vec2, max float64) f64.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}

// Rotate turns v by deg degrees clockwise around the vertical axis
// (x to the right, y forward).
func Rotate(v f64.Vec2, deg float64) f64.Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return f64.Vec2{v[0]*cos + v[1]*sin, -v[0]*sin + v[1]*cos}
}

// Heading returns the yaw in degrees of a planar direction, 0 facing +y and
// 90 facing +x.
func Heading(v f64.Vec2) float64 {
	return math.Atan2(v[0], v[1]) * 180 / math.Pi
}

// IsZero reports whether both components are zero.
func IsZero(v f64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}
