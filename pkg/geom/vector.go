// Package geom holds the 2D vector helpers and the rigid transform used by the
// shape and collision packages. Vectors are plain mgl64.Vec2 values.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the machine epsilon for float64.
const Epsilon = 2.220446049250313e-16

// Vec is shorthand for mgl64.Vec2{x, y}.
func Vec(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// TripleProduct returns b*dot(a, c) - a*dot(b, c), the 2D form of (a × b) × c.
//
// With (ab, ao, ab) it yields the component of ao perpendicular to ab, pointing
// toward the origin. With (ab, ac, ac) it yields the normal of ac pointing away
// from b.
func TripleProduct(a, b, c mgl64.Vec2) mgl64.Vec2 {
	ac := a.Dot(c)
	bc := b.Dot(c)
	return mgl64.Vec2{
		b[0]*ac - a[0]*bc,
		b[1]*ac - a[1]*bc,
	}
}

// Left returns the left-hand normal of v (v rotated +90°).
func Left(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// Right returns the right-hand normal of v (v rotated -90°).
func Right(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v[1], -v[0]}
}

// IsZero reports whether both components are exactly zero.
func IsZero(v mgl64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// Normalize returns the unit vector in the direction of v, or v itself when it
// has zero length. mgl64's Normalize divides by zero in that case.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// FindAngle returns the signed angle in radians that rotates a onto b, in (-π, π].
func FindAngle(a, b mgl64.Vec2) float64 {
	return math.Atan2(Cross(a, b), a.Dot(b))
}

// ApproxEqual reports whether a and b differ by at most eps in each component.
func ApproxEqual(a, b mgl64.Vec2, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps
}
