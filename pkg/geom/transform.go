package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid 2D transform: a rotation followed by a translation.
//
// The zero value is the identity. Mutating methods use a pointer receiver; the
// mapping methods are safe to call concurrently on a shared value.
type Transform struct {
	angle       float64
	rotation    mgl64.Mat2
	translation mgl64.Vec2
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{rotation: mgl64.Ident2()}
}

// NewTransform returns a transform rotated by angle radians and translated by (x, y).
func NewTransform(x, y, angle float64) Transform {
	return Transform{
		angle:       angle,
		rotation:    mgl64.Rotate2D(angle),
		translation: mgl64.Vec2{x, y},
	}
}

// Translate moves the transform by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.translation = t.translation.Add(mgl64.Vec2{dx, dy})
}

// Rotate adds theta radians to the rotation. The translation is unchanged.
func (t *Transform) Rotate(theta float64) {
	t.angle += theta
	t.rotation = mgl64.Rotate2D(t.angle)
}

// RotateAbout rotates the whole frame by theta radians about the world point p.
func (t *Transform) RotateAbout(theta float64, p mgl64.Vec2) {
	offset := mgl64.Rotate2D(theta).Mul2x1(t.translation.Sub(p))
	t.translation = p.Add(offset)
	t.Rotate(theta)
}

// Angle returns the accumulated rotation in radians.
func (t Transform) Angle() float64 {
	return t.angle
}

// Translation returns the translation component.
func (t Transform) Translation() mgl64.Vec2 {
	return t.translation
}

// Transform maps a local point to world space.
func (t Transform) Transform(p mgl64.Vec2) mgl64.Vec2 {
	return t.rot().Mul2x1(p).Add(t.translation)
}

// TransformDirection rotates a local direction into world space. Directions
// carry no position, so the translation is not applied.
func (t Transform) TransformDirection(d mgl64.Vec2) mgl64.Vec2 {
	return t.rot().Mul2x1(d)
}

// InverseTransform maps a world point into the local frame.
func (t Transform) InverseTransform(p mgl64.Vec2) mgl64.Vec2 {
	return t.rot().Transpose().Mul2x1(p.Sub(t.translation))
}

// InverseTransformDirection rotates a world direction into the local frame.
func (t Transform) InverseTransformDirection(d mgl64.Vec2) mgl64.Vec2 {
	return t.rot().Transpose().Mul2x1(d)
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform{angle=%.6f, translation=(%.6f, %.6f)}",
		t.angle, t.translation[0], t.translation[1])
}

// rot returns the rotation matrix; a zero matrix only occurs for the zero value.
func (t Transform) rot() mgl64.Mat2 {
	if t.rotation == (mgl64.Mat2{}) {
		return mgl64.Ident2()
	}
	return t.rotation
}
