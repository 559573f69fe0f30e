package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/pkg/geom"
)

// Circle is a disc of the given radius around a local center.
type Circle struct {
	center mgl64.Vec2
	radius float64
}

// NewCircle returns a circle centered on the local origin.
func NewCircle(radius float64) (*Circle, error) {
	return NewCircleAt(mgl64.Vec2{}, radius)
}

// NewCircleAt returns a circle centered on a local point.
func NewCircleAt(center mgl64.Vec2, radius float64) (*Circle, error) {
	if !finite(radius) || !finite(center[0]) || !finite(center[1]) {
		return nil, fmt.Errorf("%w: circle center (%g, %g), radius %g", ErrNonFinite, center[0], center[1], radius)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: circle radius %g", ErrNonPositiveDimension, radius)
	}
	return &Circle{center: center, radius: radius}, nil
}

// MustCircle is like NewCircle but panics on invalid input.
func MustCircle(radius float64) *Circle {
	c, err := NewCircle(radius)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Circle) Kind() Kind { return KindCircle }

// Center returns the local center.
func (c *Circle) Center() mgl64.Vec2 { return c.center }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// FarthestPoint is analytic: center + radius * unit(direction) in local space.
func (c *Circle) FarthestPoint(direction mgl64.Vec2, t geom.Transform) mgl64.Vec2 {
	local := geom.Normalize(t.InverseTransformDirection(direction))
	return t.Transform(c.center.Add(local.Mul(c.radius)))
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle - center=(%g, %g), radius=%g", c.center[0], c.center[1], c.radius)
}
