package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/pkg/geom"
)

// MinkowskiDifference is the support mapping of A - B. The difference shape is
// never built; every Support call queries both shapes again.
type MinkowskiDifference struct {
	a, b   shape.Convex
	ta, tb geom.Transform
}

func NewMinkowskiDifference(a shape.Convex, ta geom.Transform, b shape.Convex, tb geom.Transform) MinkowskiDifference {
	return MinkowskiDifference{a: a, b: b, ta: ta, tb: tb}
}

// Support returns farthest(A, d) - farthest(B, -d).
func (m *MinkowskiDifference) Support(direction mgl64.Vec2) mgl64.Vec2 {
	pa := m.a.FarthestPoint(direction, m.ta)
	pb := m.b.FarthestPoint(direction.Mul(-1), m.tb)
	return pa.Sub(pb)
}

// initialDirection points from A's world center to B's, or along +x when the
// centers coincide.
func (m *MinkowskiDifference) initialDirection() mgl64.Vec2 {
	ca := m.ta.Transform(m.a.Center())
	cb := m.tb.Transform(m.b.Center())
	d := cb.Sub(ca)
	if geom.IsZero(d) {
		return mgl64.Vec2{1, 0}
	}
	return d
}
