package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/pkg/geom"
)

// Polygon is a convex polygon with counter-clockwise vertices in local space.
type Polygon struct {
	kind     Kind
	vertices []mgl64.Vec2
	center   mgl64.Vec2
}

// NewPolygon validates points and returns a polygon centered on its
// area-weighted centroid.
func NewPolygon(points ...mgl64.Vec2) (*Polygon, error) {
	return newPolygon(KindPolygon, points)
}

// NewTriangle returns a three-vertex polygon.
func NewTriangle(p1, p2, p3 mgl64.Vec2) (*Polygon, error) {
	return newPolygon(KindTriangle, []mgl64.Vec2{p1, p2, p3})
}

// NewRectangle returns an axis-aligned width×height rectangle centered on the
// local origin.
func NewRectangle(width, height float64) (*Polygon, error) {
	if !finite(width) || !finite(height) {
		return nil, fmt.Errorf("%w: rectangle %gx%g", ErrNonFinite, width, height)
	}
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: rectangle %gx%g", ErrNonPositiveDimension, width, height)
	}

	hw, hh := width*0.5, height*0.5
	vertices := []mgl64.Vec2{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}

	return &Polygon{
		kind:     KindRectangle,
		vertices: vertices,
	}, nil
}

// MustPolygon is like NewPolygon but panics on invalid input.
func MustPolygon(points ...mgl64.Vec2) *Polygon {
	p, err := NewPolygon(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// MustTriangle is like NewTriangle but panics on invalid input.
func MustTriangle(p1, p2, p3 mgl64.Vec2) *Polygon {
	p, err := NewTriangle(p1, p2, p3)
	if err != nil {
		panic(err)
	}
	return p
}

// MustRectangle is like NewRectangle but panics on invalid input.
func MustRectangle(width, height float64) *Polygon {
	p, err := NewRectangle(width, height)
	if err != nil {
		panic(err)
	}
	return p
}

func newPolygon(kind Kind, points []mgl64.Vec2) (*Polygon, error) {
	if err := validate(points); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", strings.ToLower(kind.String()), err)
	}

	vertices := make([]mgl64.Vec2, len(points))
	copy(vertices, points)

	return &Polygon{
		kind:     kind,
		vertices: vertices,
		center:   areaWeightedCenter(vertices),
	}, nil
}

// Kind returns the factory that produced the polygon.
func (p *Polygon) Kind() Kind {
	return p.kind
}

// Center returns the local center.
func (p *Polygon) Center() mgl64.Vec2 {
	return p.center
}

// Vertices returns a copy of the local-space vertices.
func (p *Polygon) Vertices() []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// FarthestPoint scans the vertices in local space. On equal projections the
// first vertex wins.
func (p *Polygon) FarthestPoint(direction mgl64.Vec2, t geom.Transform) mgl64.Vec2 {
	local := t.InverseTransformDirection(direction)

	point := p.vertices[0]
	best := local.Dot(point)
	for _, v := range p.vertices[1:] {
		if projection := local.Dot(v); projection > best {
			point = v
			best = projection
		}
	}

	return t.Transform(point)
}

func (p *Polygon) String() string {
	var sb strings.Builder
	sb.WriteString("Polygon [")
	sb.WriteString(p.kind.String())
	sb.WriteString("] - vertices=[")
	for i, v := range p.vertices {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%g, %g)", v[0], v[1])
	}
	fmt.Fprintf(&sb, "], center=(%g, %g)", p.center[0], p.center[1])
	return sb.String()
}

// convexityTolerance is the relative slack allowed when a vertex lies just
// right of an edge's supporting line.
const convexityTolerance = 1e-9

// validate checks finiteness, vertex count, coincident neighbours, convexity
// and CCW winding. Collinear vertices are allowed.
func validate(points []mgl64.Vec2) error {
	n := len(points)
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}

	for i, p := range points {
		if !finite(p[0]) || !finite(p[1]) {
			return fmt.Errorf("%w: vertex %d is (%g, %g)", ErrNonFinite, i, p[0], p[1])
		}
	}

	var area, sign float64
	for i := range points {
		p0 := points[(i+n-1)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]

		if p1 == p2 {
			return fmt.Errorf("%w: index %d", ErrCoincidentVertices, i)
		}

		cross := geom.Cross(p1.Sub(p0), p2.Sub(p1))
		area += cross

		if math.Abs(cross) <= geom.Epsilon {
			continue
		}
		turn := math.Copysign(1, cross)
		if sign != 0 && turn != sign {
			return fmt.Errorf("%w: reflex vertex at index %d", ErrNotConvex, i)
		}
		sign = turn
	}

	if math.Abs(area) <= geom.Epsilon {
		return ErrDegenerateArea
	}
	if area < 0 {
		return ErrClockwiseWinding
	}

	// Equal turn signs still admit star polygons that wind twice; every
	// vertex must lie on or left of every edge.
	for i := range points {
		p1 := points[i]
		edge := points[(i+1)%n].Sub(p1)
		for j, v := range points {
			d := v.Sub(p1)
			if geom.Cross(edge, d) < -convexityTolerance*edge.Len()*d.Len() {
				return fmt.Errorf("%w: vertex %d is right of edge %d", ErrNotConvex, j, i)
			}
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// areaWeightedCenter returns the centroid of the polygon's area. Vertices are
// shifted to their average first to keep the products small.
func areaWeightedCenter(points []mgl64.Vec2) mgl64.Vec2 {
	n := len(points)

	var avg mgl64.Vec2
	for _, p := range points {
		avg = avg.Add(p)
	}
	avg = avg.Mul(1 / float64(n))

	var center mgl64.Vec2
	var area float64
	for i := range points {
		p1 := points[i].Sub(avg)
		p2 := points[(i+1)%n].Sub(avg)

		triangleArea := 0.5 * geom.Cross(p1, p2)
		area += triangleArea
		center = center.Add(p1.Add(p2).Mul(triangleArea / 3))
	}

	if math.Abs(area) <= geom.Epsilon {
		return points[0]
	}

	return center.Mul(1 / area).Add(avg)
}
