package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/pkg/geom"
)

// polytope is a convex counter-clockwise ring of Minkowski difference
// vertices. Edge i runs from vertices[i] to vertices[(i+1)%n].
type polytope struct {
	vertices []mgl64.Vec2
}

// edge is a polytope edge with its outward unit normal and its distance from
// the origin along that normal.
type edge struct {
	index    int
	normal   mgl64.Vec2
	distance float64
}

func newPolytope() *polytope {
	return &polytope{vertices: make([]mgl64.Vec2, 0, 16)}
}

func resetPolytope(p *polytope) *polytope {
	p.vertices = p.vertices[:0]
	return p
}

// seed fills the ring from a terminal GJK simplex. A segment, or a triangle
// with no area, is grown into a triangle by probing along both normals of the
// segment. It reports false when the difference itself has no area.
func (p *polytope) seed(simplex *Simplex, md *MinkowskiDifference) bool {
	p.vertices = append(p.vertices[:0], simplex.Slice()...)

	if len(p.vertices) == 3 && math.Abs(signedArea(p.vertices)) > geom.Epsilon {
		p.makeCCW()
		return true
	}

	a, b := p.widestPair()
	ab := b.Sub(a)
	if geom.IsZero(ab) {
		return false
	}

	p.vertices = append(p.vertices[:0], a, b)
	for _, dir := range [2]mgl64.Vec2{geom.Left(ab), geom.Right(ab)} {
		c := md.Support(dir)
		if math.Abs(geom.Cross(ab, c.Sub(a))) > geom.Epsilon {
			p.vertices = append(p.vertices, c)
			p.makeCCW()
			return true
		}
	}

	return false
}

// widestPair returns the two vertices farthest apart.
func (p *polytope) widestPair() (mgl64.Vec2, mgl64.Vec2) {
	a, b := p.vertices[0], p.vertices[len(p.vertices)-1]
	best := b.Sub(a).LenSqr()
	for i := range p.vertices {
		for j := i + 1; j < len(p.vertices); j++ {
			if d := p.vertices[j].Sub(p.vertices[i]).LenSqr(); d > best {
				a, b, best = p.vertices[i], p.vertices[j], d
			}
		}
	}
	return a, b
}

func (p *polytope) makeCCW() {
	if signedArea(p.vertices) >= 0 {
		return
	}
	for i, j := 0, len(p.vertices)-1; i < j; i, j = i+1, j-1 {
		p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
	}
}

// closestEdge returns the edge whose supporting line is nearest the origin.
// Ties keep the lowest index.
func (p *polytope) closestEdge() edge {
	best := edge{distance: math.Inf(1)}
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		e := p.vertices[(i+1)%n].Sub(a)

		length := e.Len()
		if length == 0 {
			continue
		}

		normal := geom.Right(e).Mul(1 / length)
		distance := normal.Dot(a)
		if distance < best.distance {
			best = edge{index: i, normal: normal, distance: distance}
		}
	}
	return best
}

// insert places v between the endpoints of edge i.
func (p *polytope) insert(i int, v mgl64.Vec2) {
	at := i + 1
	p.vertices = append(p.vertices, mgl64.Vec2{})
	copy(p.vertices[at+1:], p.vertices[at:])
	p.vertices[at] = v
}

// signedArea returns twice the signed area; positive for counter-clockwise rings.
func signedArea(vertices []mgl64.Vec2) float64 {
	var area float64
	n := len(vertices)
	for i := range vertices {
		area += geom.Cross(vertices[i], vertices[(i+1)%n])
	}
	return area
}
