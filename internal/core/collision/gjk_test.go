package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/pkg/geom"
)

func simplexOf(points ...mgl64.Vec2) *Simplex {
	var s Simplex
	for _, p := range points {
		s.push(p)
	}
	return &s
}

func TestCheckSimplex_Segment(t *testing.T) {
	t.Run("DirectionTowardOrigin", func(t *testing.T) {
		s := simplexOf(geom.Vec(-1, 1), geom.Vec(1, 1))
		var d mgl64.Vec2

		require.False(t, checkSimplex(s, &d))
		require.Equal(t, 2, s.Count)
		require.InDelta(t, 0, d[0], 1e-12)
		require.Less(t, d[1], 0.0)
	})

	t.Run("OriginOnSegment", func(t *testing.T) {
		s := simplexOf(geom.Vec(-2, 0), geom.Vec(3, 0))
		var d mgl64.Vec2

		require.False(t, checkSimplex(s, &d))
		require.Equal(t, geom.Left(geom.Vec(-5, 0)), d)
	})
}

func TestCheckSimplex_Triangle(t *testing.T) {
	t.Run("ContainsOrigin", func(t *testing.T) {
		s := simplexOf(geom.Vec(-1, -1), geom.Vec(1, -1), geom.Vec(0, 2))
		var d mgl64.Vec2

		require.True(t, checkSimplex(s, &d))
		require.Equal(t, 3, s.Count)
	})

	t.Run("OriginBeyondAC", func(t *testing.T) {
		c, b, a := geom.Vec(1, 1), geom.Vec(3, 1), geom.Vec(2, -1)
		s := simplexOf(c, b, a)
		var d mgl64.Vec2

		require.False(t, checkSimplex(s, &d))
		require.Equal(t, []mgl64.Vec2{c, a}, s.Slice())
		require.Greater(t, d.Dot(a.Mul(-1)), 0.0)
		require.InDelta(t, 0, d.Dot(c.Sub(a)), 1e-12)
	})

	t.Run("OriginBeyondAB", func(t *testing.T) {
		c, b, a := geom.Vec(3, 1), geom.Vec(1, 1), geom.Vec(2, -1)
		s := simplexOf(c, b, a)
		var d mgl64.Vec2

		require.False(t, checkSimplex(s, &d))
		require.Equal(t, []mgl64.Vec2{b, a}, s.Slice())
		require.Greater(t, d.Dot(a.Mul(-1)), 0.0)
		require.InDelta(t, 0, d.Dot(b.Sub(a)), 1e-12)
	})
}

func TestSimplex_RemoveAtKeepsOrder(t *testing.T) {
	s := simplexOf(geom.Vec(1, 0), geom.Vec(2, 0), geom.Vec(3, 0))
	s.removeAt(0)
	require.Equal(t, []mgl64.Vec2{geom.Vec(2, 0), geom.Vec(3, 0)}, s.Slice())
	require.Equal(t, geom.Vec(3, 0), s.last())

	s.Reset()
	require.Empty(t, s.Slice())
}

func TestIntersect_CapReported(t *testing.T) {
	box := shape.MustRectangle(2, 2)
	md := NewMinkowskiDifference(box, geom.Identity(), box, translated(0.5, 0.5))

	var s Simplex
	hit, capped := intersect(&md, &s, md.initialDirection(), 1)
	require.False(t, hit)
	require.True(t, capped)

	hit, capped = intersect(&md, &s, md.initialDirection(), DefaultMaxGJKIterations)
	require.True(t, hit)
	require.False(t, capped)
	require.Equal(t, 3, s.Count)
}

func TestPolytope_ClosestEdge(t *testing.T) {
	p := newPolytope()
	p.vertices = append(p.vertices, geom.Vec(-1, -2), geom.Vec(3, -2), geom.Vec(3, 1), geom.Vec(-1, 1))

	e := p.closestEdge()
	require.Equal(t, 2, e.index)
	require.Equal(t, geom.Vec(0, 1), e.normal)
	require.InDelta(t, 1, e.distance, 1e-12)

	p.insert(e.index, geom.Vec(1, 2))
	require.Equal(t, []mgl64.Vec2{
		geom.Vec(-1, -2), geom.Vec(3, -2), geom.Vec(3, 1), geom.Vec(1, 2), geom.Vec(-1, 1),
	}, p.vertices)
	require.Greater(t, signedArea(p.vertices), 0.0)
}

func TestPolytope_SeedWinding(t *testing.T) {
	box := shape.MustRectangle(2, 2)
	md := NewMinkowskiDifference(box, geom.Identity(), box, geom.Identity())

	p := newPolytope()
	cw := simplexOf(geom.Vec(0, 1), geom.Vec(1, -1), geom.Vec(-1, -1))
	require.True(t, p.seed(cw, &md))
	require.Greater(t, signedArea(p.vertices), 0.0)

	segment := simplexOf(geom.Vec(-2, 0), geom.Vec(2, 0))
	require.True(t, p.seed(segment, &md))
	require.Len(t, p.vertices, 3)
	require.Greater(t, signedArea(p.vertices), 0.0)
}

func TestPolytope_SeedDegenerate(t *testing.T) {
	box := shape.MustRectangle(2, 2)
	md := NewMinkowskiDifference(box, geom.Identity(), box, geom.Identity())

	p := newPolytope()
	require.False(t, p.seed(simplexOf(geom.Vec(0, 0), geom.Vec(0, 0)), &md))
}

func TestEPASolver_ConvergesOnBoxes(t *testing.T) {
	box := shape.MustRectangle(2, 2)
	md := NewMinkowskiDifference(box, geom.Identity(), box, translated(1.5, 0.25))

	var s Simplex
	hit, _ := intersect(&md, &s, md.initialDirection(), DefaultMaxGJKIterations)
	require.True(t, hit)

	solver := NewEPASolver(DefaultMaxEPAIterations, DefaultEPATolerance)
	var p Penetration
	result := solver.FindPenetration(&s, &md, &p)

	require.True(t, result.Converged)
	require.False(t, result.Degenerate)
	require.Positive(t, result.Iterations)
	require.InDelta(t, 0.5, p.Depth, 1e-9)
	require.InDelta(t, 1, p.Normal[0], 1e-9)
}

func TestPenetration_Vector(t *testing.T) {
	p := Penetration{Normal: geom.Vec(0, -1), Depth: 2.5}
	require.Equal(t, geom.Vec(0, -2.5), p.Vector())
	require.Equal(t, "Penetration{normal=(0, -1), depth=2.5}", p.String())
}
