package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/internal/core/observability/log"
	"github.com/zeusync/narrowphase/pkg/geom"
)

// intersect runs GJK over md starting from direction. On success the simplex
// is a triangle enclosing the origin. The second result reports whether the
// iteration cap was hit.
func intersect(md *MinkowskiDifference, simplex *Simplex, direction mgl64.Vec2, maxIterations int) (bool, bool) {
	simplex.Reset()

	if geom.IsZero(direction) {
		direction = mgl64.Vec2{1, 0}
	}

	simplex.push(md.Support(direction))
	if simplex.last().Dot(direction) <= 0 {
		return false, false
	}

	direction = direction.Mul(-1)

	for i := 0; i < maxIterations; i++ {
		simplex.push(md.Support(direction))

		// The new point did not pass the origin, so the origin is outside the
		// difference. A point exactly on the origin counts as touching only.
		if simplex.last().Dot(direction) <= 0 {
			return false, false
		}

		if checkSimplex(simplex, &direction) {
			return true, false
		}
	}

	return false, true
}

// checkSimplex reports whether the simplex contains the origin. When it does
// not, it drops the point farthest from the origin's region and updates the
// search direction. The simplex must hold 2 or 3 points.
func checkSimplex(simplex *Simplex, direction *mgl64.Vec2) bool {
	a := simplex.last()
	ao := a.Mul(-1)

	if simplex.Count == 3 {
		b := simplex.Points[1]
		c := simplex.Points[0]

		ab := b.Sub(a)
		ac := c.Sub(a)

		// edge normals pointing away from the opposite vertex
		abPerp := geom.TripleProduct(ac, ab, ab)
		acPerp := geom.TripleProduct(ab, ac, ac)

		if acPerp.Dot(ao) >= 0 {
			// origin beyond A-C: drop B
			simplex.removeAt(1)
			*direction = acPerp
			return false
		}

		if abPerp.Dot(ao) < 0 {
			return true
		}

		// origin beyond A-B: drop C
		simplex.removeAt(0)
		*direction = abPerp
		return false
	}

	b := simplex.Points[0]
	ab := b.Sub(a)

	*direction = geom.TripleProduct(ab, ao, ab)

	// origin on the segment: any normal will do, take the left one
	if direction.LenSqr() <= geom.Epsilon {
		*direction = geom.Left(ab)
	}

	return false
}

func logGJKCap(logger log.Log, maxIterations int, simplex *Simplex) {
	logger.Warn("gjk iteration cap reached, reporting no intersection",
		log.Int("max_iterations", maxIterations),
		log.Int("simplex_size", simplex.Count),
		log.Vec2("last_point", simplex.last()))
}
