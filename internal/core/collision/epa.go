package collision

import (
	"math"

	"github.com/zeusync/narrowphase/internal/core/observability/log"
	"github.com/zeusync/narrowphase/pkg/generic"
	"github.com/zeusync/narrowphase/pkg/geom"
)

// EPASolver expands a GJK terminal simplex into the boundary of the Minkowski
// difference nearest the origin. It only holds configuration; the working
// polytope of each call comes from a pool, so one solver may serve concurrent
// callers.
type EPASolver struct {
	maxIterations int
	tolerance     float64
	polytopes     *generic.Pool[*polytope]
}

func NewEPASolver(maxIterations int, tolerance float64) *EPASolver {
	return &EPASolver{
		maxIterations: maxIterations,
		tolerance:     tolerance,
		polytopes:     generic.NewResetPool(newPolytope, resetPolytope),
	}
}

// EPAResult describes how a FindPenetration call ended.
type EPAResult struct {
	Iterations int
	Converged  bool
	// Degenerate is set when the difference has no area; Depth is then zero.
	Degenerate bool
}

// FindPenetration fills p from a simplex that encloses the origin. When the
// iteration cap is hit, the closest edge of the last expansion is used.
func (s *EPASolver) FindPenetration(simplex *Simplex, md *MinkowskiDifference, p *Penetration) EPAResult {
	poly := s.polytopes.Get()
	defer s.polytopes.Put(poly)

	if !poly.seed(simplex, md) {
		// zero-area difference: the shapes only touch along a line
		p.Normal = geom.Normalize(md.initialDirection())
		p.Depth = 0
		return EPAResult{Degenerate: true}
	}

	var best edge
	for i := 0; i < s.maxIterations; i++ {
		best = poly.closestEdge()

		support := md.Support(best.normal)
		projection := support.Dot(best.normal)
		if projection-best.distance < s.tolerance {
			setPenetration(p, best)
			return EPAResult{Iterations: i + 1, Converged: true}
		}

		poly.insert(best.index, support)
	}

	setPenetration(p, best)
	return EPAResult{Iterations: s.maxIterations}
}

func setPenetration(p *Penetration, e edge) {
	p.Normal = e.normal
	p.Depth = math.Max(0, e.distance)
}

func logEPACap(logger log.Log, maxIterations int, p *Penetration) {
	logger.Warn("epa iteration cap reached, using closest edge so far",
		log.Int("max_iterations", maxIterations),
		log.Vec2("normal", p.Normal),
		log.Float64("depth", p.Depth))
}
