// Package collision implements narrow-phase collision detection between convex
// 2D shapes: a GJK intersection test over the Minkowski difference and an EPA
// solver for the penetration vector.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/internal/core/observability/log"
	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/pkg/geom"
)

// Detector answers overlap and penetration queries for pairs of convex shapes.
//
// A Detector holds configuration and diagnostic counters only. Every query
// allocates its own simplex and borrows its own polytope, so a Detector is safe
// for concurrent use and results depend on the inputs alone.
type Detector struct {
	options Options
	solver  *EPASolver
	logger  log.Log
	stats   counters
}

// NewDetector creates a Detector; see DefaultOptions for the defaults.
func NewDetector(opts ...Option) *Detector {
	options := buildOptions(opts...)
	return &Detector{
		options: options,
		solver:  NewEPASolver(options.MaxEPAIterations, options.EPATolerance),
		logger:  options.Logger.With(log.String("component", "collision")),
	}
}

// Options returns the effective configuration.
func (d *Detector) Options() Options {
	return d.options
}

// Stats returns a snapshot of the query counters.
func (d *Detector) Stats() Stats {
	return d.stats.snapshot()
}

// Detect reports whether a placed by ta and b placed by tb overlap. Shapes that
// only touch do not overlap.
func (d *Detector) Detect(a shape.Convex, ta geom.Transform, b shape.Convex, tb geom.Transform) bool {
	d.stats.queries.Add(1)

	if ca, cb, ok := d.circles(a, b); ok {
		hit := circlesOverlap(ca, ta, cb, tb, nil)
		d.countHit(hit)
		return hit
	}

	var simplex Simplex
	md := NewMinkowskiDifference(a, ta, b, tb)
	hit := d.intersect(&md, &simplex)
	d.countHit(hit)
	return hit
}

// DetectPenetration is Detect that also fills p with the separation vector when
// the shapes overlap. p is left untouched otherwise.
func (d *Detector) DetectPenetration(a shape.Convex, ta geom.Transform, b shape.Convex, tb geom.Transform, p *Penetration) bool {
	d.stats.queries.Add(1)

	if ca, cb, ok := d.circles(a, b); ok {
		hit := circlesOverlap(ca, ta, cb, tb, p)
		d.countHit(hit)
		if hit {
			d.stats.penetrations.Add(1)
		}
		return hit
	}

	var simplex Simplex
	md := NewMinkowskiDifference(a, ta, b, tb)
	if !d.intersect(&md, &simplex) {
		return false
	}
	d.countHit(true)

	result := d.solver.FindPenetration(&simplex, &md, p)
	d.stats.penetrations.Add(1)

	switch {
	case result.Degenerate:
		d.logger.Debug("degenerate minkowski difference", log.Vec2("normal", p.Normal))
	case !result.Converged:
		d.stats.epaCapHits.Add(1)
		logEPACap(d.logger, d.options.MaxEPAIterations, p)
	}

	return true
}

func (d *Detector) intersect(md *MinkowskiDifference, simplex *Simplex) bool {
	hit, capped := intersect(md, simplex, md.initialDirection(), d.options.MaxGJKIterations)
	if capped {
		d.stats.gjkCapHits.Add(1)
		logGJKCap(d.logger, d.options.MaxGJKIterations, simplex)
	}
	return hit
}

func (d *Detector) countHit(hit bool) {
	if hit {
		d.stats.intersections.Add(1)
	}
}

func (d *Detector) circles(a, b shape.Convex) (*shape.Circle, *shape.Circle, bool) {
	if !d.options.CircleFastPath {
		return nil, nil, false
	}
	ca, okA := a.(*shape.Circle)
	cb, okB := b.(*shape.Circle)
	if !okA || !okB {
		return nil, nil, false
	}
	d.stats.circleFast.Add(1)
	return ca, cb, true
}

// circlesOverlap is the analytic circle-circle test. Touching circles do not
// overlap, matching GJK. p may be nil.
func circlesOverlap(a *shape.Circle, ta geom.Transform, b *shape.Circle, tb geom.Transform, p *Penetration) bool {
	delta := tb.Transform(b.Center()).Sub(ta.Transform(a.Center()))
	radii := a.Radius() + b.Radius()

	distSq := delta.LenSqr()
	if distSq >= radii*radii {
		return false
	}

	if p != nil {
		dist := math.Sqrt(distSq)
		if dist == 0 {
			p.Normal = mgl64.Vec2{1, 0}
		} else {
			p.Normal = delta.Mul(1 / dist)
		}
		p.Depth = radii - dist
	}

	return true
}
