package scene

import (
	"context"
	"time"

	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/observability/log"
	"github.com/zeusync/narrowphase/pkg/concurrent"
)

// Runner tests every pair of a scene's bodies. There is no broad phase: a
// scene of n bodies costs n(n-1)/2 narrow-phase queries.
type Runner struct {
	workers     int
	penetration bool
	options     []collision.Option
	logger      log.Log
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers bounds the number of concurrent queries. Zero means GOMAXPROCS.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) { r.workers = n }
}

// WithPenetration toggles solving penetration for overlapping pairs. On by default.
func WithPenetration(enabled bool) RunnerOption {
	return func(r *Runner) { r.penetration = enabled }
}

// WithDetectorOptions sets the options each worker's Detector is built with.
func WithDetectorOptions(opts ...collision.Option) RunnerOption {
	return func(r *Runner) { r.options = append(r.options, opts...) }
}

func WithRunnerLogger(logger log.Log) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{penetration: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewNop()
	}
	r.logger = r.logger.With(log.String("component", "scene"))
	return r
}

type pair struct {
	a, b Body
}

// Run evaluates all pairs. The report does not depend on the worker count.
func (r *Runner) Run(ctx context.Context, s *Scene) (*Report, error) {
	start := time.Now()
	bodies := s.bodies

	pairs := make([]pair, 0, len(bodies)*(len(bodies)-1)/2)
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			pairs = append(pairs, pair{a: bodies[i], b: bodies[j]})
		}
	}

	workers := concurrent.Workers(r.workers, len(pairs))
	opts := append([]collision.Option{collision.WithLogger(r.logger)}, r.options...)
	detectors := make([]*collision.Detector, workers)
	for w := range detectors {
		detectors[w] = collision.NewDetector(opts...)
	}

	contacts, err := concurrent.ParallelMap(ctx, pairs, workers, func(_ context.Context, w int, p pair) (Contact, error) {
		return r.evaluate(detectors[w], p), nil
	})
	if err != nil {
		r.logger.Warn("scene run aborted", log.String("scene", s.name), log.Error(err))
		return nil, err
	}

	report := newReport(s.name, contacts)

	var stats collision.Stats
	for _, d := range detectors {
		st := d.Stats()
		stats.Queries += st.Queries
		stats.Intersections += st.Intersections
		stats.EPACapHits += st.EPACapHits
		stats.GJKCapHits += st.GJKCapHits
	}

	r.logger.Info("scene evaluated",
		log.String("scene", s.name),
		log.Int("bodies", len(bodies)),
		log.Int("workers", workers),
		log.Uint64("queries", stats.Queries),
		log.Uint64("overlaps", stats.Intersections),
		log.Uint64("cap_hits", stats.GJKCapHits+stats.EPACapHits),
		log.Duration("elapsed", time.Since(start)))

	return report, nil
}

func (r *Runner) evaluate(d *collision.Detector, p pair) Contact {
	c := Contact{
		Key:   PairKey(p.a.ID, p.b.ID),
		A:     p.a.ID,
		B:     p.b.ID,
		AName: p.a.Name,
		BName: p.b.Name,
	}

	if !r.penetration {
		c.Intersects = d.Detect(p.a.Shape, p.a.Transform, p.b.Shape, p.b.Transform)
		return c
	}

	var pen collision.Penetration
	if d.DetectPenetration(p.a.Shape, p.a.Transform, p.b.Shape, p.b.Transform, &pen) {
		c.Intersects = true
		c.Penetration = &pen
	}
	return c
}
