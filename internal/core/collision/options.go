package collision

import "github.com/zeusync/narrowphase/internal/core/observability/log"

const (
	// DefaultMaxGJKIterations bounds the GJK loop. Well-formed input converges
	// in a handful of steps; the cap only guards against floating-point cycling.
	DefaultMaxGJKIterations = 64

	// DefaultMaxEPAIterations bounds polytope expansion. Curved shapes need the
	// most steps since every iteration halves the angular span of the closest edge.
	DefaultMaxEPAIterations = 100

	// DefaultEPATolerance is the minimum improvement of a new support point over
	// the closest edge distance for EPA to keep expanding.
	DefaultEPATolerance = 1e-6
)

// Options configures a Detector. Zero or negative values fall back to defaults.
type Options struct {
	MaxGJKIterations int
	MaxEPAIterations int
	EPATolerance     float64
	CircleFastPath   bool
	Logger           log.Log
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used by NewDetector without arguments.
func DefaultOptions() Options {
	return Options{
		MaxGJKIterations: DefaultMaxGJKIterations,
		MaxEPAIterations: DefaultMaxEPAIterations,
		EPATolerance:     DefaultEPATolerance,
		CircleFastPath:   true,
	}
}

func WithMaxGJKIterations(n int) Option {
	return func(o *Options) { o.MaxGJKIterations = n }
}

func WithMaxEPAIterations(n int) Option {
	return func(o *Options) { o.MaxEPAIterations = n }
}

func WithEPATolerance(tolerance float64) Option {
	return func(o *Options) { o.EPATolerance = tolerance }
}

// WithCircleFastPath toggles the analytic circle-circle test.
func WithCircleFastPath(enabled bool) Option {
	return func(o *Options) { o.CircleFastPath = enabled }
}

func WithLogger(logger log.Log) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithOptions replaces every field at once, e.g. from a loaded config.
func WithOptions(options Options) Option {
	return func(o *Options) { *o = options }
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.MaxGJKIterations <= 0 {
		o.MaxGJKIterations = DefaultMaxGJKIterations
	}
	if o.MaxEPAIterations <= 0 {
		o.MaxEPAIterations = DefaultMaxEPAIterations
	}
	if !(o.EPATolerance > 0) {
		o.EPATolerance = DefaultEPATolerance
	}
	if o.Logger == nil {
		o.Logger = log.NewNop()
	}

	return o
}
