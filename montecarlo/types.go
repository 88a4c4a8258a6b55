package montecarlo

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"
)

// Sentinel errors for montecarlo operations.
var (
	// ErrInvalidGridSize indicates a grid dimension N ≤ 0.
	ErrInvalidGridSize = errors.New("montecarlo: grid size must be positive")
	// ErrInvalidTrials indicates fewer than two trials.
	ErrInvalidTrials = errors.New("montecarlo: at least two trials are required")
	// ErrInvalidConfidence indicates a non-positive z-value.
	ErrInvalidConfidence = errors.New("montecarlo: confidence z-value must be positive")
	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("montecarlo: random source is nil")
)

// DefaultConfidence is the two-sided 95% normal quantile.
const DefaultConfidence = 1.96

// Result holds the thresholds of a run and their summary statistics.
type Result struct {
	GridSize     int
	Trials       int
	Thresholds   []float64
	Mean         float64
	StdDev       float64
	Confidence   float64 // z-value of the interval
	ConfidenceLo float64
	ConfidenceHi float64
}

// Options configures Run. Use DefaultOptions and Option functions.
type Options struct {
	// Rand draws site coordinates. Nil means a time-seeded source.
	Rand *rand.Rand
	// Logger receives per-trial debug records and a run summary.
	Logger *zap.Logger
	// Confidence is the z-value of the reported interval.
	Confidence float64
}

// Option modifies Options.
type Option func(*Options)

// WithRand sets the random source. The source is not safe for concurrent
// use and must not be shared with other goroutines during Run.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed sets a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger. A nil logger is replaced by zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithConfidence sets the z-value of the confidence interval.
func WithConfidence(z float64) Option {
	return func(o *Options) {
		o.Confidence = z
	}
}

// DefaultOptions returns Options with a no-op logger, z = 1.96 and no
// random source (Run seeds one from the clock).
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Confidence: DefaultConfidence,
	}
}
