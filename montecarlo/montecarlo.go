package montecarlo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/percolation"
)

// Threshold runs one trial on a fresh n×n grid and returns the fraction of
// sites that were open when the grid first percolated.
// Coordinates are drawn uniformly from [1,n]²; draws that hit an open site
// are discarded.
func Threshold(n int, rng *rand.Rand) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidGridSize, n)
	}
	if rng == nil {
		return 0, ErrNilRand
	}
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}

	for !g.Percolates() {
		row, col := rng.Intn(n)+1, rng.Intn(n)+1
		open, err := g.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if open {
			continue
		}
		if err := g.Open(row, col); err != nil {
			return 0, err
		}
	}

	return float64(g.NumberOfOpenSites()) / float64(n*n), nil
}

// Run performs trials independent trials on n×n grids and summarizes them.
// It returns ctx.Err() if the context is cancelled between trials.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, n)
	}
	if trials < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if o.Confidence <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidConfidence, o.Confidence)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := time.Now()
	thresholds := make([]float64, trials)
	for t := 0; t < trials; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := Threshold(n, o.Rand)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: trial %d: %w", t, err)
		}
		thresholds[t] = p
		o.Logger.Debug("trial finished",
			zap.Int("trial", t),
			zap.Int("grid_size", n),
			zap.Float64("threshold", p),
		)
	}

	res, err := Summarize(thresholds, o.Confidence)
	if err != nil {
		return nil, err
	}
	res.GridSize = n
	o.Logger.Info("run finished",
		zap.Int("grid_size", n),
		zap.Int("trials", trials),
		zap.Float64("mean", res.Mean),
		zap.Float64("stddev", res.StdDev),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// Summarize computes mean, sample standard deviation and the z confidence
// interval of thresholds. The slice is retained in the Result.
func Summarize(thresholds []float64, z float64) (*Result, error) {
	if len(thresholds) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, len(thresholds))
	}
	if z <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidConfidence, z)
	}

	mean, std := stat.MeanStdDev(thresholds, nil)
	half := z * std / math.Sqrt(float64(len(thresholds)))

	return &Result{
		Trials:       len(thresholds),
		Thresholds:   thresholds,
		Mean:         mean,
		StdDev:       std,
		Confidence:   z,
		ConfidenceLo: mean - half,
		ConfidenceHi: mean + half,
	}, nil
}
