package montecarlo_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/percolate/montecarlo"
)

// TestThreshold_Validation covers argument errors of a single trial.
func TestThreshold_Validation(t *testing.T) {
	_, err := montecarlo.Threshold(0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, montecarlo.ErrInvalidGridSize)

	_, err = montecarlo.Threshold(5, nil)
	assert.ErrorIs(t, err, montecarlo.ErrNilRand)
}

// TestThreshold_Bounds checks trial results on tiny grids with known limits.
func TestThreshold_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	// A single site percolates as soon as it is opened.
	p, err := montecarlo.Threshold(1, r)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	// A 2×2 grid needs at least one full column (2 sites) and at most 3.
	for i := 0; i < 50; i++ {
		p, err := montecarlo.Threshold(2, r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.5)
		assert.LessOrEqual(t, p, 0.75)
	}
}

// TestRun_Validation covers the argument errors of Run.
func TestRun_Validation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		n, t   int
		opts   []montecarlo.Option
		target error
	}{
		{"ZeroGrid", 0, 10, nil, montecarlo.ErrInvalidGridSize},
		{"NegativeGrid", -5, 10, nil, montecarlo.ErrInvalidGridSize},
		{"OneTrial", 10, 1, nil, montecarlo.ErrInvalidTrials},
		{"ZeroConfidence", 10, 10, []montecarlo.Option{montecarlo.WithConfidence(0)}, montecarlo.ErrInvalidConfidence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := montecarlo.Run(ctx, tc.n, tc.t, tc.opts...)
			assert.ErrorIs(t, err, tc.target)
			assert.Nil(t, res)
		})
	}
}

// TestRun_Deterministic checks that equal seeds give equal thresholds.
func TestRun_Deterministic(t *testing.T) {
	ctx := context.Background()
	a, err := montecarlo.Run(ctx, 20, 10, montecarlo.WithSeed(42))
	require.NoError(t, err)
	b, err := montecarlo.Run(ctx, 20, 10, montecarlo.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Thresholds, b.Thresholds)
	assert.Equal(t, a.Mean, b.Mean)
	assert.Equal(t, 20, a.GridSize)
	assert.Equal(t, 10, a.Trials)
	assert.Len(t, a.Thresholds, 10)
}

// TestRun_EstimatesThreshold checks the estimate against the known value p* ≈ 0.5927.
func TestRun_EstimatesThreshold(t *testing.T) {
	res, err := montecarlo.Run(context.Background(), 50, 40, montecarlo.WithSeed(2024))
	require.NoError(t, err)

	assert.InDelta(t, 0.5927, res.Mean, 0.05)
	assert.Greater(t, res.StdDev, 0.0)
	assert.Less(t, res.ConfidenceLo, res.Mean)
	assert.Greater(t, res.ConfidenceHi, res.Mean)
	for _, p := range res.Thresholds {
		assert.Greater(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

// TestRun_Cancelled verifies that a cancelled context stops the run.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := montecarlo.Run(ctx, 10, 5, montecarlo.WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

// TestRun_Logging checks the per-trial debug records and the summary record.
func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := montecarlo.Run(context.Background(), 8, 3,
		montecarlo.WithSeed(5),
		montecarlo.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("trial finished").Len())
	summary := logs.FilterMessage("run finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, zapcore.InfoLevel, summary[0].Level)
	assert.Equal(t, int64(3), summary[0].ContextMap()["trials"])
}

// TestRun_NilLogger ensures a nil logger falls back to a no-op logger.
func TestRun_NilLogger(t *testing.T) {
	_, err := montecarlo.Run(context.Background(), 4, 2,
		montecarlo.WithSeed(1), montecarlo.WithLogger(nil))
	assert.NoError(t, err)
}

// TestSummarize checks the statistics on a hand-computed sample.
//
//	x = {0.5, 0.6, 0.7}: mean 0.6, s² = 0.02/2, s = 0.1
func TestSummarize(t *testing.T) {
	res, err := montecarlo.Summarize([]float64{0.5, 0.6, 0.7}, montecarlo.DefaultConfidence)
	require.NoError(t, err)

	half := 1.96 * 0.1 / math.Sqrt(3)
	assert.InDelta(t, 0.6, res.Mean, 1e-12)
	assert.InDelta(t, 0.1, res.StdDev, 1e-12)
	assert.InDelta(t, 0.6-half, res.ConfidenceLo, 1e-12)
	assert.InDelta(t, 0.6+half, res.ConfidenceHi, 1e-12)
	assert.Equal(t, 3, res.Trials)
	assert.Equal(t, montecarlo.DefaultConfidence, res.Confidence)
}

// TestSummarize_Validation covers too few samples and a bad z-value.
func TestSummarize_Validation(t *testing.T) {
	_, err := montecarlo.Summarize([]float64{0.5}, 1.96)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidTrials)
	_, err = montecarlo.Summarize(nil, 1.96)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidTrials)
	_, err = montecarlo.Summarize([]float64{0.5, 0.6}, -1)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidConfidence)
}
