// Package montecarlo estimates the site-percolation threshold of an N×N grid
// by repeated random trials.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random blocked
// sites until the grid percolates, and records the fraction of sites opened.
// Run repeats this T times and reports the sample mean, the sample standard
// deviation (divisor T-1) and the confidence interval
//
//	mean ± z·stddev/√T      (z = 1.96 for 95%)
//
// Statistics are computed with gonum.org/v1/gonum/stat.
//
// Trials run sequentially on the calling goroutine; they share only the
// random source. Run checks its context between trials.
//
// Errors:
//
//   - ErrInvalidGridSize:   N ≤ 0.
//   - ErrInvalidTrials:     T < 2 (the sample standard deviation needs two samples).
//   - ErrInvalidConfidence: z ≤ 0.
//   - ErrNilRand:           Threshold called without a random source.
package montecarlo
