// Package percolate is an in-memory toolkit for site percolation on square
// grids, from the incremental connectivity engine to Monte Carlo estimates
// of the percolation threshold.
//
// Under the hood, the work is split across small subpackages:
//
//	unionfind/    — fixed-universe disjoint-set forest (union by size, path halving)
//	percolation/  — N×N grid with virtual TOP/BOTTOM sentinels: Open, IsOpen, IsFull, Percolates
//	montecarlo/   — repeated random trials, mean / stddev / confidence interval (gonum/stat)
//	config/       — flag, environment and file configuration for the tools (viper)
//	cmd/percolationstats — command-line driver
//
// Quick ASCII example (N=3, O = open):
//
//	O . .
//	O . .
//	O . .      column 1 joins row 1 to row 3, so the grid percolates.
//
//	go get github.com/katalvlaran/percolate
package percolate
