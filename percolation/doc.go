// Package percolation models site percolation on an N×N grid.
//
// What:
//
//   - Grid owns the Blocked/Open state of N² sites and a unionfind.UnionFind
//     over N²+2 identifiers.
//   - Site (row, col), 1-indexed, maps to identifier (row-1)·N + (col-1) + 1.
//   - Identifier 0 is a virtual TOP sentinel wired to every open site in row 1;
//     identifier N²+1 is a virtual BOTTOM sentinel wired to every open site in row N.
//   - Open marks a site and unions it with its sentinels and open 4-neighbours.
//   - IsFull reports whether a site is connected to TOP; Percolates whether TOP
//     is connected to BOTTOM.
//
// Why:
//
//   - Percolates reduces "does any row-1 site reach any row-N site?" to one
//     connectivity query instead of an N-source search after every Open.
//   - The Monte Carlo estimate of the percolation threshold (see package
//     montecarlo) opens sites one at a time and asks Percolates after each.
//
// Backwash:
//
// Both sentinels live in the same forest. Once the grid percolates, TOP and
// BOTTOM share a root, so any open site touching row N (directly or through
// open neighbours) reports IsFull == true even when no open path leads from it
// to row 1. Percolates is unaffected. OpenClusters and SpansByBFS compute
// connectivity by breadth-first search and are free of the artifact.
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       O(α(N²)) amortized (at most six unions).
//   - IsOpen:     O(1).
//   - IsFull:     O(α(N²)) amortized.
//   - Percolates: O(α(N²)) amortized.
//   - OpenClusters, SpansByBFS: O(N²).
//
// Errors:
//
//   - ErrInvalidArgument: New called with N ≤ 0.
//   - ErrOutOfRange:      row or col outside [1, N]; the grid is left unchanged.
//
// A Grid is not safe for concurrent use; independent trials must each own a Grid.
package percolation
