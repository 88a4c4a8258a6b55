package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// New returns an N×N grid with every site Blocked.
// Returns ErrInvalidArgument if n ≤ 0; no Grid is produced in that case.
// Complexity: O(N²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, n)
	}
	uf, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: %w", err)
	}
	g := &Grid{
		n:      n,
		sites:  make([]State, n*n),
		uf:     uf,
		top:    0,
		bottom: n*n + 1,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// N returns the grid dimension.
func (g *Grid) N() int {
	return g.n
}

// NumberOfOpenSites returns how many distinct sites are Open.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Open opens site (i, j) and wires it to the sentinels and to open neighbours.
// Re-opening an open site repeats the same unions, which change nothing.
// Returns ErrOutOfRange, without touching the grid, if i or j is outside [1, N].
func (g *Grid) Open(i, j int) error {
	// 1. Validate before touching any state.
	row, col, err := g.coords(i, j)
	if err != nil {
		return err
	}
	// 2. Mark the site; only a first open counts.
	if g.sites[row*g.n+col] == Blocked {
		g.sites[row*g.n+col] = Open
		g.openCount++
	}

	// 3. Wire boundary rows to their sentinels. Both apply when N == 1.
	id := g.id(row, col)
	if row == 0 {
		if err := g.union(g.top, id); err != nil {
			return err
		}
	}
	if row == g.n-1 {
		if err := g.union(g.bottom, id); err != nil {
			return err
		}
	}
	// 4. Join open 4-neighbours: left, right, up, down.
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.inBounds(nr, nc) || g.sites[nr*g.n+nc] != Open {
			// Off the grid or still blocked.
			continue
		}
		if err := g.union(id, g.id(nr, nc)); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (i, j) is Open.
func (g *Grid) IsOpen(i, j int) (bool, error) {
	row, col, err := g.coords(i, j)
	if err != nil {
		return false, err
	}

	return g.sites[row*g.n+col] == Open, nil
}

// IsFull reports whether site (i, j) is connected to the TOP sentinel.
// The site's own state is not consulted. After percolation this includes
// sites reached only through the BOTTOM sentinel (backwash).
func (g *Grid) IsFull(i, j int) (bool, error) {
	row, col, err := g.coords(i, j)
	if err != nil {
		return false, err
	}

	return g.uf.Connected(g.top, g.id(row, col))
}

// Percolates reports whether the TOP and BOTTOM sentinels are connected,
// i.e. some path of open sites joins row 1 to row N.
func (g *Grid) Percolates() bool {
	// Both sentinels are in range by construction.
	ok, _ := g.uf.Connected(g.top, g.bottom)
	return ok
}

// union forwards to the forest after notifying the hook.
func (g *Grid) union(a, b int) error {
	if g.onUnion != nil {
		g.onUnion(a, b)
	}
	return g.uf.Union(a, b)
}

// coords validates a 1-indexed site and converts it to 0-indexed row, col.
func (g *Grid) coords(i, j int) (row, col int, err error) {
	if i < 1 || i > g.n || j < 1 || j > g.n {
		return 0, 0, fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrOutOfRange, i, j, g.n)
	}

	return i - 1, j - 1, nil
}

// id maps a 0-indexed (row, col) to its identifier in [1, N²].
func (g *Grid) id(row, col int) int {
	return row*g.n + col + 1
}

// inBounds reports whether a 0-indexed (row, col) lies on the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}
