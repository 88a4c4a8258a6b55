package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidArgument indicates a grid dimension N ≤ 0.
	ErrInvalidArgument = errors.New("percolation: grid size must be positive")
	// ErrOutOfRange indicates a row or column outside [1, N].
	ErrOutOfRange = errors.New("percolation: site index out of range")
)

// State is the state of one site.
type State uint8

const (
	// Blocked sites admit no flow. Every site starts Blocked.
	Blocked State = iota
	// Open sites connect to their open 4-neighbours.
	Open
)

// String returns "blocked" or "open".
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "blocked"
}

// Site addresses a cell by 1-indexed row and column.
type Site struct {
	Row, Col int
}

// UnionHook observes every union a Grid issues, with the identifiers passed
// in call order. The hook must not call back into the Grid.
type UnionHook func(a, b int)

// Option configures a Grid at construction.
type Option func(*Grid)

// WithUnionHook registers fn to be called before each union issued by Open.
// Order per Open: TOP sentinel, BOTTOM sentinel, then left, right, up, down
// neighbours, each only when applicable.
func WithUnionHook(fn UnionHook) Option {
	return func(g *Grid) {
		g.onUnion = fn
	}
}

// Grid is an N×N percolation system. Construct with New.
//
// sites[k] holds the state of the site with identifier k+1 (row-major, 0-indexed
// internally). uf spans identifiers 0..N²+1; top and bottom are the sentinels.
type Grid struct {
	n         int
	sites     []State
	openCount int
	uf        *unionfind.UnionFind
	top       int
	bottom    int
	onUnion   UnionHook
}

// neighborOffsets lists (dRow, dCol) for left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
