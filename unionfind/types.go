package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates New was asked for an empty or negative universe.
	ErrInvalidSize = errors.New("unionfind: size must be positive")
	// ErrOutOfRange indicates an element identifier outside [0, size).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// UnionFind is a disjoint-set forest over the elements 0..Len()-1.
// parent[x] == x marks a root; size[r] is only meaningful for roots.
// The zero value is not usable; construct with New.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}
