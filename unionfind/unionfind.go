package unionfind

import "fmt"

// New returns a UnionFind of size singleton sets {0}, {1}, ..., {size-1}.
// Returns ErrInvalidSize if size ≤ 0.
// Complexity: O(size) time and memory.
func New(size int) (*UnionFind, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	uf := &UnionFind{
		parent: make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements in the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing x.
// Every visited element is re-pointed at its grandparent (path halving).
// Returns ErrOutOfRange if x is outside [0, Len()).
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.validate(x); err != nil {
		return 0, err
	}

	return uf.root(x), nil
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) (int, error) {
	if err := uf.validate(x); err != nil {
		return 0, err
	}

	return uf.size[uf.root(x)], nil
}

// Union merges the sets containing a and b. The root of the smaller tree is
// attached under the root of the larger one; on equal sizes b's root goes
// under a's. Merging two elements that are already connected is a no-op.
// Returns ErrOutOfRange if either element is outside [0, Len()); in that
// case the forest is left untouched.
func (uf *UnionFind) Union(a, b int) error {
	// 1. Validate both identifiers before any mutation.
	if err := uf.validate(a); err != nil {
		return err
	}
	if err := uf.validate(b); err != nil {
		return err
	}

	// 2. Locate both roots; a shared root means nothing to merge.
	ra, rb := uf.root(a), uf.root(b)
	if ra == rb {
		return nil
	}
	// 3. Union by size: keep ra as the larger root (a's root on ties).
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	// 4. Hang the smaller tree under the larger and fold in its size.
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return nil
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) (bool, error) {
	if err := uf.validate(a); err != nil {
		return false, err
	}
	if err := uf.validate(b); err != nil {
		return false, err
	}

	return uf.root(a) == uf.root(b), nil
}

// root is Find without the bounds check.
func (uf *UnionFind) root(x int) int {
	for uf.parent[x] != x {
		// Path halving: point x at its grandparent, then step there.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

func (uf *UnionFind) validate(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(uf.parent))
	}

	return nil
}
