// Package unionfind provides a fixed-universe disjoint-set forest
// (union-find) over integer identifiers 0..size-1.
//
// What:
//
//   - UnionFind keeps a parent pointer and a subtree size for every element.
//   - Find walks to the root, halving the path as it goes.
//   - Union attaches the root of the smaller tree under the root of the larger one.
//   - Connected reports whether two elements share a root.
//
// Why:
//
//   - Incremental connectivity: after each merge, "are a and b connected?"
//     is answered without recomputing components from scratch.
//   - Percolation, Kruskal's MST, image labelling and clustering all reduce
//     to a stream of unions interleaved with connectivity queries.
//
// Complexity:
//
//   - New:       O(n) time and memory.
//   - Find:      O(α(n)) amortized (α = inverse Ackermann); O(log n) worst case.
//   - Union:     O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//
// Union by size keeps every tree at height ≤ log₂(n); ties attach the second
// argument's root under the first argument's root.
//
// Errors:
//
//   - ErrInvalidSize: New called with size ≤ 0.
//   - ErrOutOfRange:  an identifier outside [0, size).
package unionfind
