// Package unionfind implements a disjoint-set forest (union-find) over the
// integer universe {0..n-1}.
//
// The forest maintains a partition of the universe into disjoint sets under
// incremental merging. It is the cycle detector behind Kruskal's minimum
// spanning tree construction, but is useful anywhere incremental
// connectivity queries are needed.
//
// Key features:
//   - Find with iterative path compression (grandparent repointing).
//   - Union by rank: attach the smaller-rank root under the larger; on equal
//     ranks the surviving root's rank grows by one, bounding tree height to
//     O(log n).
//   - Connected and Count helpers for component queries.
//
// Complexity:
//
//   - Time:   near O(1) amortized per Find/Union (inverse Ackermann).
//   - Memory: O(n) — two int slices indexed by element.
//
// Errors:
//
//   - ErrBadSize if New is called with a negative universe size.
//
// Element indices passed to Find/Union/Connected must lie in [0..n-1];
// this is the caller's contract and is not range-checked on the hot path.
package unionfind
