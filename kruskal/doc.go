// Package kruskal builds minimum spanning trees over complete weighted
// graphs given as dense symmetric cost matrices.
//
// The builder enumerates the n·(n−1)/2 undirected edges of the complete
// graph, sorts them ascending by weight, and scans them with a disjoint-set
// forest, keeping every edge whose endpoints lie in different components
// until n−1 edges are selected (Kruskal's algorithm).
//
// Determinism: equal-weight edges are ordered by their row-major
// upper-triangle enumeration index, enforced via a stable sort. For
// unordered pairs (i < j) this enumeration order coincides with
// lexicographic pair order, so the tie-break rule is both committed and
// easy to state.
//
// Input contract (validated at entry):
//   - dist is a square n×n matrix, n ≥ 1;
//   - symmetric within a 1e-12 tolerance;
//   - off-diagonal entries are non-negative and not NaN or −Inf;
//   - +Inf marks a missing edge; the diagonal is ignored.
//
// Complexity:
//
//   - Time:   O(n² log n) — dominated by the edge sort.
//   - Memory: O(n²) for the edge list.
//
// Errors (sentinel):
//
//   - ErrDimensionMismatch — dist is nil, empty, or not square.
//   - ErrAsymmetry         — dist[i][j] differs from dist[j][i].
//   - ErrInvalidWeight     — a negative, NaN or −Inf entry was found.
//   - ErrDisconnected      — missing (+Inf) edges leave the graph with no
//     spanning tree.
package kruskal
