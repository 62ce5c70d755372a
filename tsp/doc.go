// Package tsp constructs travel tours over complete weighted graphs given
// as dense symmetric cost matrices.
//
// Two solvers are provided:
//
//   - TSPApprox — a polynomial-time 2-approximation for metric instances:
//     minimum spanning tree (Kruskal) + depth-first shortcutting walk.
//     For symmetric costs satisfying the triangle inequality the returned
//     tour is at most twice the optimum.
//   - TSPExact — the Held–Karp subset dynamic program: provably optimal,
//     O(n²·2ⁿ) time and O(n·2ⁿ) memory. Impractical beyond roughly
//     n ≈ 20–22 on commodity hardware; a configurable ceiling rejects
//     larger inputs up front.
//
// Solve routes between the two by Options.Algo after a single validation
// pass; MST exposes the spanning-tree builder behind the same sentinels.
//
// Data model:
//
//   - Cost matrix: [][]float64, square n×n, symmetric, non-negative, no
//     NaN; +Inf off-diagonal marks a missing edge; the diagonal is ignored.
//   - Tour: []int of length n+1 with Tour[0] == Tour[n] == 0 and every
//     vertex in [0..n-1] appearing exactly once among the first n entries.
//
// Design principles (shared by all entry points):
//
//   - Deterministic: committed tie-break rules, no randomness, bit-identical
//     output on repeated calls.
//   - Strict sentinels from types.go matched via errors.Is; no panics on
//     user input; no logging.
//   - Stable cost: returned costs are rounded to 1e-9 to prevent FP drift.
//   - Cancellation: Options.Ctx is honored at DP-subset granularity in the
//     exact solver and between phases of the approximation.
package tsp
