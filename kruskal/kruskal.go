package kruskal

import (
	"math"
	"sort"

	"github.com/qwzybug/tsp/unionfind"
)

// symTol is the structural tolerance for the symmetry check. It mirrors the
// strictness used by the tour solvers so both layers agree on what counts
// as a symmetric matrix.
const symTol = 1e-12

// MinimumSpanningTree computes a minimum spanning tree of the complete
// graph described by the n×n cost matrix dist.
//
// Steps:
//  1. Validate dist: square, symmetric, entries non-negative and not
//     NaN/−Inf (+Inf means "no edge"; the diagonal is ignored).
//  2. Enumerate the upper-triangle edges (i < j) in row-major order,
//     skipping +Inf entries.
//  3. Sort ascending by weight with a stable sort, so equal-weight edges
//     keep their enumeration order (the committed tie-break rule).
//  4. Scan sorted edges with a unionfind.Forest; keep an edge iff its
//     endpoints are in different sets, stopping at n−1 selections.
//
// Returns the selected edges in selection order together with the total
// tree weight. The selection order is part of the contract: the metric
// tour approximator derives its traversal order from it.
//
// Guarantee: the returned tree has minimum total weight among all spanning
// trees of the graph. A single-vertex graph yields an empty tree of
// weight 0.
//
// Errors: ErrDimensionMismatch, ErrAsymmetry, ErrInvalidWeight,
// ErrDisconnected (see types.go).
//
// Complexity: O(n² log n) time, O(n²) space.
func MinimumSpanningTree(dist [][]float64) ([]Edge, float64, error) {
	// 1. Validate shape and values once at the boundary.
	n, err := validateMatrix(dist)
	if err != nil {
		return nil, 0, err
	}

	// Trivial universe: one vertex spans itself with no edges.
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Enumerate candidate edges from the upper triangle, row-major.
	//    +Inf entries are missing edges and never become candidates.
	edges := make([]Edge, 0, n*(n-1)/2)
	var (
		i int // row under enumeration
		j int // column under enumeration
		w float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = dist[i][j]
			if math.IsInf(w, 1) {
				continue
			}
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}

	// 3. Stable sort by weight: ties resolve to enumeration order.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Greedy scan with cycle detection via the disjoint-set forest.
	forest, err := unionfind.New(n)
	if err != nil {
		// Unreachable for n ≥ 1; kept for contract completeness.
		return nil, 0, ErrDimensionMismatch
	}

	var (
		tree  = make([]Edge, 0, n-1)
		total float64
		e     Edge
	)
	for _, e = range edges {
		if forest.Union(e.From, e.To) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == n-1 {
				break
			}
		}
	}

	// Fewer than n−1 selections means some component was unreachable.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// validateMatrix checks the full input contract and returns the matrix
// order n on success.
//
// Stages:
//   - shape: non-nil, square, n ≥ 1 (ErrDimensionMismatch);
//   - values: off-diagonal entries not NaN/negative/−Inf (ErrInvalidWeight);
//   - symmetry: |dist[i][j] − dist[j][i]| ≤ symTol (ErrAsymmetry), with two
//     +Inf entries counting as equal.
//
// The diagonal is ignored entirely; cost[i][i] carries no meaning here.
//
// Complexity: O(n²).
func validateMatrix(dist [][]float64) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		i, j     int
		aij, aji float64
		diff     float64
	)

	// Stage 1: every row must have length n.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrDimensionMismatch
		}
	}

	// Stage 2: off-diagonal value checks.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij = dist[i][j]
			if math.IsNaN(aij) {
				return 0, ErrInvalidWeight
			}
			if aij < 0 {
				// Also catches −Inf.
				return 0, ErrInvalidWeight
			}
		}
	}

	// Stage 3: symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = dist[i][j]
			aji = dist[j][i]
			if math.IsInf(aij, 1) || math.IsInf(aji, 1) {
				// Both sides must agree that the edge is missing.
				if aij != aji {
					return 0, ErrAsymmetry
				}
				continue
			}
			diff = aij - aji
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
