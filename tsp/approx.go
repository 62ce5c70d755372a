// Package tsp — metric 2-approximation.
//
// TSPApprox computes a 2-approximate Hamiltonian cycle for the symmetric,
// metric Travelling Salesman Problem via the classic tree-doubling scheme:
//
//  1. Minimum Spanning Tree (Kruskal) on the complete metric graph.
//  2. Depth-first walk of the tree from vertex 0, shortcutting revisits.
//  3. Close the cycle back at 0.
//
// Mathematical guarantee:
//   - For metric instances (symmetric, triangle inequality, non-negative),
//     the returned tour length ≤ 2 · OPT: the tree weight is a lower bound
//     on OPT, and the shortcut Euler walk traverses each tree edge at most
//     twice while shortcuts never lengthen a path under the triangle
//     inequality.
//   - Metricity is a precondition, not mechanically checked: violating it
//     voids the bound but still yields a valid permutation tour.
//
// Determinism: the walk pushes each vertex's tree neighbors in the order
// the edges were selected into the tree, so the shortcutting path — and
// hence the tour — is fully reproducible.
package tsp

import (
	"github.com/yourbasic/bit"

	"github.com/qwzybug/tsp/kruskal"
)

// TSPApprox runs the tree-doubling 2-approximation on a symmetric metric
// instance and returns the tour anchored at vertex 0.
//
// Errors: matrix sentinels from validation (via the MST builder),
// ErrIncompleteGraph for effectively disconnected inputs, or the context's
// error when opts.Ctx is cancelled between phases.
//
// Complexity: O(n² log n) time (MST sort dominates), O(n²) space.
func TSPApprox(dist [][]float64, opts Options) (TSResult, error) {
	ctx := solveCtx(opts)
	if err := checkCancelled(ctx); err != nil {
		return TSResult{}, err
	}

	// 1) Minimum spanning tree; validates the matrix as a side effect.
	tree, _, err := MST(dist)
	if err != nil {
		return TSResult{}, err
	}
	n := len(dist)

	// Single vertex: the tour is the trivial closed loop at 0.
	if n == 1 {
		return TSResult{Tour: []int{0, 0}, Cost: 0}, nil
	}

	if err = checkCancelled(ctx); err != nil {
		return TSResult{}, err
	}

	// 2) Per-vertex adjacency lists over the tree subgraph, built in edge
	//    selection order; each tree edge contributes both directions.
	adj := make([][]int, n)
	var e kruskal.Edge
	for _, e = range tree {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	// 3) Iterative depth-first walk from 0 with an explicit LIFO stack.
	//    Popping an unvisited vertex appends it to the tour and pushes all
	//    of its tree neighbors; visited vertices are discarded on pop.
	//    This shortcuts the implicit Euler tour of the tree into a
	//    Hamiltonian cycle.
	var (
		visited = new(bit.Set)
		tour    = make([]int, 0, n+1)
		stack   = make([]int, 0, 2*n) // pending-work stack, seeded with 0
		u       int
	)
	stack = append(stack, 0)

	for len(tour) < n {
		if len(stack) == 0 {
			// The tree spans all vertices, so the walk must reach each of
			// them; an empty stack here marks a logic defect.
			return TSResult{}, ErrInternalInvariant
		}
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(u) {
			continue
		}
		visited.Add(u)
		tour = append(tour, u)
		stack = append(stack, adj[u]...)
	}

	// Close the cycle back at the start vertex.
	tour = append(tour, 0)

	// 4) Stabilized tour cost with strict per-edge validation.
	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}

	// Final invariant check — inexpensive, catches wiring mistakes early.
	if verr := ValidateTour(tour, n); verr != nil {
		return TSResult{}, verr
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}
