// Package tsp — exact Held–Karp solver.
//
// TSPExact solves the Travelling Salesman Problem to optimality using the
// Held–Karp subset dynamic program. Subsets of {0..n-1} containing vertex 0
// are indexed by bitmasks; for each subset S and terminal j ∈ S, j ≠ 0,
//
//	dp[S][j] = minimum cost of a path starting at 0, visiting exactly the
//	           vertices of S, and ending at j.
//
// Masks are processed in increasing numeric order, so S \ {j} (a strictly
// smaller mask) is always computed first. The optimum cycle cost is
// min over j of dp[FullSet][j] + dist[j][0].
//
// Scalability ceiling: time O(n²·2ⁿ), memory O(n·2ⁿ). Beyond roughly
// n ≈ 20–22 the table no longer fits commodity memory; inputs above
// Options.MaxExactNodes are rejected with ErrSubsetOverflow before any
// allocation is attempted. This is a hard ceiling, not a degraded mode.
package tsp

import (
	"math"

	"github.com/yourbasic/bit"
)

// TSPExact computes a provably minimum-cost tour anchored at vertex 0.
//
// The matrix need not be metric but must be symmetric; +Inf entries mark
// missing edges. If no Hamiltonian cycle exists the solver returns
// ErrIncompleteGraph.
//
// Cancellation: opts.Ctx is polled once per DP subset, so an expensive
// solve aborts promptly with the context's error.
//
// Errors: validation sentinels, ErrSubsetOverflow, ErrIncompleteGraph,
// ErrInternalInvariant (reconstruction defect; must never occur for
// inputs that passed validation).
func TSPExact(dist [][]float64, opts Options) (TSResult, error) {
	ctx := solveCtx(opts)

	// --- 1. Validate input matrix and size ceiling ---
	n, err := validateDist(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n > exactCeiling(opts) {
		// Fail fast: do not attempt the 2ⁿ allocation.
		return TSResult{}, ErrSubsetOverflow
	}

	// Single vertex: the trivial closed loop at 0.
	if n == 1 {
		return TSResult{Tour: []int{0, 0}, Cost: 0}, nil
	}

	// --- 2. Allocate and initialize the DP table ---
	size := 1 << uint(n)
	dp := make([][]float64, size)

	var (
		mask int
		j    int
		k    int
	)
	for mask = 0; mask < size; mask++ {
		dp[mask] = make([]float64, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1) // +∞ means "state unreachable"
		}
	}
	// Base state: at vertex 0 having visited exactly {0}, cost 0. The
	// first transition out of it realizes dp[{0,j}][j] = dist[0][j].
	dp[1][0] = 0

	// --- 3. Fill DP over all subsets that include vertex 0 ---
	// Odd masks are exactly the subsets containing bit 0.
	var (
		prev float64 // candidate cost via predecessor k
		c    float64 // edge weight k→j
	)
	for mask = 1; mask < size; mask += 2 {
		// Cancellation point: one poll per subset.
		if err = checkCancelled(ctx); err != nil {
			return TSResult{}, err
		}

		for j = 1; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue // j not in subset
			}
			sub := mask ^ (1 << uint(j)) // subset without terminal j
			for k = 0; k < n; k++ {
				if sub&(1<<uint(k)) == 0 {
					continue // k not in predecessor subset
				}
				c = dist[k][j]
				if math.IsInf(c, 1) {
					continue // no edge k→j
				}
				prev = dp[sub][k] + c
				if prev < dp[mask][j] {
					dp[mask][j] = prev
				}
			}
		}
	}

	// --- 4. Close the cycle by returning to 0 ---
	full := size - 1
	bestCost := math.Inf(1)
	for j = 1; j < n; j++ {
		c = dist[j][0]
		if math.IsInf(c, 1) {
			continue // no edge back to start
		}
		if total := dp[full][j] + c; total < bestCost {
			bestCost = total
		}
	}
	if math.IsInf(bestCost, 1) {
		return TSResult{}, ErrIncompleteGraph
	}

	// --- 5. Reconstruct the tour front-to-back ---
	// Starting from the full set, repeatedly pick the unappended vertex k
	// minimizing dp[remaining][k] + dist[k][last]; remove it from the
	// remaining mask. After n−1 steps every vertex has been placed.
	var (
		tour      = make([]int, 0, n+1)
		appended  = new(bit.Set).Add(0)
		remaining = full
		last      int
		bestK     int
		bestVal   float64
		val       float64
		step      int
	)
	tour = append(tour, 0)

	for step = 0; step < n-1; step++ {
		last = tour[len(tour)-1]
		bestK, bestVal = -1, math.Inf(1)
		for k = 1; k < n; k++ {
			if appended.Contains(k) {
				continue
			}
			c = dist[k][last]
			if math.IsInf(c, 1) {
				continue
			}
			val = dp[remaining][k] + c
			if val < bestVal {
				bestVal, bestK = val, k
			}
		}
		// A finite bestCost guarantees a candidate at every step; finding
		// none means the table is malformed. Fail loudly rather than emit
		// an undefined vertex id.
		if bestK < 0 {
			return TSResult{}, ErrInternalInvariant
		}
		tour = append(tour, bestK)
		appended.Add(bestK)
		remaining ^= 1 << uint(bestK)
	}
	tour = append(tour, 0)

	if verr := ValidateTour(tour, n); verr != nil {
		return TSResult{}, ErrInternalInvariant
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
