// Package tsp — cost utilities shared by both solvers.
//
// Allocation-conscious helpers to compute the total cost of a closed tour.
// Defensive per-edge checks (Inf/NaN/negative) are kept even when
// validation ran earlier; the final sum is rounded to 1e-9 so costs stay
// bit-identical across platforms.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the edge costs along the closed cycle
// tour[0]→tour[1]→…→tour[len-1].
//
// Contract:
//   - dist must be square n×n; tour must have len ≥ 2 with indices in
//     [0..n-1].
//
// Checks performed per edge:
//   - indices in range (ErrDimensionMismatch),
//   - weight not NaN (ErrDimensionMismatch treats it as shape corruption),
//   - weight not ±Inf (ErrIncompleteGraph),
//   - weight non-negative (ErrInvalidWeight).
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist [][]float64, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = len(dist)
		sum float64
		i   int
		u   int
		v   int
		w   float64
		L   = len(tour) - 1 // last hop ends at tour[L]
	)

	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]

		if u < 0 || u >= n || v < 0 || v >= n || len(dist[u]) != n {
			return 0, ErrDimensionMismatch
		}

		w = dist[u][v]
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrInvalidWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. Keeps costs
// stable across platforms without affecting algorithmic correctness.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
