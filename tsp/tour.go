// Package tsp — tour utilities shared by both solvers.
//
// Helpers that operate purely on tour structure (index sequences), without
// touching distance matrices.
package tsp

// ValidateTour enforces the Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid, ErrDimensionMismatch otherwise.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
