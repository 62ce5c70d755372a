// Package tsp - unified dispatcher for the tour solvers.
package tsp

// Solve routes the instance to the solver selected by opts.Algo:
//
//   - Approx2       → TSPApprox (polynomial-time, metric 2-approximation)
//   - ExactHeldKarp → TSPExact  (exponential-time, optimal)
//
// Both paths validate the matrix themselves, so Solve adds no extra pass;
// unknown algorithms yield ErrUnsupportedAlgorithm.
//
// Complexity: per chosen algorithm — O(n² log n) for Approx2,
// O(n²·2ⁿ) for ExactHeldKarp.
func Solve(dist [][]float64, opts Options) (TSResult, error) {
	switch opts.Algo {
	case Approx2:
		return TSPApprox(dist, opts)
	case ExactHeldKarp:
		return TSPExact(dist, opts)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}
