package cli

import (
	"fmt"
	"io"
)

// ParseInstance reads a whitespace-separated TSP instance: the first token
// is the location count n, followed by n×n cost entries in row-major
// order. Inf (in any capitalization Go's scanner accepts, e.g. "+Inf")
// marks a missing edge.
//
// The matrix contents are not validated here; the solvers own that
// contract and report their own sentinels.
func ParseInstance(r io.Reader) ([][]float64, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("cli: reading location count: %w", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("cli: location count must be positive, got %d", n)
	}

	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if _, err := fmt.Fscan(r, &dist[i][j]); err != nil {
				return nil, fmt.Errorf("cli: reading cost[%d][%d]: %w", i, j, err)
			}
		}
	}

	return dist, nil
}

// demoInstance returns the built-in 4-location demo matrix used when no
// instance file is given: costs 0-1:1, 0-2:3, 0-3:2, 1-2:2, 1-3:4, 2-3:3.
func demoInstance() [][]float64 {
	return [][]float64{
		{0, 1, 3, 2},
		{1, 0, 2, 4},
		{3, 2, 0, 3},
		{2, 4, 3, 0},
	}
}
