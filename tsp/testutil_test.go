// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package: deterministic instance generators and brute-force
// reference solvers used to cross-check the real implementations.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// costEps is the tolerance for cost comparisons; generous enough for
	// FP summation noise, far below any real cost difference in fixtures.
	costEps = 1e-9
)

// fourNodeMatrix is the canonical 4-location instance: costs
// 0-1:1, 0-2:3, 0-3:2, 1-2:2, 1-3:4, 2-3:3. Metric and symmetric.
// Optimal cycle: 0→1→2→3→0 with cost 8; the MST-based approximation
// yields 0→3→1→2→0 with cost 11.
func fourNodeMatrix() [][]float64 {
	return [][]float64{
		{0, 1, 3, 2},
		{1, 0, 2, 4},
		{3, 2, 0, 3},
		{2, 4, 3, 0},
	}
}

// makeCycleDist builds the distance matrix of an n-node ring:
// dist[i][j] = min(|i−j|, n−|i−j|). Metric; the optimal tour cost is n.
func makeCycleDist(n int) [][]float64 {
	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			d := math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// makeEuclideanDist places n deterministic points in the plane and returns
// their pairwise Euclidean distances — symmetric and metric by
// construction, with irregular enough geometry to exercise both solvers.
func makeEuclideanDist(n int) [][]float64 {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64((i*37 + 11) % 19)
		ys[i] = float64((i*53 + 7) % 23)
	}

	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			d := math.Sqrt(dx*dx + dy*dy)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist
}

// bruteForceOptimalCost finds the minimum Hamiltonian cycle cost through
// vertex 0 by enumerating all (n−1)! permutations of the interior.
// Factorial; keep n ≤ 9.
func bruteForceOptimalCost(t *testing.T, dist [][]float64) float64 {
	t.Helper()
	n := len(dist)
	require.GreaterOrEqual(t, n, 2)

	interior := make([]int, n-1)
	for i := 1; i < n; i++ {
		interior[i-1] = i
	}

	best := math.Inf(1)
	permute(interior, 0, func(p []int) {
		cost := dist[0][p[0]]
		for i := 1; i < len(p); i++ {
			cost += dist[p[i-1]][p[i]]
		}
		cost += dist[p[len(p)-1]][0]
		if cost < best {
			best = cost
		}
	})

	return best
}

// permute invokes visit for every permutation of p[k:] (in-place swaps).
func permute(p []int, k int, visit func([]int)) {
	if k == len(p)-1 {
		visit(p)
		return
	}
	for i := k; i < len(p); i++ {
		p[k], p[i] = p[i], p[k]
		permute(p, k+1, visit)
		p[k], p[i] = p[i], p[k]
	}
}

// requireValidTour asserts the closed-tour invariants: length n+1,
// anchored at 0, interior a permutation of {1..n-1}.
func requireValidTour(t *testing.T, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n+1)
	require.Equal(t, 0, tour[0])
	require.Equal(t, 0, tour[n])

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "vertex %d appears twice", v)
		seen[v] = true
	}
}
