package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qwzybug/tsp/kruskal"
	"github.com/qwzybug/tsp/tsp"
)

// TestSolve_RoutesByAlgorithm verifies that the dispatcher reaches both
// solvers and that their outputs agree with the direct entry points.
func TestSolve_RoutesByAlgorithm(t *testing.T) {
	dist := fourNodeMatrix()

	approx, err := tsp.Solve(dist, tsp.NewOptions(tsp.WithAlgorithm(tsp.Approx2)))
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 1, 2, 0}, approx.Tour)
	require.Equal(t, 11.0, approx.Cost)

	exact, err := tsp.Solve(dist, tsp.NewOptions(tsp.WithAlgorithm(tsp.ExactHeldKarp)))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, exact.Tour)
	require.Equal(t, 8.0, exact.Cost)
}

// TestSolve_UnknownAlgorithm verifies the ErrUnsupportedAlgorithm sentinel.
func TestSolve_UnknownAlgorithm(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(99)

	_, err := tsp.Solve(fourNodeMatrix(), opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

// TestSolve_ValidToursBothAlgorithms checks that both solvers always emit
// closed 0-anchored permutation tours.
func TestSolve_ValidToursBothAlgorithms(t *testing.T) {
	for n := 2; n <= 8; n++ {
		dist := makeEuclideanDist(n)
		for _, algo := range []tsp.Algorithm{tsp.Approx2, tsp.ExactHeldKarp} {
			res, err := tsp.Solve(dist, tsp.NewOptions(tsp.WithAlgorithm(algo)))
			require.NoError(t, err, "n=%d algo=%d", n, algo)
			requireValidTour(t, res.Tour, n)
		}
	}
}

// TestMST_FourNodeFixture verifies the spanning-tree re-export: same tree,
// same selection order, tsp-side sentinels.
func TestMST_FourNodeFixture(t *testing.T) {
	tree, total, err := tsp.MST(fourNodeMatrix())
	require.NoError(t, err)

	require.Equal(t, []kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 3, Weight: 2},
		{From: 1, To: 2, Weight: 2},
	}, tree)
	require.Equal(t, 5.0, total)
}

// TestMST_SentinelTranslation verifies that kruskal sentinels surface as
// tsp sentinels through the re-export.
func TestMST_SentinelTranslation(t *testing.T) {
	_, _, err := tsp.MST(nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, _, err = tsp.MST([][]float64{
		{0, 1, 2},
		{2, 0, 1},
		{2, 1, 0},
	})
	require.ErrorIs(t, err, tsp.ErrAsymmetry)
}
