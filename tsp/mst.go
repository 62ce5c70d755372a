package tsp

import (
	"errors"

	"github.com/qwzybug/tsp/kruskal"
)

// MST computes a minimum spanning tree of the complete graph described by
// the n×n cost matrix, delegating to kruskal.MinimumSpanningTree and
// translating its sentinels into this package's error set.
//
// The returned edges are in selection order (ascending weight, ties by
// row-major enumeration); TSPApprox derives its traversal order from it.
//
// Errors: ErrDimensionMismatch, ErrAsymmetry, ErrInvalidWeight,
// ErrIncompleteGraph.
//
// Complexity: O(n² log n) time, O(n²) space.
func MST(dist [][]float64) ([]kruskal.Edge, float64, error) {
	tree, total, err := kruskal.MinimumSpanningTree(dist)
	if err != nil {
		return nil, 0, mapKruskalErr(err)
	}

	return tree, total, nil
}

// mapKruskalErr converts kruskal sentinels into tsp sentinels so that
// callers of this package deal with a single error vocabulary.
func mapKruskalErr(err error) error {
	switch {
	case errors.Is(err, kruskal.ErrDimensionMismatch):
		return ErrDimensionMismatch
	case errors.Is(err, kruskal.ErrAsymmetry):
		return ErrAsymmetry
	case errors.Is(err, kruskal.ErrInvalidWeight):
		return ErrInvalidWeight
	case errors.Is(err, kruskal.ErrDisconnected):
		return ErrIncompleteGraph
	default:
		return err
	}
}
