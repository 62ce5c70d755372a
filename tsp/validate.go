// Package tsp - validation utilities shared by both solvers.
//
// Small, deterministic, side-effect free helpers that check cost matrices
// and option combinations once at the entry points. Only sentinel errors
// from types.go are returned; no logging, no panics on user input.
package tsp

import (
	"context"
	"math"
)

// symTol is the structural tolerance for the symmetry check. Independent
// of any cost rounding; two entries further apart than this are treated
// as genuinely asymmetric.
const symTol = 1e-12

// validateDist verifies the cost-matrix contract and returns the matrix
// order n on success.
//
// Stages:
//  1. Shape: non-nil, square, n ≥ 1 (ErrDimensionMismatch).
//  2. Values: off-diagonal entries must not be NaN, negative, or −Inf
//     (ErrInvalidWeight); +Inf is allowed and means "no edge". The
//     diagonal is ignored entirely.
//  3. Symmetry: |dist[i][j] − dist[j][i]| ≤ symTol, with two +Inf entries
//     counting as equal (ErrAsymmetry).
//
// Complexity: O(n²) time, O(1) space.
func validateDist(dist [][]float64) (int, error) {
	// Stage 1: shape.
	n := len(dist)
	if n == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		i, j     int     // loop indices
		aij, aji float64 // entries under inspection
		diff     float64 // scratch for |a_ij − a_ji|
	)

	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrDimensionMismatch
		}
	}

	// Stage 2: off-diagonal values.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal is unused by contract
			}
			aij = dist[i][j]
			if math.IsNaN(aij) {
				return 0, ErrInvalidWeight
			}
			if aij < 0 {
				// Also rejects −Inf.
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
				// A one-sided missing edge is an asymmetry.
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

// solveCtx returns the effective context for a solve: Options.Ctx when
// set, context.Background() otherwise (zero-value Options stay usable).
func solveCtx(opts Options) context.Context {
	if opts.Ctx != nil {
		return opts.Ctx
	}

	return context.Background()
}

// checkCancelled performs a non-blocking poll of ctx.
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// exactCeiling returns the effective Held–Karp ceiling for opts: the
// configured value when positive, DefaultMaxExactNodes otherwise, never
// above maxMaskBits.
func exactCeiling(opts Options) int {
	c := opts.MaxExactNodes
	if c <= 0 {
		c = DefaultMaxExactNodes
	}
	if c > maxMaskBits {
		c = maxMaskBits
	}

	return c
}
