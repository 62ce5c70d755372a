package tsp

import (
	"context"
	"errors"
)

// Sentinel errors returned by the tour solvers. Tests and callers match
// them with errors.Is; they are never wrapped when returned directly.
var (
	// ErrDimensionMismatch indicates that the cost matrix is nil, empty,
	// or not square n×n.
	ErrDimensionMismatch = errors.New("tsp: cost matrix must be square n×n, n ≥ 1")

	// ErrAsymmetry indicates that dist[i][j] != dist[j][i] beyond tolerance.
	// Both solvers require symmetric costs.
	ErrAsymmetry = errors.New("tsp: cost matrix is not symmetric")

	// ErrInvalidWeight indicates a negative, NaN or −Inf cost entry.
	// +Inf is legal off-diagonal and denotes a missing edge.
	ErrInvalidWeight = errors.New("tsp: negative or non-finite edge weight")

	// ErrIncompleteGraph indicates that missing (+Inf) edges leave the
	// instance without any spanning tree or Hamiltonian cycle.
	ErrIncompleteGraph = errors.New("tsp: incomplete cost matrix admits no tour")

	// ErrSubsetOverflow indicates that n exceeds the configured ceiling for
	// the bitmask-indexed dynamic program (Options.MaxExactNodes).
	ErrSubsetOverflow = errors.New("tsp: instance too large for subset dynamic program")

	// ErrInternalInvariant indicates that tour reconstruction found no
	// candidate vertex at some step. This cannot happen for inputs that
	// passed validation; it marks a logic defect and is never swallowed.
	ErrInternalInvariant = errors.New("tsp: internal invariant violated during reconstruction")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// TSResult holds the outcome of a tour solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64
}

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Approx2 selects the metric 2-approximation (MST + shortcut walk).
	Approx2 Algorithm = iota

	// ExactHeldKarp selects the exact Held–Karp dynamic program.
	ExactHeldKarp
)

// DefaultMaxExactNodes is the default ceiling for the exact solver.
// At n == 25 the DP table alone needs 2²⁵·25 float64 cells (≈6.7 GiB);
// anything larger fails fast with ErrSubsetOverflow instead of attempting
// the allocation.
const DefaultMaxExactNodes = 25

// maxMaskBits caps MaxExactNodes so that the subset bitmask arithmetic
// (1 << n) stays within a 64-bit signed integer.
const maxMaskBits = 62

// Options configures the tour solvers.
//
// Algo          – algorithm selector for Solve; ignored by the direct
// entry points TSPApprox/TSPExact.
// Ctx           – cancellation/deadline token; checked per DP subset in the
// exact solver and between phases of the approximation.
// MaxExactNodes – ceiling on n for the exact solver; inputs above it are
// rejected with ErrSubsetOverflow before any 2ⁿ allocation.
type Options struct {
	Algo          Algorithm       // which solver Solve dispatches to
	Ctx           context.Context // cancellation token for long solves
	MaxExactNodes int             // Held–Karp size ceiling
}

// Option represents a functional option for configuring solvers.
type Option func(*Options)

// WithAlgorithm sets the solver Solve dispatches to.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithContext attaches a cancellation/deadline context to the solve.
// The exact solver polls it once per DP subset; the approximation checks
// it between phases.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExactNodes overrides the exact-solver ceiling. Must be positive
// and at most 62 (the bitmask width limit); invalid values panic, as they
// indicate a programming error rather than bad problem input.
func WithMaxExactNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 || n > maxMaskBits {
			panic(ErrSubsetOverflow.Error())
		}
		o.MaxExactNodes = n
	}
}

// DefaultOptions returns Options with sensible defaults:
//
//   - Algo:          Approx2 (polynomial-time, metric instances)
//   - Ctx:           context.Background() (no cancellation)
//   - MaxExactNodes: DefaultMaxExactNodes
func DefaultOptions() Options {
	return Options{
		Algo:          Approx2,
		Ctx:           context.Background(),
		MaxExactNodes: DefaultMaxExactNodes,
	}
}

// NewOptions builds Options from DefaultOptions plus the given overrides.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}
