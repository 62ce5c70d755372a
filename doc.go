// Package tsp is a small, focused library for computing travel tours over
// complete weighted graphs — the classic Travelling Salesman Problem.
//
// What it offers:
//
//   - A fast polynomial-time 2-approximation for metric instances
//     (minimum spanning tree + depth-first shortcutting).
//   - An exact exponential-time optimal solver
//     (Held–Karp subset dynamic programming).
//
// Everything is organized under three subpackages:
//
//	unionfind/ — disjoint-set forest (path compression + union by rank)
//	kruskal/   — minimum spanning tree over a dense symmetric cost matrix
//	tsp/       — tour construction: 2-approximate and exact solvers
//
// A thin command-line harness lives under cmd/tsp; it is an ordinary
// external caller of the library and owns all presentation concerns.
//
// Design notes:
//
//   - Inputs are dense n×n cost matrices ([][]float64), symmetric, with
//     non-negative finite entries; +Inf marks a missing edge.
//   - Tours are []int sequences of length n+1 starting and ending at 0.
//   - All solvers are synchronous, deterministic, and allocation-conscious;
//     long-running exact solves honor context cancellation.
//
//	go get github.com/qwzybug/tsp
package tsp
