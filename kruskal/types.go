package kruskal

import "errors"

// Sentinel errors returned by the spanning-tree builder. Callers match them
// with errors.Is; they are never wrapped when returned directly.
var (
	// ErrDimensionMismatch indicates that the cost matrix is nil, empty,
	// or not square n×n.
	ErrDimensionMismatch = errors.New("kruskal: cost matrix must be square n×n, n ≥ 1")

	// ErrAsymmetry indicates that dist[i][j] != dist[j][i] beyond tolerance.
	// A spanning tree over an undirected graph needs symmetric costs.
	ErrAsymmetry = errors.New("kruskal: cost matrix is not symmetric")

	// ErrInvalidWeight indicates a negative, NaN or −Inf cost entry.
	// +Inf is legal and denotes a missing edge.
	ErrInvalidWeight = errors.New("kruskal: negative or non-finite edge weight")

	// ErrDisconnected indicates that the scan exhausted all finite edges
	// before selecting n−1 of them; no spanning tree exists.
	ErrDisconnected = errors.New("kruskal: graph is disconnected")
)

// Edge is an undirected edge of the complete graph: an unordered vertex
// pair plus its cost. Builders always emit From < To.
type Edge struct {
	From   int     // lower endpoint index
	To     int     // higher endpoint index
	Weight float64 // non-negative edge cost
}
