// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Edge, Arc, Graph and Builder declarations plus sentinel errors.
// Policy:
//   - Graph is immutable after Build; no locks are needed for reads.
//   - Builder is single-goroutine; it is discarded (or reused) after Build.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// VertexID identifies a vertex. Identifier spaces may be dense or sparse.
type VertexID uint64

// Edge is one entry of the raw edge sequence: From→To with an integer Weight.
// In undirected graphs the orientation is only the order the edge was added in.
type Edge struct {
	// From is the source vertex ID.
	From VertexID

	// To is the destination vertex ID.
	To VertexID

	// Weight is the cost of the edge (zero for unweighted inputs).
	Weight int64
}

// Arc is an adjacency entry expressed with vertex identifiers.
type Arc struct {
	To     VertexID
	Weight int64
}

// IndexedArc is an adjacency entry expressed with dense vertex indices.
// Algorithms iterate these to avoid map lookups in hot loops.
type IndexedArc struct {
	To     int
	Weight int64
}

// GraphOption configures a Builder before any vertex or edge is added.
type GraphOption func(b *Builder)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(b *Builder) { b.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(b *Builder) { b.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(b *Builder) { b.allowMulti = true }
}

// Graph is the frozen adjacency representation.
//
// ids holds the vertex set in ascending order; index is its inverse.
// The arcs of dense vertex i are arcs[offsets[i]:offsets[i+1]].
type Graph struct {
	directed bool

	ids     []VertexID
	index   map[VertexID]int
	offsets []int
	arcs    []IndexedArc

	edges []Edge

	minWeight int64
	maxWeight int64
}

// Builder accumulates vertices and edges and freezes them into a Graph.
type Builder struct {
	directed   bool
	allowLoops bool
	allowMulti bool

	vertices map[VertexID]struct{}
	edges    []Edge
	pairs    map[[2]VertexID]struct{} // endpoint pairs seen, for multi-edge checks
}
