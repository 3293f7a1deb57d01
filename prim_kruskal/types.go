// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrEmptyGraph indicates the graph has no vertex to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root core.VertexID

	// HasRoot reports whether Root was set; otherwise Prim starts at the
	// lowest vertex id.
	HasRoot bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root core.VertexID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.HasRoot = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal without a root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// MST is a minimum spanning tree: its accepted edges, in acceptance order,
// and their total weight.
type MST struct {
	Edges []core.Edge
	Total int64
}

// Adjacency returns the tree as an undirected adjacency view: every vertex
// touched by a tree edge maps to its tree neighbors sorted by id.
func (m *MST) Adjacency() map[core.VertexID][]core.Arc {
	adj := make(map[core.VertexID][]core.Arc, len(m.Edges)+1)
	for _, e := range m.Edges {
		adj[e.From] = append(adj[e.From], core.Arc{To: e.To, Weight: e.Weight})
		adj[e.To] = append(adj[e.To], core.Arc{To: e.From, Weight: e.Weight})
	}
	for _, arcs := range adj {
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })
	}

	return adj
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph, opts...).
//	– Otherwise:     returns an error naming the method.
func Compute(graph *core.Graph, opts ...Option) (*MST, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return nil, fmt.Errorf("prim_kruskal: unknown method %q", cfg.Method)
	}
}

// validate applies the checks shared by both algorithms.
func validate(graph *core.Graph) error {
	if graph == nil || graph.Directed() {
		return ErrInvalidGraph
	}
	if graph.VertexCount() == 0 {
		return ErrEmptyGraph
	}

	return nil
}
