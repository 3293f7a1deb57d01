// Package dfs defines types and options for depth-first traversal and
// reverse-postorder labeling, including cancellation, hooks, forest
// traversal and the recursion stack budget.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, HasCycle or ReversePostorder.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort could not order every
	// vertex because the graph contains a directed cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates an ordering operation was asked of an
	// undirected graph.
	ErrUndirected = errors.New("dfs: graph must be directed")

	// ErrStackBudgetExceeded indicates the recursive labeling would need
	// more stack than the configured budget allows.
	ErrStackBudgetExceeded = errors.New("dfs: recursion exceeds stack budget")
)

// DefaultStackBudget is the maximum goroutine stack granted to recursive
// labeling when WithStackBudget is not given. It matches the runtime's
// default ceiling on 64-bit platforms and fits chains of about two million
// vertices.
const DefaultStackBudget = 1 << 30

const (
	// frameBytes bounds the stack one recursive visit call occupies.
	// TestVisitFrameSize measures the real frame against it; the headroom
	// covers race and coverage instrumentation.
	frameBytes = 512

	// stackSlack covers the worker goroutine's base frames and the
	// runtime's stack guard.
	stackSlack = 16 << 10
)

// Option configures optional behavior of DFS and ReversePostorder.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for depth-first traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is popped and marked
	// explored (pre-order). Returning an error aborts traversal.
	OnVisit func(id core.VertexID) error

	// OnTree, if non-nil, is invoked with the root of every new DFS tree
	// before that tree is explored.
	OnTree func(root core.VertexID) error

	// FullTraversal, if true, starts a new tree from every unexplored
	// vertex, covering disconnected components.
	FullTraversal bool

	// Roots, if non-nil, replaces ascending id as the order in which a full
	// traversal tries tree roots.
	Roots []core.VertexID

	// Recursive selects the recursive labeling strategy in ReversePostorder.
	Recursive bool

	// StackBudget bounds the goroutine stack of the recursive strategy.
	StackBudget int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - Single-source traversal (FullTraversal = false)
//   - Iterative labeling with DefaultStackBudget reserved for recursion
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:         context.Background(),
		StackBudget: DefaultStackBudget,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnTree returns an Option that installs fn as the new-tree hook.
func WithOnTree(fn func(root core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnTree = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithRoots returns an Option that enables forest traversal and sets the
// order in which roots are tried. Vertices already explored when their
// turn comes are skipped; unknown ids are ignored.
func WithRoots(roots []core.VertexID) Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
		o.Roots = roots
	}
}

// WithRecursive selects the recursive strategy for ReversePostorder.
func WithRecursive() Option {
	return func(o *DFSOptions) {
		o.Recursive = true
	}
}

// WithStackBudget sets the stack budget, in bytes, of the recursive
// strategy. Non-positive values keep the default.
func WithStackBudget(bytes int) Option {
	return func(o *DFSOptions) {
		if bytes > 0 {
			o.StackBudget = bytes
		}
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were explored (pre-order).
	Order []core.VertexID

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots do not appear in this map.
	Parent map[core.VertexID]core.VertexID

	// Visited flags which vertices were explored.
	Visited map[core.VertexID]bool

	// Trees counts the DFS trees started.
	Trees int
}

// Labeling is the reverse-postorder labeling of a directed graph.
type Labeling struct {
	// Label maps every vertex to a distinct label in 1..n; the vertex
	// finished last receives 1.
	Label map[core.VertexID]int

	// Order lists vertices by increasing label: Order[i] carries label i+1.
	Order []core.VertexID
}
