package scc

import (
	"errors"
	"sort"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Kosaraju.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrUndirected is returned for undirected graphs, whose components are
	// plain connected components.
	ErrUndirected = errors.New("scc: graph must be directed")
)

// Options configures the labeling pass.
type Options struct {
	// RecursiveLabeling selects the recursive strategy of pass 1.
	RecursiveLabeling bool

	// StackBudget bounds the recursive strategy; 0 keeps dfs.DefaultStackBudget.
	StackBudget int
}

// Option mutates Options.
type Option func(*Options)

// WithRecursiveLabeling runs pass 1 with the recursive strategy on an
// enlarged goroutine stack.
func WithRecursiveLabeling() Option {
	return func(o *Options) { o.RecursiveLabeling = true }
}

// WithStackBudget sets the stack budget, in bytes, of recursive labeling.
func WithStackBudget(bytes int) Option {
	return func(o *Options) { o.StackBudget = bytes }
}

// ComponentSize pairs a component id with its vertex count.
type ComponentSize struct {
	ID   int
	Size int
}

// Result holds the component of every vertex.
type Result struct {
	// Component maps every vertex to its component id (1-based).
	Component map[core.VertexID]int

	// Sizes lists every component, largest first; equal sizes keep
	// ascending id.
	Sizes []ComponentSize

	members [][]core.VertexID // members[id-1], in discovery order
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.members) }

// Members returns the vertices of component id in the order pass 2 reached
// them, or nil for an unknown id.
func (r *Result) Members(id int) []core.VertexID {
	if id < 1 || id > len(r.members) {
		return nil
	}
	out := make([]core.VertexID, len(r.members[id-1]))
	copy(out, r.members[id-1])

	return out
}

// Largest returns up to k entries from the front of Sizes.
func (r *Result) Largest(k int) []ComponentSize {
	if k > len(r.Sizes) {
		k = len(r.Sizes)
	}
	if k < 0 {
		k = 0
	}

	return r.Sizes[:k]
}

// Same reports whether u and v are mutually reachable. Unknown vertices
// share a component with nothing.
func (r *Result) Same(u, v core.VertexID) bool {
	cu, ok1 := r.Component[u]
	cv, ok2 := r.Component[v]

	return ok1 && ok2 && cu == cv
}

// Kosaraju computes the strongly connected components of g.
//
// Steps:
//  1. Label the reversed graph in reverse postorder.
//  2. Run a forest DFS on g with roots in increasing label order; the new
//     tree hook opens the next component id, the visit hook assigns it.
//  3. Sort component sizes.
//
// Errors: ErrGraphNil, ErrUndirected, dfs.ErrStackBudgetExceeded.
func Kosaraju(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	// 1. First pass on the reversed graph
	lopts := []dfs.Option{dfs.WithStackBudget(o.StackBudget)}
	if o.RecursiveLabeling {
		lopts = append(lopts, dfs.WithRecursive())
	}
	lab, err := dfs.ReversePostorder(g.Reverse(), lopts...)
	if err != nil {
		return nil, err
	}

	// 2. Second pass; every tree is one component
	res := &Result{Component: make(map[core.VertexID]int, g.VertexCount())}
	cid := 0
	_, err = dfs.DFS(g, 0,
		dfs.WithRoots(lab.Order),
		dfs.WithOnTree(func(core.VertexID) error {
			cid++
			res.members = append(res.members, nil)
			return nil
		}),
		dfs.WithOnVisit(func(v core.VertexID) error {
			res.Component[v] = cid
			res.members[cid-1] = append(res.members[cid-1], v)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	// 3. Sizes, largest first
	res.Sizes = make([]ComponentSize, len(res.members))
	for i, m := range res.members {
		res.Sizes[i] = ComponentSize{ID: i + 1, Size: len(m)}
	}
	sort.SliceStable(res.Sizes, func(i, j int) bool {
		return res.Sizes[i].Size > res.Sizes[j].Size
	})

	return res, nil
}
