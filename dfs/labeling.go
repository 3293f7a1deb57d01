package dfs

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/graphkit/core"
)

// labeler holds the state shared by both labeling strategies.
type labeler struct {
	graph   *core.Graph
	opts    DFSOptions
	visited bits.Bits
	label   []int // dense index → label, 0 while unfinished
	next    int   // label handed to the next vertex that finishes
}

// ReversePostorder labels every vertex of the directed graph g with a
// distinct integer in 1..n: a DFS is started from each unvisited vertex in
// ascending id, children are explored in ascending id, and each vertex takes
// the current label (starting at n, decreasing) when it finishes.
//
// For every edge u→v of a DAG, Label[u] < Label[v], so Order is a
// topological order. On a cyclic graph the labels still order the vertices
// by decreasing finish time, which is what Kosaraju's second pass consumes.
//
// The iterative strategy is the default. WithRecursive runs the recursive
// strategy on a dedicated goroutine with an enlarged stack (see
// WithStackBudget).
//
// Errors: ErrGraphNil, ErrUndirected, ErrStackBudgetExceeded, ctx.Err().
// Complexity: O(V + E) time, O(V) memory.
func ReversePostorder(g *core.Graph, opts ...Option) (*Labeling, error) {
	// 1. Validate graph pointer and orientation
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Label with the chosen strategy
	n := g.VertexCount()
	l := &labeler{
		graph:   g,
		opts:    dopts,
		visited: bits.New(n),
		label:   make([]int, n),
		next:    n,
	}
	var err error
	if dopts.Recursive {
		err = l.runRecursive()
	} else {
		err = l.runIterative()
	}
	if err != nil {
		return nil, err
	}

	// 4. Expose labels by id and the increasing-label order
	res := &Labeling{
		Label: make(map[core.VertexID]int, n),
		Order: make([]core.VertexID, n),
	}
	for v, lab := range l.label {
		id := g.VertexAt(v)
		res.Label[id] = lab
		res.Order[lab-1] = id
	}

	return res, nil
}

// cursor is one frame of the iterative strategy: vertex v and the position
// of the next arc to inspect.
type cursor struct {
	v, next int
}

// runIterative simulates the recursion with an explicit frame stack.
func (l *labeler) runIterative() error {
	n := l.graph.VertexCount()
	stack := make([]cursor, 0, 64)
	for root := 0; root < n; root++ {
		if l.visited.Bit(root) == 1 {
			continue
		}
		select {
		case <-l.opts.Ctx.Done():
			return l.opts.Ctx.Err()
		default:
		}

		l.visited.SetBit(root, 1)
		stack = append(stack, cursor{v: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			arcs := l.graph.ArcsAt(top.v)

			// advance to the next unvisited child, if any
			for top.next < len(arcs) && l.visited.Bit(arcs[top.next].To) == 1 {
				top.next++
			}
			if top.next < len(arcs) {
				child := arcs[top.next].To
				top.next++
				l.visited.SetBit(child, 1)
				stack = append(stack, cursor{v: child})
				continue
			}

			// all children done: v finishes
			l.finish(top.v)
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

// finish hands the current label to v.
func (l *labeler) finish(v int) {
	l.label[v] = l.next
	l.next--
}
