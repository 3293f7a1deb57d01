package dfs

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/graphkit/core"
)

// frame is one pending stack entry: vertex v, reached from parent
// (-1 for a tree root).
type frame struct {
	v, parent int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    *core.Graph
	opts     DFSOptions
	res      *DFSResult
	explored bits.Bits
	stack    []frame
}

// DFS performs depth-first search on graph g from start. With
// WithFullTraversal (or WithRoots) it covers every vertex, starting a new
// tree from each unexplored root in turn; start is then ignored.
//
// The explored check happens when a vertex is popped, so a vertex pushed
// several times is visited once. Neighbors are pushed in descending id,
// which makes the lowest-id neighbor the next one explored.
//
// Returns DFSResult or an error if aborted by context or hook; on abort the
// partial result is returned alongside the error.
func DFS(g *core.Graph, start core.VertexID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:   make([]core.VertexID, 0, n),
			Parent:  make(map[core.VertexID]core.VertexID, n),
			Visited: make(map[core.VertexID]bool, n),
		},
		explored: bits.New(n),
		stack:    make([]frame, 0, n),
	}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		root, _ := g.Index(start)
		return w.res, w.tree(root)
	}
	if dopts.Roots != nil {
		for _, id := range dopts.Roots {
			root, ok := g.Index(id)
			if !ok || w.explored.Bit(root) == 1 {
				continue
			}
			if err := w.tree(root); err != nil {
				return w.res, err
			}
		}
		return w.res, nil
	}
	for root := 0; root < n; root++ {
		if w.explored.Bit(root) == 1 {
			continue
		}
		if err := w.tree(root); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// tree explores every vertex reachable from root that is not explored yet.
func (w *dfsWalker) tree(root int) error {
	rootID := w.graph.VertexAt(root)
	w.res.Trees++
	if w.opts.OnTree != nil {
		if err := w.opts.OnTree(rootID); err != nil {
			return fmt.Errorf("dfs: OnTree hook for %d: %w", rootID, err)
		}
	}

	w.stack = append(w.stack[:0], frame{v: root, parent: -1})
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop; skip if already explored through another path
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.explored.Bit(top.v) == 1 {
			continue
		}

		// 3. Mark explored and record
		w.explored.SetBit(top.v, 1)
		id := w.graph.VertexAt(top.v)
		w.res.Visited[id] = true
		w.res.Order = append(w.res.Order, id)
		if top.parent >= 0 {
			w.res.Parent[id] = w.graph.VertexAt(top.parent)
		}

		// 4. Pre-order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
			}
		}

		// 5. Push unexplored neighbors, highest target first
		arcs := w.graph.ArcsAt(top.v)
		for i := len(arcs) - 1; i >= 0; i-- {
			if w.explored.Bit(arcs[i].To) == 0 {
				w.stack = append(w.stack, frame{v: arcs[i].To, parent: top.v})
			}
		}
	}

	return nil
}
