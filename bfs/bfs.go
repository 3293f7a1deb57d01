package bfs

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/graphkit/core"
)

// Reachable performs a breadth-first search from source and returns every
// vertex reachable from it, each exactly once.
//
// Steps:
//  1. Validate graph, source and options.
//  2. Seed the queue with the source at depth 0.
//  3. Dequeue, run OnVisit, then enqueue undiscovered neighbors in
//     ascending id order (skipped once MaxDepth is reached).
//
// A vertex is marked when it is enqueued, so it enters the queue once even
// when several frontier vertices point at it.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation
//   - core.ErrVertexNotFound (wrapped) if source is absent
//   - ctx.Err() on cancellation, or the error returned by OnVisit
//
// Complexity: O(V + E) time, O(V) memory.
func Reachable(g *core.Graph, source core.VertexID, opts ...Option) (*BFSResult, error) {
	// 1. Validate input and collect options
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("bfs: start %w: %d", core.ErrVertexNotFound, source)
	}

	// 2. Initialize result and the visited bitset over dense indices
	n := g.VertexCount()
	res := &BFSResult{
		Source: source,
		Order:  make([]core.VertexID, 0, n),
		Depth:  make(map[core.VertexID]int, n),
		Parent: make(map[core.VertexID]core.VertexID),
	}
	seen := bits.New(n)
	seen.SetBit(start, 1)
	depth := make([]int, n)
	queue := make([]int, 0, n)
	queue = append(queue, start)

	// 3. Main loop; the queue slice doubles as the visit order
	for head := 0; head < len(queue); head++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := queue[head]
		uid := g.VertexAt(u)
		res.Order = append(res.Order, uid)
		res.Depth[uid] = depth[u]
		if err := o.OnVisit(uid, depth[u]); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit(%d): %w", uid, err)
		}

		if o.MaxDepth > 0 && depth[u] >= o.MaxDepth {
			continue
		}
		for _, a := range g.ArcsAt(u) {
			if seen.Bit(a.To) == 1 {
				continue
			}
			seen.SetBit(a.To, 1)
			depth[a.To] = depth[u] + 1
			res.Parent[g.VertexAt(a.To)] = uid
			queue = append(queue, a.To)
		}
	}

	return res, nil
}

// ReachableSet returns a bitset over dense indices marking every vertex
// reachable from the vertex at dense index start. It is the allocation-light
// form used by algorithms that work on indices only.
// start must lie in [0, g.VertexCount()).
// Complexity: O(V + E)
func ReachableSet(g *core.Graph, start int) bits.Bits {
	seen := bits.New(g.VertexCount())
	seen.SetBit(start, 1)
	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		for _, a := range g.ArcsAt(queue[head]) {
			if seen.Bit(a.To) == 0 {
				seen.SetBit(a.To, 1)
				queue = append(queue, a.To)
			}
		}
	}

	return seen
}
