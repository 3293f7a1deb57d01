package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// TopologicalSort computes a topological ordering of all vertices in g
// using Kahn's algorithm: every vertex with no incoming edge seeds a FIFO
// queue in ascending id; dequeuing a vertex decrements its successors'
// in-degree and enqueues those reaching zero.
//
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirected.
// If fewer than V vertices could be ordered, returns ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph) ([]core.VertexID, error) {
	// 1. Validate graph pointer and orientation
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	// 2. Seed the queue with every vertex of in-degree zero, ascending
	n := g.VertexCount()
	indeg := g.InDegrees()
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 3. Drain; the queue slice itself becomes the order
	for head := 0; head < len(queue); head++ {
		for _, a := range g.ArcsAt(queue[head]) {
			indeg[a.To]--
			if indeg[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	// 4. Anything left over sits on or behind a cycle
	if len(queue) < n {
		return nil, fmt.Errorf("%w: ordered %d of %d vertices", ErrCycleDetected, len(queue), n)
	}

	order := make([]core.VertexID, n)
	for i, v := range queue {
		order[i] = g.VertexAt(v)
	}

	return order, nil
}

// HasCycle reports whether the directed graph g contains a directed cycle
// (self-loops included).
func HasCycle(g *core.Graph) (bool, error) {
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
