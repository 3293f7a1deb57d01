package prim_kruskal

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/graphkit/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph by
// growing a tree from a root vertex: WithRoot, or the lowest vertex id.
//
// Steps:
//  1. Validate the graph and the root.
//  2. X = {root}. Each round scans every arc from X to a vertex outside X
//     and picks the minimum by (weight, target id, source id).
//  3. Add that vertex and edge; repeat V−1 times.
//  4. A round with no crossing arc means the graph is disconnected.
//
// Accepted edges are reported From the tree side To the new vertex.
//
// Complexity: O(V·E) time, O(V) memory.
func Prim(graph *core.Graph, opts ...Option) (*MST, error) {
	// 1. Validate
	if err := validate(graph); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := 0
	if cfg.HasRoot {
		idx, ok := graph.Index(cfg.Root)
		if !ok {
			return nil, fmt.Errorf("prim_kruskal: root %w: %d", core.ErrVertexNotFound, cfg.Root)
		}
		root = idx
	}

	n := graph.VertexCount()
	mst := &MST{Edges: make([]core.Edge, 0, n-1)}
	inTree := bits.New(n)
	inTree.SetBit(root, 1)
	xs := make([]int, 1, n)
	xs[0] = root

	// 2–3. Grow one vertex per round
	for len(xs) < n {
		bestU, bestV := -1, -1
		var bestW int64
		for _, u := range xs {
			for _, a := range graph.ArcsAt(u) {
				if inTree.Bit(a.To) == 1 {
					continue
				}
				if bestV < 0 || a.Weight < bestW ||
					(a.Weight == bestW && (a.To < bestV || (a.To == bestV && u < bestU))) {
					bestU, bestV, bestW = u, a.To, a.Weight
				}
			}
		}
		// 4. Nothing crosses the cut
		if bestV < 0 {
			return nil, fmt.Errorf("%w: tree stops at %d of %d vertices", ErrDisconnected, len(xs), n)
		}
		inTree.SetBit(bestV, 1)
		xs = append(xs, bestV)
		mst.Edges = append(mst.Edges, core.Edge{
			From:   graph.VertexAt(bestU),
			To:     graph.VertexAt(bestV),
			Weight: bestW,
		})
		mst.Total += bestW
	}

	return mst, nil
}
