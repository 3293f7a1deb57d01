package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph
// using a disjoint-set forest with path compression and union by rank.
//
// Steps:
//  1. Validate the graph; a single vertex yields an empty tree.
//  2. Scan edges ascending by (weight, from, to), skipping self-loops.
//  3. Accept an edge iff its endpoints lie in different sets, then union them.
//  4. Stop at V−1 accepted edges; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*MST, error) {
	// 1. Validate
	if err := validate(graph); err != nil {
		return nil, err
	}
	n := graph.VertexCount()
	mst := &MST{Edges: make([]core.Edge, 0, n-1)}
	if n == 1 {
		return mst, nil
	}

	// 2–3. Scan sorted edges
	forest := dsu.New(n)
	for _, e := range graph.SortedEdges() {
		if e.From == e.To {
			continue
		}
		u, _ := graph.Index(e.From)
		v, _ := graph.Index(e.To)
		if !forest.Union(u, v) {
			continue
		}
		mst.Edges = append(mst.Edges, e)
		mst.Total += e.Weight
		// 4. Early exit once the tree spans
		if len(mst.Edges) == n-1 {
			return mst, nil
		}
	}

	return nil, fmt.Errorf("%w: %d components remain", ErrDisconnected, forest.Count())
}
