// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Read-only query surface of the frozen Graph.
// Concurrency:
//   - Every method is safe for concurrent use; nothing here writes to g.
//   - Slices returned by ArcsAt are views into shared storage and MUST NOT be
//     modified. All other slice-returning methods return fresh copies.

package core

import (
	"fmt"
	"sort"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns the length of the raw edge sequence (undirected edges count once).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V)
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.ids))
	copy(out, g.ids)

	return out
}

// HasVertex reports whether v belongs to the vertex set.
func (g *Graph) HasVertex(v VertexID) bool {
	_, ok := g.index[v]

	return ok
}

// Index returns the dense index of v.
func (g *Graph) Index(v VertexID) (int, bool) {
	i, ok := g.index[v]

	return i, ok
}

// VertexAt returns the identifier of the vertex at dense index i.
// i must lie in [0, VertexCount()).
func (g *Graph) VertexAt(i int) VertexID { return g.ids[i] }

// ArcsAt returns the out-arcs of the vertex at dense index i, sorted by
// target index then weight. The slice is shared and read-only.
func (g *Graph) ArcsAt(i int) []IndexedArc {
	return g.arcs[g.offsets[i]:g.offsets[i+1]]
}

// OutDegree returns the number of arcs leaving v.
func (g *Graph) OutDegree(v VertexID) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return g.offsets[i+1] - g.offsets[i], nil
}

// Neighbors returns the arcs leaving v, sorted by target id then weight.
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v VertexID) ([]Arc, error) {
	i, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	run := g.ArcsAt(i)
	out := make([]Arc, len(run))
	for k, a := range run {
		out[k] = Arc{To: g.ids[a.To], Weight: a.Weight}
	}

	return out, nil
}

// Edges returns a copy of the raw edge sequence in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// SortedEdges returns the raw edge sequence sorted ascending by weight,
// ties broken by From then To. This is the scan order of Kruskal and of
// the k-clustering variant.
// Complexity: O(E log E)
func (g *Graph) SortedEdges() []Edge {
	out := g.Edges()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	return out
}

// MinWeight returns the smallest edge weight, or 0 for an edgeless graph.
func (g *Graph) MinWeight() int64 { return g.minWeight }

// MaxWeight returns the largest edge weight, or 0 for an edgeless graph.
func (g *Graph) MaxWeight() int64 { return g.maxWeight }

// InDegrees returns the number of arcs entering each dense index.
// Complexity: O(V + E)
func (g *Graph) InDegrees() []int {
	in := make([]int, len(g.ids))
	for _, a := range g.arcs {
		in[a.To]++
	}

	return in
}

// Reverse returns the graph with every edge flipped. An undirected graph is
// its own reverse, so g itself is returned.
// Complexity: O(V + E)
func (g *Graph) Reverse() *Graph {
	if !g.directed {
		return g
	}

	// Dense indices are shared with g: the vertex set does not change.
	offsets := make([]int, len(g.ids)+1)
	for _, a := range g.arcs {
		offsets[a.To+1]++
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
	arcs := make([]IndexedArc, len(g.arcs))
	cursor := make([]int, len(g.ids))
	copy(cursor, offsets[:len(g.ids)])
	// Scanning sources in ascending order keeps every reversed run sorted by target.
	for u := range g.ids {
		for _, a := range g.ArcsAt(u) {
			arcs[cursor[a.To]] = IndexedArc{To: u, Weight: a.Weight}
			cursor[a.To]++
		}
	}

	edges := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		edges[i] = Edge{From: e.To, To: e.From, Weight: e.Weight}
	}

	return &Graph{
		directed:  true,
		ids:       g.ids,
		index:     g.index,
		offsets:   offsets,
		arcs:      arcs,
		edges:     edges,
		minWeight: g.minWeight,
		maxWeight: g.maxWeight,
	}
}
