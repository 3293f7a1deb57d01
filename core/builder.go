// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable assembly of vertices and edges, frozen into a Graph by Build.
// Determinism:
//   - Build sorts vertices ascending and arcs by (target, weight), so two
//     builders fed the same edges in any order produce identical adjacency.

package core

import (
	"fmt"
	"math"
	"sort"
)

// NewBuilder creates an empty Builder. By default the resulting Graph is
// undirected, without self-loops and without parallel edges.
// Complexity: O(1)
func NewBuilder(opts ...GraphOption) *Builder {
	b := &Builder{
		vertices: make(map[VertexID]struct{}),
		pairs:    make(map[[2]VertexID]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddVertex registers v. Adding an existing vertex is a no-op.
// Isolated vertices are part of the vertex set even without edges.
func (b *Builder) AddVertex(v VertexID) {
	b.vertices[v] = struct{}{}
}

// AddEdge appends the edge from→to with the given weight, registering both
// endpoints. Undirected builders treat (u,v) and (v,u) as the same pair for
// the multi-edge check.
//
// Errors:
//   - ErrLoopNotAllowed      if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if the pair already exists without WithMultiEdges.
func (b *Builder) AddEdge(from, to VertexID, weight int64) error {
	// 1. Self-loop policy
	if from == to && !b.allowLoops {
		return fmt.Errorf("%w: %d→%d", ErrLoopNotAllowed, from, to)
	}

	// 2. Multi-edge policy; undirected pairs are normalized low→high
	key := [2]VertexID{from, to}
	if !b.directed && to < from {
		key = [2]VertexID{to, from}
	}
	if _, dup := b.pairs[key]; dup && !b.allowMulti {
		return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}
	b.pairs[key] = struct{}{}

	// 3. Register endpoints and record the raw edge
	b.vertices[from] = struct{}{}
	b.vertices[to] = struct{}{}
	b.edges = append(b.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// HasEdge reports whether the pair from→to was already added (either
// orientation for undirected builders).
func (b *Builder) HasEdge(from, to VertexID) bool {
	key := [2]VertexID{from, to}
	if !b.directed && to < from {
		key = [2]VertexID{to, from}
	}
	_, ok := b.pairs[key]

	return ok
}

// Directed reports the orientation the built Graph will have.
func (b *Builder) Directed() bool { return b.directed }

// Build freezes the accumulated vertices and edges into an immutable Graph.
// The Builder stays usable; later additions do not affect graphs already built.
//
// Steps:
//  1. Sort vertex IDs ascending and assign dense indices.
//  2. Count out-arcs per vertex (two per undirected non-loop edge).
//  3. Fill the CSR arc array, then sort every run by (target, weight).
//
// Complexity: O(V log V + E log d) time, O(V + E) memory.
func (b *Builder) Build() *Graph {
	// 1. Vertex set and dense index
	ids := make([]VertexID, 0, len(b.vertices))
	for v := range b.vertices {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[VertexID]int, len(ids))
	for i, v := range ids {
		index[v] = i
	}

	// 2. Out-degree counts → offsets
	offsets := make([]int, len(ids)+1)
	for _, e := range b.edges {
		offsets[index[e.From]+1]++
		if !b.directed && e.From != e.To {
			offsets[index[e.To]+1]++
		}
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}

	// 3. Fill arcs using a moving cursor per vertex
	arcs := make([]IndexedArc, offsets[len(ids)])
	cursor := make([]int, len(ids))
	copy(cursor, offsets[:len(ids)])
	minW, maxW := int64(math.MaxInt64), int64(math.MinInt64)
	for _, e := range b.edges {
		u, v := index[e.From], index[e.To]
		arcs[cursor[u]] = IndexedArc{To: v, Weight: e.Weight}
		cursor[u]++
		if !b.directed && u != v {
			arcs[cursor[v]] = IndexedArc{To: u, Weight: e.Weight}
			cursor[v]++
		}
		if e.Weight < minW {
			minW = e.Weight
		}
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}
	if len(b.edges) == 0 {
		minW, maxW = 0, 0
	}
	for i := range ids {
		run := arcs[offsets[i]:offsets[i+1]]
		sort.Slice(run, func(x, y int) bool {
			if run[x].To != run[y].To {
				return run[x].To < run[y].To
			}
			return run[x].Weight < run[y].Weight
		})
	}

	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)

	return &Graph{
		directed:  b.directed,
		ids:       ids,
		index:     index,
		offsets:   offsets,
		arcs:      arcs,
		edges:     edges,
		minWeight: minW,
		maxWeight: maxW,
	}
}

// FromEdges is a shorthand for NewBuilder(opts...), AddEdge for every edge,
// AddVertex for every extra vertex, then Build.
func FromEdges(edges []Edge, vertices []VertexID, opts ...GraphOption) (*Graph, error) {
	b := NewBuilder(opts...)
	for _, v := range vertices {
		b.AddVertex(v)
	}
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
