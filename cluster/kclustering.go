package cluster

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dsu"
)

// KResult is the outcome of KClustering.
type KResult struct {
	// Accepted lists the merging edges in scan order.
	Accepted []core.Edge

	// Component maps every vertex to its cluster, 0..Count-1, numbered in
	// ascending order of each cluster's lowest vertex id.
	Component map[core.VertexID]int

	// Count is the number of clusters, always k on success.
	Count int

	// Spacing is the weight of the first edge after stopping whose
	// endpoints lie in different clusters. Valid only if HasSpacing.
	Spacing    int64
	HasSpacing bool
}

// KClustering partitions the vertices of g into k clusters of maximum
// spacing. Edges are scanned ascending by (weight, from, to) with direction
// ignored; self-loops never merge anything.
//
// Steps:
//  1. Validate g and k.
//  2. Union endpoints of each edge joining two clusters until V−k unions
//     have happened.
//  3. Continue the scan to the first edge still joining two clusters; its
//     weight is the spacing.
//
// Errors: ErrNilGraph, ErrInvalidK, ErrDisconnected.
// Complexity: O(E log E + α(V)·E).
func KClustering(g *core.Graph, k int) (*KResult, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d, V=%d", ErrInvalidK, k, n)
	}

	// 2. Merge cheapest edges first
	edges := g.SortedEdges()
	forest := dsu.New(n)
	res := &KResult{}
	i := 0
	for ; i < len(edges) && forest.Count() > k; i++ {
		e := edges[i]
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		if forest.Union(u, v) {
			res.Accepted = append(res.Accepted, e)
		}
	}
	if forest.Count() > k {
		return nil, fmt.Errorf("%w: %d components, k=%d", ErrDisconnected, forest.Count(), k)
	}

	// 3. First crossing edge in the remaining scan
	for ; i < len(edges); i++ {
		u, _ := g.Index(edges[i].From)
		v, _ := g.Index(edges[i].To)
		if !forest.Same(u, v) {
			res.Spacing, res.HasSpacing = edges[i].Weight, true
			break
		}
	}

	labels := forest.Labels()
	res.Component = make(map[core.VertexID]int, n)
	for idx, l := range labels {
		res.Component[g.VertexAt(idx)] = l
	}
	res.Count = forest.Count()

	return res, nil
}
