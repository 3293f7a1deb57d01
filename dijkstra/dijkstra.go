package dijkstra

import (
	"fmt"
	"math"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every vertex reachable from it in g. Undirected graphs are traversed in
// both directions.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (core.ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//  5. maxWeight × (V−1) must fit in int64 (ErrOverflow).
//
// Complexity:
//
//   - MethodNaive: O(V·E) time, O(V) extra space.
//   - MethodHeap:  O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.Index(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("dijkstra: source %w: %d", core.ErrVertexNotFound, cfg.Source)
	}

	// 2) Pre-scan weights: negative edges, then the overflow bound
	if g.MinWeight() < 0 {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}
	n := g.VertexCount()
	if n > 1 && g.MaxWeight() > math.MaxInt64/int64(n-1) {
		return nil, fmt.Errorf("%w: max weight %d over %d vertices", ErrOverflow, g.MaxWeight(), n)
	}

	// 3) Reachable set decides which vertices are ever finalized
	reach := bfs.ReachableSet(g, src)
	total := 0
	for i := reach.OneFrom(0); i >= 0; i = reach.OneFrom(i + 1) {
		total++
	}
	if cfg.RequireConnected && total < n {
		return nil, fmt.Errorf("%w: %d of %d reachable from %d", ErrDisconnected, total, n, cfg.Source)
	}

	// 4) Run the selected frontier strategy
	r := &runner{
		g:    g,
		dist: make([]int64, n),
		prev: make([]int, n),
		done: bits.New(n),
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	switch cfg.Method {
	case MethodHeap:
		r.heapRun(src)
	default:
		r.naiveRun(src, total)
	}

	// 5) Export by vertex ID; unreachable vertices stay out of Dist
	res := &Result{
		Source:   cfg.Source,
		Dist:     make(map[core.VertexID]int64, total),
		vertices: g.Vertices(),
	}
	if cfg.ReturnPath {
		res.Prev = make(map[core.VertexID]core.VertexID, total)
	}
	for i := r.done.OneFrom(0); i >= 0; i = r.done.OneFrom(i + 1) {
		id := g.VertexAt(i)
		res.Dist[id] = r.dist[i]
		if res.Prev != nil && r.prev[i] >= 0 {
			res.Prev[id] = g.VertexAt(r.prev[i])
		}
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution, indexed
// by dense vertex index.
type runner struct {
	g    *core.Graph
	dist []int64   // final distance once done is set
	prev []int     // predecessor index, -1 for none
	done bits.Bits // finalized set X
}

// naiveRun grows X one vertex per round until it holds all total
// reachable vertices. Each round scans every arc leaving X and keeps the
// lexicographically smallest (dist[u]+w, target, u).
func (r *runner) naiveRun(src, total int) {
	r.done.SetBit(src, 1)
	r.dist[src] = 0
	xs := make([]int, 1, total)
	xs[0] = src

	for len(xs) < total {
		bestU, bestV := -1, -1
		var bestD int64
		for _, u := range xs {
			for _, a := range r.g.ArcsAt(u) {
				if r.done.Bit(a.To) == 1 {
					continue
				}
				d := r.dist[u] + a.Weight
				if bestV < 0 || d < bestD ||
					(d == bestD && (a.To < bestV || (a.To == bestV && u < bestU))) {
					bestU, bestV, bestD = u, a.To, d
				}
			}
		}
		// every vertex in the reachable set has an arc in from X until X covers it
		r.done.SetBit(bestV, 1)
		r.dist[bestV] = bestD
		r.prev[bestV] = bestU
		xs = append(xs, bestV)
	}
}
