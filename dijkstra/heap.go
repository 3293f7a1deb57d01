package dijkstra

import "container/heap"

// heapRun is the lazy-decrease-key variant: improved distances push a new
// entry and stale entries are skipped when popped.
func (r *runner) heapRun(src int) {
	best := make([]int64, len(r.dist))
	for i := range best {
		best[i] = -1 // not discovered
	}
	best[src] = 0
	pq := nodePQ{{idx: src, dist: 0}}

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(nodeItem)
		u := it.idx
		if r.done.Bit(u) == 1 || it.dist != best[u] {
			continue
		}
		r.done.SetBit(u, 1)
		r.dist[u] = it.dist

		for _, a := range r.g.ArcsAt(u) {
			if r.done.Bit(a.To) == 1 {
				continue
			}
			nd := it.dist + a.Weight
			if best[a.To] >= 0 && nd >= best[a.To] {
				continue
			}
			best[a.To] = nd
			r.prev[a.To] = u
			heap.Push(&pq, nodeItem{idx: a.To, dist: nd})
		}
	}
}

// nodeItem represents a vertex and a tentative distance from the source.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
