// Package dijkstra computes single-source shortest paths on graphs with
// non-negative integer edge weights.
//
// Overview:
//
//   - MethodNaive (default) keeps an explored set X, initially {source}.
//     Every round scans all arcs leaving X and moves the endpoint with the
//     smallest dist[u]+w into X. No priority queue; O(V·E) worst case.
//   - MethodHeap is the classic lazy-decrease-key binary heap variant,
//     O((V + E) log V). Both methods return identical distances.
//
// Reachability:
//
//	Before the main loop a breadth-first search discovers exactly the
//	vertices reachable from the source. Only those are ever finalized;
//	every other vertex is reported unreachable (absent from Result.Dist)
//	rather than carrying a numeric "infinity".
//
// Determinism:
//
//	Ties between equal candidate distances go to the lowest target index,
//	then the lowest source index, so repeated runs agree exactly.
//
// Errors (sentinel):
//
//   - ErrNoSource:       Source option missing.
//   - ErrNilGraph:       nil *core.Graph.
//   - core.ErrVertexNotFound (wrapped): source not in the graph.
//   - ErrNegativeWeight: some edge weight below zero.
//   - ErrOverflow:       maxWeight × (V−1) does not fit in int64.
//   - ErrDisconnected:   WithRequireConnected and some vertex unreachable.
package dijkstra
