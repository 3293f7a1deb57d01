// Package bfs provides breadth-first reachability over a core.Graph,
// returning the visit order, hop depths and parent links of every vertex
// reachable from a source.
//
// What
//
//   - Explore vertices in non-decreasing hop count from the source.
//   - Neighbors are enqueued in ascending vertex id (core adjacency order),
//     so the visit sequence is fully reproducible.
//   - Hooks: OnVisit may abort the search with an error.
//   - MaxDepth bounds the number of hops (d > 0), 0 means unlimited.
//
// Why
//
//   - The naive Dijkstra in package dijkstra seeds its "not yet finalized"
//     set with exactly the vertices Reachable discovers, so unreachable
//     vertices never receive a finite distance.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, a visited bitset and the result maps.
package bfs
