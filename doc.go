// Package graphkit is a small, dependency-light engine for the classic graph
// algorithms: ordering, components, shortest paths, spanning trees and
// clustering, all over one immutable adjacency store.
//
// 🚀 What is graphkit?
//
//	An in-memory toolkit that brings together:
//		• Graph store: sparse uint64 vertex ids, CSR adjacency, raw edge list
//		• Disjoint-set forest: union by size + path compression
//		• Traversals: BFS reachability, iterative DFS, Kahn topological sort
//		• Reverse-postorder labeling that survives million-vertex chains
//		• Strongly connected components: Kosaraju
//		• Shortest paths: Dijkstra (naive scan or binary heap)
//		• Minimum spanning trees: Prim, Kruskal
//		• Clustering: max-spacing k-clustering, Hamming-distance clustering
//
// ✨ Why graphkit?
//
//   - Deterministic – every tie is broken by vertex id, so runs are reproducible
//   - Deep-graph safe – no algorithm recurses on the goroutine stack by default
//   - Explicit – unreachable vertices are reported, never hidden behind a sentinel
//   - Read-only graphs – a built core.Graph is safe for concurrent algorithm calls
//
// Layout:
//
//	core/         — VertexID, Edge, Builder and the frozen Graph
//	dsu/          — disjoint-set forest over dense indices
//	bfs/          — breadth-first reachability
//	dfs/          — DFS, topological sort, reverse-postorder labeling
//	scc/          — Kosaraju strongly connected components
//	dijkstra/     — single-source shortest paths
//	prim_kruskal/ — minimum spanning trees
//	cluster/      — k-clustering and Hamming clustering
//	builder/      — deterministic fixture constructors
//	loader/       — edge-list, adjacency and label file readers
//	cmd/graphkit/ — the command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	g, _ := core.FromEdges([]core.Edge{{1, 2, 1}, {2, 3, 2}, {3, 4, 3}, {4, 1, 4}}, nil)
//	mst, _ := prim_kruskal.Kruskal(g) // mst.Total == 6
//
//	go install github.com/katalvlaran/graphkit/cmd/graphkit@latest
package graphkit
