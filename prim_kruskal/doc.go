// Package prim_kruskal computes minimum spanning trees of undirected graphs
// with integer edge weights.
//
// What:
//
//   - Prim grows a tree from a root. It keeps no priority queue: every
//     round scans all arcs leaving the tree and adds the cheapest one,
//     ties broken by (target id, source id). O(V·E) worst case.
//   - Kruskal scans edges ascending by (weight, from, to) and accepts an
//     edge whenever a disjoint-set forest shows its endpoints still apart,
//     stopping after V−1 acceptances. O(E log E).
//   - Compute dispatches by MSTOptions.Method.
//
// Both return the same total weight on any connected graph. With distinct
// weights they return the same edge set.
//
// Errors:
//
//   - ErrInvalidGraph  graph is nil or directed.
//   - ErrEmptyGraph    graph has no vertices.
//   - ErrDisconnected  no tree spans every vertex.
//   - core.ErrVertexNotFound (wrapped) unknown Prim root.
//
// A single-vertex graph yields an empty tree of weight 0. Self-loops never
// enter a tree.
package prim_kruskal
