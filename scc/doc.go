// Package scc finds the strongly connected components of a directed
// core.Graph with Kosaraju's two-pass algorithm.
//
// Pass 1 computes a reverse-postorder labeling of the reversed graph
// (dfs.ReversePostorder). Pass 2 walks the original graph, trying roots in
// increasing label order, i.e. decreasing finish time; every DFS tree of
// that pass is exactly one component. Component ids start at 1 in the
// order the trees are discovered.
//
// Two vertices share a component iff each is reachable from the other.
//
// Complexity: O(V + E) time, O(V + E) memory (the reversed graph).
package scc
