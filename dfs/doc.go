// Package dfs implements depth-first traversal, Kahn topological sort and
// reverse-postorder labeling on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Iterative with an explicit stack, so deep graphs never
//     exhaust the goroutine stack. Supports:
//   - Pre-order hook (OnVisit) and new-tree hook (OnTree)
//   - Cancellation via context.Context
//   - Full (forest) traversal with a caller-chosen root order
//   - TopologicalSort: Kahn's algorithm, seeding the queue in ascending
//     vertex id; returns ErrCycleDetected if some vertices never reach
//     in-degree zero.
//   - ReversePostorder: labels every vertex n..1 in the order DFS finishes
//     it. For a DAG the resulting Order is a topological order; on the
//     reversed graph it is the first pass of Kosaraju.
//   - HasCycle: cycle check on directed graphs via Kahn.
//
// Deep recursion:
//
//	ReversePostorder runs iteratively by default. WithRecursive switches to
//	the classic recursive formulation, executed on a dedicated goroutine
//	whose maximum stack is raised to a configured budget
//	(WithStackBudget, default DefaultStackBudget). If the graph is too
//	large for the budget the call fails with ErrStackBudgetExceeded before
//	any work starts; a stack overflow is never the failure mode.
//
// Complexity:
//
//   - DFS:              Time O(V+E), Memory O(V)
//   - TopologicalSort:  Time O(V+E), Memory O(V)
//   - ReversePostorder: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrUndirected           ordering requested on an undirected graph
//   - ErrCycleDetected        Kahn could not order every vertex
//   - ErrStackBudgetExceeded  recursive labeling would not fit its stack
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnTree
package dfs
