// Package core provides the immutable Graph Store shared by every algorithm
// in graphkit.
//
// A Graph G = (V,E) is assembled once through a Builder and then frozen by
// Build. After that point no method mutates it, so a single *Graph may be
// handed to any number of concurrent algorithm invocations without locking.
//
// Representation:
//
//   - Vertex identifiers are unsigned integers (VertexID). They may be dense
//     (0..n-1) or sparse naturals; nothing assumes contiguity.
//   - Every vertex also owns a dense index in [0, VertexCount()). Dense
//     indices follow ascending VertexID order, so "lowest index" and
//     "lowest id" are the same tie-break key.
//   - Adjacency is stored in compressed-sparse-row form: the out-arcs of the
//     vertex at index i live in one contiguous run, sorted by target index
//     and then by weight. Iteration order is therefore fully deterministic
//     and never depends on map iteration.
//   - Undirected edges appear once in Edges() and twice in the adjacency
//     (one arc per direction). A self-loop contributes a single arc.
//
// Builder options:
//
//	– WithDirected(directed bool)  directed (true) or undirected (false, default)
//	– WithLoops()                  permit self-loops (from == to)
//	– WithMultiEdges()             permit parallel edges between the same endpoints
//
// Query surface (all O(1) or O(deg) unless noted):
//
//	Directed() bool
//	VertexCount(), EdgeCount() int
//	Vertices() []VertexID                 // ascending, O(V) copy
//	HasVertex(v) bool
//	Index(v) (int, bool) / VertexAt(i) VertexID
//	Neighbors(v) ([]Arc, error)           // copy, sorted by target id then weight
//	ArcsAt(i) []IndexedArc                // read-only view over dense indices
//	Edges() []Edge                        // insertion order, O(E) copy
//	SortedEdges() []Edge                  // ascending (weight, from, to), O(E log E)
//	MinWeight(), MaxWeight() int64
//	InDegrees() []int                     // per dense index, O(V+E)
//	Reverse() *Graph                      // all edges flipped, O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – a query referenced a vertex absent from the graph
//	ErrLoopNotAllowed      – self-loop added without WithLoops
//	ErrMultiEdgeNotAllowed – parallel edge added without WithMultiEdges
package core
