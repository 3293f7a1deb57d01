// Package builder provides deterministic "functional-options" constructors
// for graph fixtures. It sits next to core and feeds the algorithm packages
// with reproducible inputs for tests, benchmarks and the graphkit CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:       creates a core.Builder, runs constructors in order, freezes.
//     – Constructor:      a closure that adds vertices and edges to a core.Builder.
//   - Topologies:
//     – Path, Cycle, Star, Complete, Grid: fixed shapes over n vertices.
//     – RandomSparse:     Erdős–Rényi style sampling with probability p.
//     – RandomDAG:        forward-only sampling (i<j), acyclic when directed.
//   - Vertex-ID schemes (IDFn):
//     – DenseIDFn:        0,1,2,…
//     – StrideIDFn(k):    0,k,2k,… (sparse identifier spaces).
//     – OffsetIDFn(base): base,base+1,…
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed non-negative value.
//     – UniformWeightFn:  integers drawn uniformly from [min,max].
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//		builder.RandomDAG(100, 0.05),
//	)
package builder
