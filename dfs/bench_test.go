package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// chain builds 0 → 1 → … → n-1.
func chain(b *testing.B, n int) *core.Graph {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(n))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkTopologicalSort_RandomDAG sorts a seeded sparse DAG.
func BenchmarkTopologicalSort_RandomDAG(b *testing.B) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomDAG(2000, 0.005),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}

// BenchmarkDFS_Chain10000 measures the iterative traversal on a path.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := chain(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkReversePostorder compares the two labeling strategies.
func BenchmarkReversePostorder(b *testing.B) {
	g := chain(b, 10000)
	b.Run("iterative", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = dfs.ReversePostorder(g)
		}
	})
	b.Run("recursive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = dfs.ReversePostorder(g, dfs.WithRecursive())
		}
	})
}
