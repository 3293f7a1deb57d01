package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// ExampleTopologicalSort orders a small build pipeline.
//
//	1 → 2 → 4
//	1 → 3 → 4
func ExampleTopologicalSort() {
	b := core.NewBuilder(core.WithDirected(true))
	for _, e := range [][2]core.VertexID{{1, 2}, {1, 3}, {2, 4}, {3, 4}} {
		_ = b.AddEdge(e[0], e[1], 0)
	}
	order, err := dfs.TopologicalSort(b.Build())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [1 2 3 4]
}

// ExampleReversePostorder shows labels handed out at finish time.
func ExampleReversePostorder() {
	b := core.NewBuilder(core.WithDirected(true))
	_ = b.AddEdge(1, 2, 0)
	_ = b.AddEdge(2, 3, 0)
	_ = b.AddEdge(3, 1, 0)
	_ = b.AddEdge(3, 4, 0)
	lab, _ := dfs.ReversePostorder(b.Build())
	fmt.Println("order:", lab.Order)
	fmt.Println("label of 4:", lab.Label[4])
	// Output:
	// order: [1 2 3 4]
	// label of 4: 4
}
