package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	pk "github.com/katalvlaran/graphkit/prim_kruskal"
)

// ExampleKruskal spans a weighted square; the heaviest side is rejected.
func ExampleKruskal() {
	g, _ := core.FromEdges([]core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 4, Weight: 3},
		{From: 4, To: 1, Weight: 4},
	}, nil)
	m, _ := pk.Kruskal(g)
	for _, e := range m.Edges {
		fmt.Printf("%d—%d (%d)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", m.Total)
	// Output:
	// 1—2 (1)
	// 2—3 (2)
	// 3—4 (3)
	// total: 6
}

// ExampleCompute runs Prim from a chosen root through the dispatcher.
func ExampleCompute() {
	g, _ := core.FromEdges([]core.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: 1},
		{From: 1, To: 3, Weight: 2},
	}, nil)
	m, _ := pk.Compute(g, pk.WithMethod(pk.MethodPrim), pk.WithRoot(3))
	fmt.Println(m.Edges, m.Total)
	// Output: [{3 2 1} {3 1 2}] 3
}
