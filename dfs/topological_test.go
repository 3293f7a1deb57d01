package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// randomDigraph draws m distinct non-loop arcs over vertices 0..n-1. With
// dag set every arc points from a lower to a higher id.
func randomDigraph(t testing.TB, r *rand.Rand, n, m int, dag bool) ([][2]core.VertexID, *core.Graph) {
	t.Helper()
	b := core.NewBuilder(core.WithDirected(true))
	var pairs [][2]core.VertexID
	for v := 0; v < n; v++ {
		b.AddVertex(core.VertexID(v))
	}
	for len(pairs) < m {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if dag && u > v {
			u, v = v, u
		}
		if b.HasEdge(core.VertexID(u), core.VertexID(v)) {
			continue
		}
		require.NoError(t, b.AddEdge(core.VertexID(u), core.VertexID(v), 0))
		pairs = append(pairs, [2]core.VertexID{core.VertexID(u), core.VertexID(v)})
	}
	return pairs, b.Build()
}

// toGonum mirrors g as a gonum directed graph.
func toGonum(g *core.Graph) *simple.DirectedGraph {
	gg := simple.NewDirectedGraph()
	for _, v := range g.Vertices() {
		gg.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		gg.SetEdge(gg.NewEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To))))
	}
	return gg
}

func position(order []core.VertexID) map[core.VertexID]int {
	pos := make(map[core.VertexID]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	return pos
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_UndirectedGraph(t *testing.T) {
	g := mustGraph(t, false, [][2]core.VertexID{{1, 2}})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}

func TestTopo_EmptyGraph(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(true)).Build()
	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_KahnQueueOrder(t *testing.T) {
	// sources 1 and 3 seed the queue ascending; 5 is isolated
	g := mustGraph(t, true, [][2]core.VertexID{{3, 4}, {1, 2}, {2, 4}}, 5)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 3, 5, 2, 4}, order)
}

func TestTopo_CycleDetected(t *testing.T) {
	g := mustGraph(t, true, [][2]core.VertexID{{1, 2}, {2, 3}, {3, 1}, {0, 1}})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "ordered 1 of 4")

	cyclic, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

func TestTopo_SelfLoopIsCycle(t *testing.T) {
	g := mustGraph(t, true, [][2]core.VertexID{{1, 1}})
	cyclic, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

func TestHasCycle_PropagatesValidation(t *testing.T) {
	_, err := dfs.HasCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_RandomDAGs checks the permutation and edge-order properties and
// agrees with gonum on orderability.
func TestTopo_RandomDAGs(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 30; trial++ {
		n := 5 + r.Intn(60)
		m := r.Intn(n * 2)
		pairs, g := randomDigraph(t, r, n, m, true)

		order, err := dfs.TopologicalSort(g)
		require.NoError(t, err)
		assert.ElementsMatch(t, g.Vertices(), order)
		pos := position(order)
		for _, p := range pairs {
			assert.Less(t, pos[p[0]], pos[p[1]], "edge %d→%d", p[0], p[1])
		}

		_, gerr := topo.Sort(toGonum(g))
		assert.NoError(t, gerr)
	}
}

func TestTopo_RandomDigraphsMatchGonum(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 40; trial++ {
		n := 3 + r.Intn(25)
		_, g := randomDigraph(t, r, n, r.Intn(n+n/2), false)

		_, err := dfs.TopologicalSort(g)
		_, gerr := topo.Sort(toGonum(g))
		assert.Equal(t, gerr != nil, err != nil, "trial %d", trial)
	}
}
