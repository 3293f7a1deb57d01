package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/core"
)

func buildGraph(t *testing.T, directed bool, edges []core.Edge, isolated ...core.VertexID) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(edges, isolated, core.WithDirected(directed))
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	return g
}

func TestReachable_NilGraph(t *testing.T) {
	if _, err := bfs.Reachable(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Fatalf("expected ErrGraphNil, got %v", err)
	}
}

func TestReachable_MissingSource(t *testing.T) {
	g := buildGraph(t, false, []core.Edge{{From: 1, To: 2}})
	if _, err := bfs.Reachable(g, 9); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestReachable_NegativeDepth(t *testing.T) {
	g := buildGraph(t, false, []core.Edge{{From: 1, To: 2}})
	if _, err := bfs.Reachable(g, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Fatalf("expected ErrOptionViolation, got %v", err)
	}
}

func TestReachable_OrderAndDepth(t *testing.T) {
	// 1 → 3, 1 → 2, 2 → 4, 3 → 4, 5 isolated
	g := buildGraph(t, true, []core.Edge{
		{From: 1, To: 3}, {From: 1, To: 2}, {From: 2, To: 4}, {From: 3, To: 4},
	}, 5)
	res, err := bfs.Reachable(g, 1)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	want := []core.VertexID{1, 2, 3, 4}
	if len(res.Order) != len(want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
	for i := range want {
		if res.Order[i] != want[i] {
			t.Fatalf("order = %v, want %v", res.Order, want)
		}
	}
	if res.Depth[4] != 2 {
		t.Errorf("depth(4) = %d, want 2", res.Depth[4])
	}
	if res.Reached(5) {
		t.Errorf("isolated vertex 5 must not be reached")
	}
	path, err := res.PathTo(4)
	if err != nil || len(path) != 3 || path[0] != 1 || path[2] != 4 {
		t.Errorf("PathTo(4) = %v, %v", path, err)
	}
	if _, err := res.PathTo(5); err == nil {
		t.Errorf("PathTo(5) should fail")
	}
}

func TestReachable_DirectionMatters(t *testing.T) {
	g := buildGraph(t, true, []core.Edge{{From: 1, To: 2}, {From: 3, To: 2}})
	res, err := bfs.Reachable(g, 2)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	if len(res.Order) != 1 {
		t.Errorf("sink 2 reaches only itself, got %v", res.Order)
	}
}

func TestReachable_MaxDepth(t *testing.T) {
	g := buildGraph(t, false, []core.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}})
	res, err := bfs.Reachable(g, 1, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	if res.Reached(4) || !res.Reached(3) {
		t.Errorf("depth limit 2: order = %v", res.Order)
	}
}

func TestReachable_OnVisitAbort(t *testing.T) {
	g := buildGraph(t, false, []core.Edge{{From: 1, To: 2}, {From: 2, To: 3}})
	stop := errors.New("stop")
	_, err := bfs.Reachable(g, 1, bfs.WithOnVisit(func(id core.VertexID, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("expected hook error, got %v", err)
	}
}

func TestReachable_Cancelled(t *testing.T) {
	g := buildGraph(t, false, []core.Edge{{From: 1, To: 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Reachable(g, 1, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestReachableSet_MatchesReachable(t *testing.T) {
	g := buildGraph(t, true, []core.Edge{
		{From: 1, To: 2}, {From: 2, To: 3}, {From: 4, To: 1}, {From: 3, To: 1},
	}, 7)
	res, err := bfs.Reachable(g, 1)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	set := bfs.ReachableSet(g, 0)
	for i, v := range g.Vertices() {
		if (set.Bit(i) == 1) != res.Reached(v) {
			t.Errorf("vertex %d: set=%d reached=%v", v, set.Bit(i), res.Reached(v))
		}
	}
}
