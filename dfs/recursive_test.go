package dfs

import (
	"context"
	"testing"
	"unsafe"

	"github.com/soniakeys/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
)

// pathGraph builds 0 → 1 → … → n-1.
func pathGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	b := core.NewBuilder(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(core.VertexID(i), core.VertexID(i+1), 0))
	}
	return b.Build()
}

// depthCtx records a stack address each time visit polls Done, which it
// does once per frame at the same offset.
type depthCtx struct {
	context.Context
	addrs []uintptr
}

func (c *depthCtx) Done() <-chan struct{} {
	var marker byte
	c.addrs = append(c.addrs, uintptr(unsafe.Pointer(&marker)))
	return c.Context.Done()
}

func TestVisitFrameSize(t *testing.T) {
	const n = 4096
	g := pathGraph(t, n)
	ctx := &depthCtx{Context: context.Background()}
	opts := DefaultOptions()
	opts.Ctx = ctx
	l := &labeler{graph: g, opts: opts, visited: bits.New(n), label: make([]int, n), next: n}

	require.NoError(t, l.visit(0))
	require.Len(t, ctx.addrs, n)

	// consecutive polls sit one frame apart unless the stack was copied
	// between them, so the most common gap is the frame size
	gaps := make(map[uintptr]int)
	for i := 1; i < len(ctx.addrs); i++ {
		if ctx.addrs[i-1] > ctx.addrs[i] {
			gaps[ctx.addrs[i-1]-ctx.addrs[i]]++
		}
	}
	var frame uintptr
	for gap, count := range gaps {
		if count > gaps[frame] {
			frame = gap
		}
	}
	t.Logf("visit frame: %d bytes", frame)
	require.Greater(t, gaps[frame], n/2, "stack moved too often to measure")
	assert.LessOrEqual(t, int(frame), frameBytes)
}

func TestStackNeed(t *testing.T) {
	assert.Equal(t, 32<<10, stackNeed(1))
	assert.Equal(t, 32<<10, stackNeed(32))
	assert.Equal(t, 64<<10, stackNeed(33))
	assert.Equal(t, 512<<20, stackNeed(875_714))
	assert.LessOrEqual(t, stackNeed(2_000_000), DefaultStackBudget)
}

// TestRunRecursive_TightestBudget runs a chain at exactly the smallest
// budget the precheck accepts; the recursion must finish without the
// runtime aborting on stack growth.
func TestRunRecursive_TightestBudget(t *testing.T) {
	if testing.Short() {
		t.Skip("long chain")
	}
	const n = 100_000
	g := pathGraph(t, n)
	budget := stackNeed(n)

	lab, err := ReversePostorder(g, WithRecursive(), WithStackBudget(budget))
	require.NoError(t, err)
	assert.Equal(t, n, lab.Label[n-1])

	_, err = ReversePostorder(g, WithRecursive(), WithStackBudget(budget-1))
	assert.ErrorIs(t, err, ErrStackBudgetExceeded)
}
