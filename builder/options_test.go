package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithIDFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.StrideIDFn(0) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
}

func TestIDFns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, core.VertexID(3), builder.DenseIDFn(3))
	assert.Equal(t, core.VertexID(3000), builder.StrideIDFn(1000)(3))
	assert.Equal(t, core.VertexID(4), builder.OffsetIDFn(1)(3))

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDFn(builder.OffsetIDFn(1))}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 3}, g.Vertices())
}

func TestWeightFns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))

	u := builder.UniformWeightFn(2, 5)
	assert.Equal(t, int64(2), u(nil), "nil rng falls back to min")
	r := rand.New(rand.NewSource(1))
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		w := u(r)
		require.GreaterOrEqual(t, w, int64(2))
		require.LessOrEqual(t, w, int64(5))
		seen[w] = true
	}
	assert.Len(t, seen, 4, "every value of the closed range is drawn")
}

func TestWithWeights_AppliedPerEdge(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(9)}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, int64(9), g.MinWeight())
	assert.Equal(t, int64(9), g.MaxWeight())

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3))), builder.WithUniformWeight(10, 20)},
		builder.Complete(8))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.MinWeight(), int64(10))
	assert.LessOrEqual(t, g.MaxWeight(), int64(20))
}
