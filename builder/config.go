// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DenseIDFn        (0,1,2,...)
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphkit/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator, called once per added edge.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DenseIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight from the configured distribution.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}

// addVertices registers ids for indices 0..n-1 in ascending order.
func (c builderConfig) addVertices(b *core.Builder, n int) {
	for i := 0; i < n; i++ {
		b.AddVertex(c.idFn(i))
	}
}

// addEdge adds the edge between indices i and j with a fresh weight and tags
// failures with the constructor name.
func (c builderConfig) addEdge(b *core.Builder, method string, i, j int) error {
	u, v := c.idFn(i), c.idFn(j)
	w := c.weight()
	if err := b.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
