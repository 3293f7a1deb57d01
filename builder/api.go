// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, then freezes the result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Constructor applies a deterministic topology to b using the resolved
// builderConfig. Constructors validate parameters before touching b and
// return sentinel-wrapped errors instead of panicking.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Constructors share the same vertex space, so composing Path(3) with
// Star(4) overlays both shapes on vertices 0..3.
//
// Errors:
//   - ErrConstructFailed if a constructor is nil.
//   - Any constructor error, wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor plus one core.Builder.Build.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}
