// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one center idFn(0) and n-1 leaves.
//   - Edges center→leaf in ascending leaf order.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor that connects one hub to n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		cfg.addVertices(b, n)
		for leaf := 1; leaf < n; leaf++ {
			if err := cfg.addEdge(b, methodStar, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
