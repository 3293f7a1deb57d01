// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair {i,j}, i<j  → n(n-1)/2 edges.
//   - Directed:   one arc per ordered pair (i,j), i≠j    → n(n-1) arcs.
//   - Never adds self-loops.
//
// Complexity: O(n²) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		cfg.addVertices(b, n)
		directed := b.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err := cfg.addEdge(b, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
