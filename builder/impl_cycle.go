// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1)%n; in a directed graph this is a single strongly
//     connected ring.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that builds a ring of n vertices.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		cfg.addVertices(b, n)
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(b, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
