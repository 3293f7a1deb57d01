// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); Path(1) is a single isolated vertex.
//   - Vertices idFn(0..n-1) in ascending order, edges i→i+1 for i in [0, n-2].
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 1
)

// Path returns a Constructor that builds a simple chain of n vertices.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		cfg.addVertices(b, n)
		for i := 0; i+1 < n; i++ {
			if err := cfg.addEdge(b, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
