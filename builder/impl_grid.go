// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex index r*cols+c.
//   - Edges go right (r,c)→(r,c+1) and down (r,c)→(r+1,c); in a directed
//     graph the result is a DAG with a single source (0,0) and sink.
//
// Complexity: O(rows·cols) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		cfg.addVertices(b, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := cfg.addEdge(b, methodGrid, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(b, methodGrid, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
