// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomDAG(n, p).
//
// Model: include each admissible pair independently with probability p.
//   - RandomSparse, undirected: unordered pairs {i,j} with i<j.
//   - RandomSparse, directed:   ordered pairs (i,j) with i≠j.
//   - RandomDAG: pairs i<j oriented i→j, so a directed result is acyclic.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism: trial order is i asc, j asc; fixed seed ⇒ fixed graph.
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomDAG         = "RandomDAG"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateRandom(methodRandomSparse, n, p, cfg); err != nil {
			return err
		}
		cfg.addVertices(b, n)
		directed := b.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !cfg.trial(p) {
					continue
				}
				if err := cfg.addEdge(b, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomDAG returns a Constructor that samples forward pairs i<j with
// probability p. On a directed builder the result is acyclic and
// idFn(0..n-1) is one of its topological orders.
func RandomDAG(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateRandom(methodRandomDAG, n, p, cfg); err != nil {
			return err
		}
		cfg.addVertices(b, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !cfg.trial(p) {
					continue
				}
				if err := cfg.addEdge(b, methodRandomDAG, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// validateRandom applies the shared checks in priority order.
func validateRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < minRandomSparseVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial runs one Bernoulli(p) draw. p ∈ {0,1} never touches the RNG.
func (c builderConfig) trial(p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return c.rng.Float64() < p
}
