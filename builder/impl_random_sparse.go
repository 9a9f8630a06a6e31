// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: every ordered pair (i,j), i≠j,
//     is kept independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - All n vertices own an adjacency entry, even if isolated.
//
// Determinism:
//   - Trial order: i asc, then j asc; one Float64 draw per trial, then one
//     weight draw per kept arc. Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		for i := 0; i < n; i++ {
			if err := addVertex(methodRandomSparse, g, cfg.idFn(i)); err != nil {
				return err
			}
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if rng.Float64() >= p {
					continue
				}
				v := cfg.idFn(j)
				if err := addEdge(methodRandomSparse, g, u, v, cfg.weightFn(rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
