// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 1; vertices id(0)..id(n-1); arcs id(i)→id(i+1).
//   - Cycle: n ≥ 2; Path arcs plus id(n-1)→id(0).
//   - Every vertex, including the last, owns an adjacency entry.
//   - Weights from cfg.weightFn in ascending i order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 2
)

// Path returns a Constructor that builds the directed chain of n vertices.
func Path(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds the directed ring of n vertices.
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

// chain adds n vertices and the arcs i→i+1, closing the ring when closed.
func chain(method string, g core.Graph, cfg builderConfig, n int, closed bool) error {
	for i := 0; i < n; i++ {
		if err := addVertex(method, g, cfg.idFn(i)); err != nil {
			return err
		}
	}

	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
		if err := addEdge(method, g, u, v, cfg.weightFn(cfg.rng)); err != nil {
			return err
		}
	}

	return nil
}
