// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order).
//   • For each cell, arcs to Right and Bottom neighbors and their reverse arcs.
//     Forward and reverse arcs draw independent weights.
//
// Determinism:
//   • Stable vertex order: row-major.
//   • Stable edge order: for each (r,c) emit Right, Right-reverse, Bottom, Bottom-reverse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertex(methodGrid, g, GridID(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := biArc(g, cfg, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := biArc(g, cfg, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// biArc adds u→v and v→u with independently drawn weights.
func biArc(g core.Graph, cfg builderConfig, u, v string) error {
	if err := addEdge(methodGrid, g, u, v, cfg.weightFn(cfg.rng)); err != nil {
		return err
	}

	return addEdge(methodGrid, g, v, u, cfg.weightFn(cfg.rng))
}
