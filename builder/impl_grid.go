// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphisual/core"
)

const (
	methodGrid   = "Grid"
	minGridCells = 2
)

// Grid lays out rows×cols nodes row-major. Each node links to its right
// neighbour, then to the one below.
func Grid(rows, cols int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < minGridCells {
			return fmt.Errorf("%s: %dx%d < min=%d cells: %w", methodGrid, rows, cols, minGridCells, ErrTooFewVertices)
		}
		o := cfg.base(bp)
		idx := make([][]int, rows)
		for r := 0; r < rows; r++ {
			idx[r] = make([]int, cols)
			for c := 0; c < cols; c++ {
				idx[r][c] = bp.addNode(core.Point{
					X: o.X + float64(c)*cfg.spacing,
					Y: o.Y + float64(r)*cfg.spacing,
				})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					bp.addEdge(idx[r][c], idx[r][c+1], cfg)
				}
				if r+1 < rows {
					bp.addEdge(idx[r][c], idx[r+1][c], cfg)
				}
			}
		}

		return nil
	}
}
