// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphisual/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path lays out n nodes on a horizontal line joined i→i+1.
func Path(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		o := cfg.base(bp)
		prev := -1
		for i := 0; i < n; i++ {
			cur := bp.addNode(core.Point{X: o.X + float64(i)*cfg.spacing, Y: o.Y})
			if prev >= 0 {
				bp.addEdge(prev, cur, cfg)
			}
			prev = cur
		}

		return nil
	}
}
