// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete lays out K_n on a circle with edges (i,j), i<j, in lexicographic order.
func Complete(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		idx, _ := cfg.ring(bp, n, cfg.base(bp))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				bp.addEdge(idx[i], idx[j], cfg)
			}
		}

		return nil
	}
}
