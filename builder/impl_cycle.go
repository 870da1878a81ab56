// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle lays out C_n on a circle with edges i→(i+1)%n in increasing i.
func Cycle(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		idx, _ := cfg.ring(bp, n, cfg.base(bp))
		for i := 0; i < n; i++ {
			bp.addEdge(idx[i], idx[(i+1)%n], cfg)
		}

		return nil
	}
}
