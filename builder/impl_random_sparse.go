// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 2
)

// RandomSparse lays out n nodes on a circle and keeps each pair (i,j), i<j,
// with probability p. Requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		idx, _ := cfg.ring(bp, n, cfg.base(bp))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					bp.addEdge(idx[i], idx[j], cfg)
				}
			}
		}

		return nil
	}
}
