// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star lays out a hub followed by n-1 leaves on a ring around it.
// Edges run hub→leaf in leaf order.
func Star(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, rim := hubAndRim(bp, cfg, n-1)
		for _, leaf := range rim {
			bp.addEdge(hub, leaf, cfg)
		}

		return nil
	}
}

// Wheel lays out W_n: a hub plus a rim cycle of n-1 nodes.
// Rim edges come first, then spokes hub→rim.
func Wheel(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, rim := hubAndRim(bp, cfg, n-1)
		for i := range rim {
			bp.addEdge(rim[i], rim[(i+1)%len(rim)], cfg)
		}
		for _, r := range rim {
			bp.addEdge(hub, r, cfg)
		}

		return nil
	}
}

// hubAndRim adds the hub first so it gets the lowest index of the preset.
func hubAndRim(bp *Blueprint, cfg builderConfig, rimSize int) (int, []int) {
	hub := bp.addNode(cfg.base(bp))
	o := bp.Nodes[hub]
	rim, center := cfg.ring(bp, rimSize, o)
	bp.Nodes[hub] = center

	return hub, rim
}
