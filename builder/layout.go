// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/graphisual/core"
)

// base returns where the next preset starts: the origin for an empty
// blueprint, otherwise one spacing to the right of everything placed so far.
func (cfg builderConfig) base(bp *Blueprint) core.Point {
	if len(bp.Nodes) == 0 {
		return cfg.origin
	}
	maxX := math.Inf(-1)
	for _, p := range bp.Nodes {
		maxX = math.Max(maxX, p.X)
	}

	return core.Point{X: maxX + cfg.spacing, Y: cfg.origin.Y}
}

// ring places n nodes clockwise from twelve o'clock on a circle and returns
// their indexes and the circle centre.
func (cfg builderConfig) ring(bp *Blueprint, n int, origin core.Point) ([]int, core.Point) {
	r := math.Max(cfg.spacing, float64(n)*cfg.spacing/(2*math.Pi))
	center := core.Point{X: origin.X + r, Y: origin.Y + r}
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		idx[i] = bp.addNode(core.Point{
			X: round(center.X + r*math.Cos(a)),
			Y: round(center.Y + r*math.Sin(a)),
		})
	}

	return idx, center
}

// round keeps coordinates readable on terminal surfaces.
func round(v float64) float64 { return math.Round(v*10) / 10 }
