// SPDX-License-Identifier: MIT

package tool

import (
	"math"

	"github.com/katalvlaran/graphisual/core"
)

// Hit-testing defaults, in drawing-plane units.
const (
	DefaultNodeRadius    = 15.0
	DefaultEdgeTolerance = 6.0
)

// nodeAt returns the node whose disc contains p. Overlaps go to the closest
// centre, then to the most recently added node.
func nodeAt(g *core.Graph, p core.Point, radius float64) (core.Node, bool) {
	var (
		best  core.Node
		bestD = math.Inf(1)
		found bool
	)
	for _, n := range g.Nodes() {
		d := n.Pos.Dist(p)
		if d <= radius && d <= bestD {
			best, bestD, found = n, d, true
		}
	}

	return best, found
}

// edgeAt returns the edge whose segment passes within tol of p.
func edgeAt(g *core.Graph, p core.Point, tol float64) (core.Edge, bool) {
	var (
		best  core.Edge
		bestD = math.Inf(1)
		found bool
	)
	for _, e := range g.Edges() {
		a, okA := g.Node(e.From)
		b, okB := g.Node(e.To)
		if !okA || !okB {
			continue
		}
		d := segmentDist(p, a.Pos, b.Pos)
		if d <= tol && d <= bestD {
			best, bestD, found = e, d, true
		}
	}

	return best, found
}

// segmentDist is the distance from p to segment ab.
func segmentDist(p, a, b core.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))

	return p.Dist(core.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
