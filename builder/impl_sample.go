// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/graphisual/core"

// sampleNodes are offsets from the preset base.
var sampleNodes = []core.Point{
	{X: 0, Y: 0},
	{X: 100, Y: 0},
	{X: 50, Y: 80},
	{X: 200, Y: 40},
	{X: 150, Y: 140},
}

var sampleEdges = []EdgeSpec{
	{From: 0, To: 1, Weight: 1},
	{From: 1, To: 2, Weight: 2},
	{From: 0, To: 2, Weight: 5},
	{From: 1, To: 3, Weight: 4},
	{From: 2, To: 4, Weight: 3},
	{From: 3, To: 4, Weight: 2},
}

// Sample is the five-node demo graph. Its weights are fixed and ignore
// WithWeightFn: the shortest 0→4 route is 0,1,2,4 with cost 6.
func Sample() Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		o := cfg.base(bp)
		first := len(bp.Nodes)
		for _, p := range sampleNodes {
			bp.addNode(core.Point{X: o.X + p.X, Y: o.Y + p.Y})
		}
		for _, e := range sampleEdges {
			bp.Edges = append(bp.Edges, EdgeSpec{From: first + e.From, To: first + e.To, Weight: e.Weight})
		}

		return nil
	}
}
