// SPDX-License-Identifier: MIT
package engine_test

import (
	"fmt"

	"github.com/katalvlaran/graphisual/core"
	"github.com/katalvlaran/graphisual/engine"
)

// ExampleRun computes the Dijkstra trace on the classic triangle
// A–B(1), B–C(2), A–C(5): the detour through B beats the direct edge.
func ExampleRun() {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{X: 0, Y: 0})
	b, _ := g.AddNode(core.Point{X: 50, Y: 0})
	c, _ := g.AddNode(core.Point{X: 100, Y: 0})
	_, _ = g.AddOrReplaceEdge(a.ID, b.ID, core.KindWeighted, 1)
	_, _ = g.AddOrReplaceEdge(b.ID, c.ID, core.KindWeighted, 2)
	_, _ = g.AddOrReplaceEdge(a.ID, c.ID, core.KindWeighted, 5)

	tr, err := engine.Run(g, engine.Dijkstra, a.ID, c.ID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("visited:", tr.Visited())
	fmt.Println("path:", tr.Path, "cost:", tr.Cost)
	for _, s := range tr.Steps {
		fmt.Println(s)
	}

	// Output:
	// visited: [n1 n2 n3]
	// path: [n1 n2 n3] cost: 3
	// visit-node:n1
	// visit-edge:e1
	// visit-node:n2
	// visit-edge:e2
	// visit-node:n3
	// path-node:n1
	// path-edge:e1
	// path-node:n2
	// path-edge:e2
	// path-node:n3
	// done
}
