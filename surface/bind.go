// SPDX-License-Identifier: MIT

package surface

import "github.com/katalvlaran/graphisual/core"

// Bind subscribes s to g's change events and returns the unsubscribe func.
//
// Translation:
//
//	NodeAdded            → RenderNode
//	NodeMoved            → RenderNode, then RenderEdge for each incident edge
//	NodeRemoved          → RemoveNode
//	EdgeAdded/Changed    → RenderEdge
//	EdgeRemoved          → RemoveEdge
//
// Only the affected elements are re-rendered, never the whole graph.
func Bind(g *core.Graph, s Surface) func() {
	return g.Subscribe(func(ev core.Event) {
		switch ev.Kind {
		case core.NodeAdded:
			renderNode(s, ev.Node)
		case core.NodeMoved:
			renderNode(s, ev.Node)
			edges, err := g.IncidentEdges(ev.Node.ID)
			if err != nil {
				return // removed again before we got here
			}
			for _, e := range edges {
				renderEdge(g, s, e)
			}
		case core.NodeRemoved:
			s.RemoveNode(ev.Node.ID)
		case core.EdgeAdded, core.EdgeChanged:
			renderEdge(g, s, ev.Edge)
		case core.EdgeRemoved:
			s.RemoveEdge(ev.Edge.ID)
		}
	})
}

// Sync renders every node and edge of g onto s, e.g. to paint a fresh surface.
func Sync(g *core.Graph, s Surface) {
	for _, n := range g.Nodes() {
		renderNode(s, n)
	}
	for _, e := range g.Edges() {
		renderEdge(g, s, e)
	}
}

func renderNode(s Surface, n core.Node) {
	s.RenderNode(n.ID, n.Pos, Style{Label: n.ID})
}

func renderEdge(g *core.Graph, s Surface, e core.Edge) {
	from, ok := g.Node(e.From)
	if !ok {
		return
	}
	to, ok := g.Node(e.To)
	if !ok {
		return
	}
	s.RenderEdge(e.ID, from.Pos, to.Pos, e.Kind, e.Weight, Style{Label: EdgeLabel(e)})
}
