// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"github.com/katalvlaran/graphisual/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	ctx     context.Context
	visited map[string]bool
	out     emitter
}

// runDFS explores the start's reachable set in pre-order.
func runDFS(o Options, g *core.Graph, tr *Trace) error {
	w := &dfsWalker{
		graph:   g,
		ctx:     o.Ctx,
		visited: make(map[string]bool, g.NodeCount()),
		out:     emitter{tr: tr},
	}

	return w.traverse("", tr.Start)
}

// traverse visits id (reached through edge via) and recurses into every
// unvisited neighbor in adjacency order.
func (w *dfsWalker) traverse(via, id string) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	w.visited[id] = true
	if via != "" {
		w.out.add(VisitEdge, via)
	}
	w.out.add(VisitNode, id)

	nbs, err := neighbors(w.graph, id)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		// a neighbor may have been reached through a sibling branch meanwhile
		if w.visited[nb.NodeID] {
			continue
		}
		if err = w.traverse(nb.EdgeID, nb.NodeID); err != nil {
			return err
		}
	}

	return nil
}
