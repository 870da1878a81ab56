// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"github.com/katalvlaran/graphisual/core"
)

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	graph   *core.Graph
	ctx     context.Context
	queue   []string
	visited map[string]bool
	out     emitter
}

// runBFS explores the start's reachable set level by level.
func runBFS(o Options, g *core.Graph, tr *Trace) error {
	n := g.NodeCount()
	w := &bfsWalker{
		graph:   g,
		ctx:     o.Ctx,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		out:     emitter{tr: tr},
	}
	w.discover("", tr.Start)

	return w.loop()
}

// discover marks id visited, emits its steps and enqueues it.
// via is the edge it was reached through ("" for the root).
func (w *bfsWalker) discover(via, id string) {
	w.visited[id] = true
	if via != "" {
		w.out.add(VisitEdge, via)
	}
	w.out.add(VisitNode, id)
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]

		nbs, err := neighbors(w.graph, cur)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if !w.visited[nb.NodeID] {
				w.discover(nb.EdgeID, nb.NodeID)
			}
		}
	}

	return nil
}
