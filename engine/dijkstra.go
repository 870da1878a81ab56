// SPDX-License-Identifier: MIT

package engine

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/graphisual/core"
)

// runDijkstra finalizes nodes in increasing distance from Start until End is
// finalized or the frontier is exhausted.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails
//     before a single step is produced.
//   - "Lazy" decrease-key: improved distances push duplicates, stale entries
//     are skipped when popped.
//   - Heap order is (dist, node Seq), so equal distances finalize in node
//     insertion order.
//   - Relaxation uses strict "<", so among equal-cost predecessors the first
//     one discovered wins.
func runDijkstra(o Options, g *core.Graph, tr *Trace) error {
	for _, e := range g.Edges() {
		if e.Cost() < 0 {
			return fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	n := g.NodeCount()
	r := &runner{
		g:        g,
		ctx:      o.Ctx,
		dist:     make(map[string]float64, n),
		prevNode: make(map[string]string, n),
		prevEdge: make(map[string]string, n),
		visited:  make(map[string]bool, n),
		pq:       make(nodePQ, 0, n),
		out:      emitter{tr: tr},
	}

	start, _ := g.Node(tr.Start)
	r.dist[start.ID] = 0
	heap.Push(&r.pq, &nodeItem{id: start.ID, seq: start.Seq, dist: 0})

	reached, err := r.process(tr.End)
	if err != nil {
		return err
	}
	if !reached {
		return nil
	}

	tr.Found = true
	tr.Cost = r.dist[tr.End]
	tr.Path = r.pathTo(tr.End)
	if tr.Start == tr.End {
		return nil
	}
	r.emitPath(tr.End)

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	ctx      context.Context
	dist     map[string]float64 // best known distance; absent means +∞
	prevNode map[string]string  // predecessor node on the best path
	prevEdge map[string]string  // edge used to reach the node
	visited  map[string]bool    // finalized nodes
	pq       nodePQ
	out      emitter
}

// process is the core loop. It reports whether target was finalized.
func (r *runner) process(target string) (bool, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return false, r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true

		if via, ok := r.prevEdge[u]; ok {
			r.out.add(VisitEdge, via)
		}
		r.out.add(VisitNode, u)

		if u == target {
			return true, nil
		}
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u string) error {
	nbs, err := neighbors(r.g, u)
	if err != nil {
		return err
	}
	du := r.dist[u]
	for _, nb := range nbs {
		if r.visited[nb.NodeID] {
			continue
		}
		nd := du + nb.Weight
		if cur, seen := r.dist[nb.NodeID]; seen && nd >= cur {
			continue
		}
		r.dist[nb.NodeID] = nd
		r.prevNode[nb.NodeID] = u
		r.prevEdge[nb.NodeID] = nb.EdgeID

		v, ok := r.g.Node(nb.NodeID)
		if !ok {
			return fmt.Errorf("%w: node %q vanished during run", ErrNeighbors, nb.NodeID)
		}
		heap.Push(&r.pq, &nodeItem{id: v.ID, seq: v.Seq, dist: nd})
	}

	return nil
}

// pathTo walks predecessors back from target and returns start→target node IDs.
func (r *runner) pathTo(target string) []string {
	path := []string{target}
	for cur := target; ; {
		prev, ok := r.prevNode[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// emitPath appends PathNode/PathEdge steps from start to target.
func (r *runner) emitPath(target string) {
	path := r.pathTo(target)
	for i, id := range path {
		if i > 0 {
			r.out.add(PathEdge, r.prevEdge[id])
		}
		r.out.add(PathNode, id)
	}
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	id   string
	seq  uint64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
