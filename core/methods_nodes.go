// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries, plus Clear.
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - nextNodeID() is monotonic and stable ("n" + decimal); IDs are never reused.
// Concurrency:
//   - Mutations under mu write lock; events emitted after unlock.

package core

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

const nodeIDPrefix = 'n'

// nextNodeID returns the next node ID and its sequence number.
func nextNodeID(g *Graph) (string, uint64) {
	seq := atomic.AddUint64(&g.nextNodeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, nodeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf), seq
}

// AddNode places a new node at p and returns a copy of it.
//
// Steps:
//  1. Run the mutation guard.
//  2. Allocate ID/Seq, register in catalog and insertion order.
//  3. Emit NodeAdded.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(p Point) (Node, error) {
	if err := g.admit(); err != nil {
		return Node{}, err
	}

	g.mu.Lock()
	id, seq := nextNodeID(g)
	n := &Node{ID: id, Pos: p, Seq: seq}
	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	g.adjacency[id] = nil
	out := *n
	g.mu.Unlock()

	g.emit(Event{Kind: NodeAdded, Node: out})

	return out, nil
}

// MoveNode relocates node id to p.
// Returns ErrNodeNotFound if the node is absent.
func (g *Graph) MoveNode(id string, p Point) error {
	if err := g.admit(); err != nil {
		return err
	}

	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	n.Pos = p
	out := *n
	g.mu.Unlock()

	g.emit(Event{Kind: NodeMoved, Node: out})

	return nil
}

// DeleteNode removes node id together with every incident edge.
// An absent id is not an error: the call succeeds and changes nothing.
//
// Events: one EdgeRemoved per incident edge (adjacency order), then NodeRemoved.
// Complexity: O(V + E) worst case (order-slice compaction).
func (g *Graph) DeleteNode(id string) error {
	if err := g.admit(); err != nil {
		return err
	}

	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		return nil
	}

	// Cascade: copy the incident list first, removeEdgeLocked rewrites it.
	incident := append([]string(nil), g.adjacency[id]...)
	events := make([]Event, 0, len(incident)+1)
	for _, eid := range incident {
		if e, removed := g.removeEdgeLocked(eid); removed {
			events = append(events, Event{Kind: EdgeRemoved, Edge: e})
		}
	}

	delete(g.adjacency, id)
	delete(g.nodes, id)
	g.nodeOrder = removeID(g.nodeOrder, id)
	events = append(events, Event{Kind: NodeRemoved, Node: *n})
	g.mu.Unlock()

	g.emit(events...)

	return nil
}

// HasNode reports whether node id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of node id.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Clear removes every edge and node.
// Events: EdgeRemoved for all edges (insertion order), then NodeRemoved for
// all nodes (insertion order). ID counters are not reset, so IDs stay unique
// for the lifetime of the Graph.
func (g *Graph) Clear() error {
	if err := g.admit(); err != nil {
		return err
	}

	g.mu.Lock()
	events := make([]Event, 0, len(g.edgeOrder)+len(g.nodeOrder))
	for _, eid := range g.edgeOrder {
		events = append(events, Event{Kind: EdgeRemoved, Edge: *g.edges[eid]})
	}
	for _, nid := range g.nodeOrder {
		events = append(events, Event{Kind: NodeRemoved, Node: *g.nodes[nid]})
	}
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string][]string)
	g.pairs = make(map[pairKey]string)
	g.nodeOrder = nil
	g.edgeOrder = nil
	g.mu.Unlock()

	g.emit(events...)

	return nil
}

// removeID returns ids without the first occurrence of id, preserving order.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}

	return ids
}
