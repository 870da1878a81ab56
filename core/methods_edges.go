// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddOrReplaceEdge/SetEdgeWeight/DeleteEdge,
//       Edge/Edges/EdgeCount/FindEdge, and nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order; a replaced edge keeps its slot.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; events emitted after unlock.

package core

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// nextEdgeID returns the next unique edge ID.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// validateWeight checks weight against the kind's weight policy.
func validateWeight(kind EdgeKind, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if !kind.Weighted() && weight != 0 {
		return fmt.Errorf("%w: %s edge cannot carry weight %v", ErrBadWeight, kind, weight)
	}

	return nil
}

// AddOrReplaceEdge creates the edge from→to of the given kind, or replaces the
// existing edge of that kind between the same endpoints.
//
// Steps:
//  1. Validate kind and weight.
//  2. Run the mutation guard.
//  3. Lock; both endpoints must exist (ErrInvalidEndpoint, nothing created),
//     then from != to (ErrLoopNotAllowed).
//  4. Existing pair ⇒ overwrite Weight in place, emit EdgeChanged.
//     Otherwise allocate ID, link both adjacency lists, emit EdgeAdded.
//
// Negative weights are accepted here; shortest-path runs reject them.
// Complexity: O(1) amortized.
func (g *Graph) AddOrReplaceEdge(from, to string, kind EdgeKind, weight float64) (Edge, error) {
	if !kind.Valid() {
		return Edge{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err := validateWeight(kind, weight); err != nil {
		return Edge{}, err
	}
	if err := g.admit(); err != nil {
		return Edge{}, err
	}

	g.mu.Lock()
	if _, ok := g.nodes[from]; !ok {
		g.mu.Unlock()
		return Edge{}, fmt.Errorf("%w: from node %q", ErrInvalidEndpoint, from)
	}
	if _, ok := g.nodes[to]; !ok {
		g.mu.Unlock()
		return Edge{}, fmt.Errorf("%w: to node %q", ErrInvalidEndpoint, to)
	}
	if from == to {
		g.mu.Unlock()
		return Edge{}, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	key := keyFor(from, to, kind)
	if eid, exists := g.pairs[key]; exists {
		e := g.edges[eid]
		e.Weight = weight
		out := *e
		g.mu.Unlock()
		g.emit(Event{Kind: EdgeChanged, Edge: out})

		return out, nil
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Kind: kind, Weight: weight}
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.pairs[key] = e.ID
	g.adjacency[from] = append(g.adjacency[from], e.ID)
	g.adjacency[to] = append(g.adjacency[to], e.ID)
	out := *e
	g.mu.Unlock()

	g.emit(Event{Kind: EdgeAdded, Edge: out})

	return out, nil
}

// SetEdgeWeight changes the weight of a weighted edge.
// Unweighted kinds only accept 0 (ErrBadWeight otherwise).
func (g *Graph) SetEdgeWeight(id string, weight float64) error {
	if err := g.admit(); err != nil {
		return err
	}

	g.mu.Lock()
	e, ok := g.edges[id]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	if err := validateWeight(e.Kind, weight); err != nil {
		g.mu.Unlock()
		return err
	}
	e.Weight = weight
	out := *e
	g.mu.Unlock()

	g.emit(Event{Kind: EdgeChanged, Edge: out})

	return nil
}

// DeleteEdge removes edge id. Returns ErrEdgeNotFound if absent.
func (g *Graph) DeleteEdge(id string) error {
	if err := g.admit(); err != nil {
		return err
	}

	g.mu.Lock()
	e, removed := g.removeEdgeLocked(id)
	g.mu.Unlock()
	if !removed {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}

	g.emit(Event{Kind: EdgeRemoved, Edge: e})

	return nil
}

// removeEdgeLocked unlinks edge id from every catalog. Caller holds mu.
func (g *Graph) removeEdgeLocked(id string) (Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	delete(g.edges, id)
	delete(g.pairs, keyFor(e.From, e.To, e.Kind))
	g.edgeOrder = removeID(g.edgeOrder, id)
	g.adjacency[e.From] = removeID(g.adjacency[e.From], id)
	g.adjacency[e.To] = removeID(g.adjacency[e.To], id)

	return *e, true
}

// Edge returns a copy of edge id.
func (g *Graph) Edge(id string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// FindEdge returns the edge of the given kind between from and to, honoring
// the kind's ordering rule (directed: ordered pair; others: unordered).
func (g *Graph) FindEdge(from, to string, kind EdgeKind) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.pairs[keyFor(from, to, kind)]
	if !ok {
		return Edge{}, false
	}

	return *g.edges[eid], true
}
