// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IncidentEdges, Degree).
// Determinism:
//   - All results follow adjacency insertion order; nothing is sorted.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "fmt"

// Neighbors returns the adjacency entries of node id under the traversal policy.
//
// Neighborhood policy:
//   - Directed edges: included only when e.From == id.
//   - Undirected and weighted edges: included from both endpoints.
//
// Weight is Edge.Cost(), i.e. 1 for unweighted kinds.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	ids := g.adjacency[id]
	out := make([]Neighbor, 0, len(ids))
	var e *Edge
	for _, eid := range ids {
		e = g.edges[eid]
		if e == nil {
			continue
		}
		if e.Kind.Directed() && e.From != id {
			continue
		}
		out = append(out, Neighbor{EdgeID: e.ID, NodeID: e.Other(id), Weight: e.Cost()})
	}

	return out, nil
}

// IncidentEdges returns copies of every edge touching node id, regardless of
// direction, in adjacency order.
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, *g.edges[eid])
	}

	return out, nil
}

// Degree returns the number of edges touching node id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
