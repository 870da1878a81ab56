// SPDX-License-Identifier: MIT

// Package core provides the authoritative, thread-safe in-memory graph that the
// editor mutates and the algorithm engine reads.
//
// The Graph G = (V,E) is built interactively:
//
//   - Nodes carry a 2D position and a stable insertion sequence.
//   - Edges come in three kinds: undirected, directed, weighted (undirected
//     with an explicit weight).
//   - At most one edge exists per endpoint pair per kind; re-adding replaces
//     the edge in place (same ID, same adjacency slot).
//   - Deleting a node cascades to every incident edge.
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() enumerate in insertion order. Algorithms
//	rely on this for stable tie-breaking, so no method here ever sorts by map
//	iteration or by ID.
//
// Change events:
//
//	Every committed mutation emits one Event per affected element
//	(NodeAdded, NodeMoved, NodeRemoved, EdgeAdded, EdgeChanged, EdgeRemoved)
//	to listeners registered with Subscribe. Events are delivered synchronously,
//	after the write lock is released, in the order the changes were applied.
//
// Mutation guard:
//
//	WithMutationGuard / SetMutationGuard install a func() error consulted at
//	the top of every mutating method. A non-nil result is returned unchanged
//	and the graph is left untouched. The editor uses this to freeze the graph
//	while an animation is replaying.
//
// Core Methods:
//
//	AddNode(p Point) (Node, error)
//	MoveNode(id string, p Point) error
//	DeleteNode(id string) error                       // absent id ⇒ nil
//	AddOrReplaceEdge(from, to string, kind EdgeKind, weight float64) (Edge, error)
//	SetEdgeWeight(id string, weight float64) error
//	DeleteEdge(id string) error
//	Neighbors(id string) ([]Neighbor, error)
//	Clear()
//
// Errors:
//
//	ErrInvalidEndpoint – edge references a missing node
//	ErrNodeNotFound    – missing node
//	ErrEdgeNotFound    – missing edge
//	ErrLoopNotAllowed  – from == to
//	ErrBadWeight       – NaN/Inf weight, or non-zero weight on an unweighted kind
//	ErrUnknownKind     – edge kind outside the declared set
package core
