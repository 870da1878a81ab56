// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Node and Edge types,
// the EdgeKind enumeration, sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEndpoint indicates an edge referenced a node that does not exist.
	ErrInvalidEndpoint = errors.New("core: invalid edge endpoint")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-finite weight, or a non-zero weight on an unweighted edge kind.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrUnknownKind indicates an EdgeKind outside the declared set.
	ErrUnknownKind = errors.New("core: unknown edge kind")
)

// Point is a position on the drawing plane.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// EdgeKind selects the semantics of an edge.
type EdgeKind int

const (
	// KindUndirected is a bidirectional edge with unit traversal cost.
	KindUndirected EdgeKind = iota

	// KindDirected is a one-way edge From→To with unit traversal cost.
	KindDirected

	// KindWeighted is a bidirectional edge carrying an explicit weight.
	KindWeighted
)

var kindNames = [...]string{
	KindUndirected: "undirected",
	KindDirected:   "directed",
	KindWeighted:   "weighted",
}

// String returns the lowercase name of the kind.
func (k EdgeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k EdgeKind) Valid() bool { return k >= KindUndirected && k <= KindWeighted }

// Directed reports whether direction matters for k.
func (k EdgeKind) Directed() bool { return k == KindDirected }

// Weighted reports whether k carries an explicit weight.
func (k EdgeKind) Weighted() bool { return k == KindWeighted }

// ParseEdgeKind maps a kind name (case-insensitive) to an EdgeKind.
func ParseEdgeKind(s string) (EdgeKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return EdgeKind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Node is a vertex placed on the drawing plane.
//
// Seq is the insertion sequence number; it is strictly increasing across the
// lifetime of a Graph and is the tie-breaker used by the algorithms.
type Node struct {
	ID  string
	Pos Point
	Seq uint64
}

// Edge connects two nodes.
//
// For KindDirected the edge goes From→To. For the other kinds From/To keep the
// orientation the edge was drawn with, but traversal is allowed both ways.
// Weight is always zero for unweighted kinds.
type Edge struct {
	ID     string
	From   string
	To     string
	Kind   EdgeKind
	Weight float64
}

// Cost returns the traversal cost of e: Weight for weighted edges, 1 otherwise.
func (e Edge) Cost() float64 {
	if e.Kind.Weighted() {
		return e.Weight
	}

	return 1
}

// Other returns the endpoint opposite to id.
// If id is not an endpoint of e, Other returns "".
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// Touches reports whether id is an endpoint of e.
func (e Edge) Touches(id string) bool { return e.From == id || e.To == id }

// Neighbor is one adjacency entry as seen from a given node.
type Neighbor struct {
	EdgeID string
	NodeID string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMutationGuard installs fn as the mutation guard (see SetMutationGuard).
func WithMutationGuard(fn func() error) GraphOption {
	return func(g *Graph) { g.guard = fn }
}

// pairKey identifies the endpoint pair of an edge within its kind.
// Unordered kinds store endpoints in canonical (lexicographic) order.
type pairKey struct {
	a, b string
	kind EdgeKind
}

func keyFor(from, to string, kind EdgeKind) pairKey {
	if !kind.Directed() && to < from {
		from, to = to, from
	}

	return pairKey{a: from, b: to, kind: kind}
}

// Graph is the editable in-memory graph.
//
// mu guards every catalog below; listeners are guarded separately so that
// event delivery never runs under the catalog lock.
type Graph struct {
	mu sync.RWMutex

	guard func() error // consulted before every mutation; nil means "always allowed"

	nextNodeID uint64 // atomic node ID / sequence generator
	nextEdgeID uint64 // atomic edge ID generator

	nodes     map[string]*Node
	nodeOrder []string // node IDs in insertion order
	edges     map[string]*Edge
	edgeOrder []string // edge IDs in insertion order

	// adjacency[nodeID] lists incident edge IDs in insertion order.
	// Directed edges are listed on both endpoints; Neighbors filters by direction.
	adjacency map[string][]string

	pairs map[pairKey]string // endpoint pair → edge ID

	muListeners  sync.Mutex
	listeners    []listenerEntry
	nextListener uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
		pairs:     make(map[pairKey]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SetMutationGuard replaces the mutation guard.
// Every mutating method calls fn first; a non-nil error is returned to the
// caller unchanged and the graph is not modified. Passing nil removes the guard.
func (g *Graph) SetMutationGuard(fn func() error) {
	g.mu.Lock()
	g.guard = fn
	g.mu.Unlock()
}

// admit runs the mutation guard. Callers must not hold mu.
func (g *Graph) admit() error {
	g.mu.RLock()
	fn := g.guard
	g.mu.RUnlock()
	if fn == nil {
		return nil
	}

	return fn()
}
