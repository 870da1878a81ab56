// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("engine: graph is nil")

	// ErrNoAlgorithm is returned when Run is called with None.
	ErrNoAlgorithm = errors.New("engine: no algorithm selected")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the declared set.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrAnchorNotFound is returned when a required start/end node is absent.
	ErrAnchorNotFound = errors.New("engine: anchor node not found")

	// ErrNegativeWeight is returned when a shortest-path run meets a negative edge weight.
	ErrNegativeWeight = errors.New("engine: negative edge weight encountered")

	// ErrNeighbors is returned when fetching neighbors from the graph fails mid-run.
	ErrNeighbors = errors.New("engine: neighbor iteration error")
)

// Algorithm selects what Run computes.
type Algorithm int

const (
	// None is the "Select Algorithm" placeholder.
	None Algorithm = iota
	// BFS is breadth-first traversal of the start node's reachable set.
	BFS
	// DFS is depth-first (pre-order) traversal of the start node's reachable set.
	DFS
	// Dijkstra is the single-pair weighted shortest path.
	Dijkstra
)

type algorithmInfo struct {
	key     string
	title   string
	anchors int
}

var algorithmTable = [...]algorithmInfo{
	None:     {key: "select", title: "Select Algorithm", anchors: 0},
	BFS:      {key: "bfs", title: "Breadth First Search", anchors: 1},
	DFS:      {key: "dfs", title: "Depth First Search", anchors: 1},
	Dijkstra: {key: "dijkstra", title: "Dijkstra's Shortest Path", anchors: 2},
}

// Valid reports whether a is one of the declared algorithms (None included).
func (a Algorithm) Valid() bool { return a >= None && a <= Dijkstra }

// Anchors returns how many anchors the algorithm needs:
// 0 for None, 1 (start) for traversals, 2 (start and end) for shortest path.
func (a Algorithm) Anchors() int {
	if !a.Valid() {
		return 0
	}

	return algorithmTable[a].anchors
}

// String returns the short key of a ("bfs", "dijkstra", ...).
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmTable[a].key
}

// Title returns the human-readable name shown by control surfaces.
func (a Algorithm) Title() string {
	if !a.Valid() {
		return a.String()
	}

	return algorithmTable[a].title
}

// Algorithms returns every selectable algorithm (None excluded) in menu order.
func Algorithms() []Algorithm { return []Algorithm{BFS, DFS, Dijkstra} }

// ParseAlgorithm maps a key to an Algorithm. "select", "none" and "" map to None.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "", "none":
		return None, nil
	}
	for a, info := range algorithmTable {
		if info.key == key {
			return Algorithm(a), nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// StepKind tags a Step.
type StepKind int

const (
	VisitNode StepKind = iota + 1
	VisitEdge
	PathNode
	PathEdge
	Done
)

func (k StepKind) String() string {
	switch k {
	case VisitNode:
		return "visit-node"
	case VisitEdge:
		return "visit-edge"
	case PathNode:
		return "path-node"
	case PathEdge:
		return "path-edge"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// IsPath reports whether k marks part of the final path.
func (k StepKind) IsPath() bool { return k == PathNode || k == PathEdge }

// Step is one atomic, replayable visualization event.
// ID is a node ID for *Node kinds, an edge ID for *Edge kinds and empty for Done.
type Step struct {
	Kind StepKind
	ID   string
}

// String renders s as "kind:id" (or "done").
func (s Step) String() string {
	if s.Kind == Done {
		return s.Kind.String()
	}

	return s.Kind.String() + ":" + s.ID
}

// Trace is the outcome of one Run.
type Trace struct {
	Algorithm Algorithm
	Start     string
	End       string

	// Steps always ends with exactly one Done.
	Steps []Step

	// Found reports whether a shortest-path run reached End.
	// Traversals leave it false.
	Found bool

	// Cost is the total weight of Path (0 when !Found).
	Cost float64

	// Path lists node IDs from Start to End when Found.
	Path []string
}

// Visited returns node IDs in VisitNode order.
func (t *Trace) Visited() []string {
	out := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		if s.Kind == VisitNode {
			out = append(out, s.ID)
		}
	}

	return out
}

// Option configures a Run.
type Option func(*Options)

// Options holds run parameters.
type Options struct {
	// Ctx allows cancellation of long computations; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
