// SPDX-License-Identifier: MIT

// Package surface declares the write-only drawable surface the editor and the
// playback scheduler issue commands to, plus a few ready-made implementations.
//
// The core never reads geometry back from a surface. Whatever renders the
// graph (a canvas, an SVG tree, a terminal) implements Surface and receives
// discrete imperative commands.
//
// Implementations:
//
//   - Recorder  – records every command; used by tests and CLI summaries.
//   - Terminal  – prints one colored line per command (github.com/fatih/color).
//   - Multi     – fans commands out to several surfaces.
//
// Bind connects a core.Graph to a Surface so that every committed mutation
// re-renders exactly the affected elements.
package surface

import (
	"fmt"

	"github.com/katalvlaran/graphisual/core"
)

// State is the visual state of a node or edge.
type State int

const (
	StateDefault State = iota
	StateVisited
	StatePath
	StateStart
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateVisited:
		return "visited"
	case StatePath:
		return "path"
	case StateStart:
		return "start"
	case StateEnd:
		return "end"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Style carries presentation hints for a render command.
type Style struct {
	State State
	Label string
}

// Surface receives drawing commands. Implementations must be safe for use from
// the playback goroutine; callers never issue two commands concurrently.
type Surface interface {
	RenderNode(id string, pos core.Point, style Style)
	RenderEdge(id string, from, to core.Point, kind core.EdgeKind, weight float64, style Style)
	RemoveNode(id string)
	RemoveEdge(id string)
	SetElementState(id string, state State)
}

// EdgeLabel returns the label drawn on an edge: its weight for weighted
// edges, nothing otherwise.
func EdgeLabel(e core.Edge) string {
	if !e.Kind.Weighted() {
		return ""
	}

	return fmt.Sprintf("%g", e.Weight)
}

// Multi fans every command out to each surface in order.
type Multi []Surface

func (m Multi) RenderNode(id string, pos core.Point, style Style) {
	for _, s := range m {
		s.RenderNode(id, pos, style)
	}
}

func (m Multi) RenderEdge(id string, from, to core.Point, kind core.EdgeKind, weight float64, style Style) {
	for _, s := range m {
		s.RenderEdge(id, from, to, kind, weight, style)
	}
}

func (m Multi) RemoveNode(id string) {
	for _, s := range m {
		s.RemoveNode(id)
	}
}

func (m Multi) RemoveEdge(id string) {
	for _, s := range m {
		s.RemoveEdge(id)
	}
}

func (m Multi) SetElementState(id string, state State) {
	for _, s := range m {
		s.SetElementState(id, state)
	}
}
