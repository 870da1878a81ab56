// SPDX-License-Identifier: MIT

package tool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphisual/core"
	"github.com/katalvlaran/graphisual/engine"
)

// Sentinel errors.
var (
	// ErrBusy indicates a visualization is running.
	ErrBusy = errors.New("tool: visualization is running")
	// ErrInvalidTool indicates a mode that cannot be activated directly.
	ErrInvalidTool = errors.New("tool: invalid tool")
)

// EdgeUnselected is the edge-kind value meaning "no edge drawing".
const EdgeUnselected core.EdgeKind = -1

// Mode is the single active editor tool.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawNode
	ModeMoveNode
	ModeDeleteNode
	ModeReset
	ModeEditEdge
	ModeDeleteEdge
	ModeSelectAnchors
)

var modeNames = [...]string{
	ModeIdle:          "idle",
	ModeDrawNode:      "draw-node",
	ModeMoveNode:      "move-node",
	ModeDeleteNode:    "delete-node",
	ModeReset:         "reset",
	ModeEditEdge:      "edit-edge",
	ModeDeleteEdge:    "delete-edge",
	ModeSelectAnchors: "select-anchors",
}

func (m Mode) String() string {
	if m < ModeIdle || m > ModeSelectAnchors {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return ModeIdle, fmt.Errorf("%w: %q", ErrInvalidTool, s)
}

// Flags is the per-option boolean view of the active mode.
type Flags struct {
	DrawNode        bool
	MoveNode        bool
	DeleteNode      bool
	Reset           bool
	EditEdge        bool
	DeleteEdge      bool
	SelectStartNode bool
	SelectEndNode   bool
}

// Count returns how many flags are set.
func (f Flags) Count() int {
	n := 0
	for _, b := range []bool{f.DrawNode, f.MoveNode, f.DeleteNode, f.Reset, f.EditEdge, f.DeleteEdge, f.SelectStartNode, f.SelectEndNode} {
		if b {
			n++
		}
	}

	return n
}

// Selection is the algorithm chosen for the next run and its anchors.
type Selection struct {
	Algorithm engine.Algorithm
	Start     string
	End       string
}

// Complete reports whether every anchor the algorithm needs is set.
func (s Selection) Complete() bool {
	switch s.Algorithm.Anchors() {
	case 1:
		return s.Start != ""
	case 2:
		return s.Start != "" && s.End != ""
	default:
		return false
	}
}
