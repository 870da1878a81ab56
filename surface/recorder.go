// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/graphisual/core"
)

// Op names a surface command.
type Op string

const (
	OpRenderNode Op = "render-node"
	OpRenderEdge Op = "render-edge"
	OpRemoveNode Op = "remove-node"
	OpRemoveEdge Op = "remove-edge"
	OpSetState   Op = "set-state"
)

// Command is one recorded surface call.
type Command struct {
	Op     Op
	ID     string
	Pos    core.Point // RenderNode position, RenderEdge From
	To     core.Point // RenderEdge To
	Kind   core.EdgeKind
	Weight float64
	Style  Style
	State  State // SetElementState only
}

func (c Command) String() string {
	if c.Op == OpSetState {
		return fmt.Sprintf("%s %s=%s", c.Op, c.ID, c.State)
	}

	return fmt.Sprintf("%s %s", c.Op, c.ID)
}

// Recorder is a Surface that records every command it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
	states   map[string]State
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{states: make(map[string]State)}
}

func (r *Recorder) record(c Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, c)
	switch c.Op {
	case OpSetState:
		r.states[c.ID] = c.State
	case OpRenderNode, OpRenderEdge:
		r.states[c.ID] = c.Style.State
	case OpRemoveNode, OpRemoveEdge:
		delete(r.states, c.ID)
	}
}

func (r *Recorder) RenderNode(id string, pos core.Point, style Style) {
	r.record(Command{Op: OpRenderNode, ID: id, Pos: pos, Style: style})
}

func (r *Recorder) RenderEdge(id string, from, to core.Point, kind core.EdgeKind, weight float64, style Style) {
	r.record(Command{Op: OpRenderEdge, ID: id, Pos: from, To: to, Kind: kind, Weight: weight, Style: style})
}

func (r *Recorder) RemoveNode(id string) { r.record(Command{Op: OpRemoveNode, ID: id}) }

func (r *Recorder) RemoveEdge(id string) { r.record(Command{Op: OpRemoveEdge, ID: id}) }

func (r *Recorder) SetElementState(id string, state State) {
	r.record(Command{Op: OpSetState, ID: id, State: state})
}

// Commands returns a copy of every recorded command in arrival order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)

	return out
}

// Filter returns the recorded commands with the given op.
func (r *Recorder) Filter(op Op) []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Command
	for _, c := range r.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}

	return out
}

// State returns the last state recorded for element id.
func (r *Recorder) State(id string) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[id]

	return s, ok
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.commands)
}

// Reset forgets every recorded command but keeps the element states.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = nil
	r.mu.Unlock()
}
