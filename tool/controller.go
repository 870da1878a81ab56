// SPDX-License-Identifier: MIT

package tool

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/graphisual/core"
	"github.com/katalvlaran/graphisual/ctxlog"
	"github.com/katalvlaran/graphisual/engine"
	"github.com/katalvlaran/graphisual/playback"
	"github.com/katalvlaran/graphisual/surface"
)

// Controller routes editor actions to the graph, the engine and the
// playback scheduler.
type Controller struct {
	g     *core.Graph
	sched *playback.Scheduler
	surf  surface.Surface

	log       *slog.Logger
	prompt    WeightPrompter
	radius    float64
	tolerance float64

	mu      sync.Mutex
	mode    Mode
	anchors int
	sel     Selection
	kind    core.EdgeKind
	speed   playback.Speed
	last    *engine.Trace

	// gen counts selection changes; an idle status only resets the editor
	// when nothing was re-selected since the launch.
	gen       uint64
	launchGen uint64
	launching bool
	session   string

	unsubscribe func()
}

// New wires a Controller to g, sched and surf. It installs sched.Guard as the
// graph mutation guard and listens for the end of every playback session.
func New(g *core.Graph, sched *playback.Scheduler, surf surface.Surface, opts ...Option) *Controller {
	c := &Controller{
		g:         g,
		sched:     sched,
		surf:      surf,
		log:       ctxlog.Discard(),
		prompt:    FixedWeight(1),
		radius:    DefaultNodeRadius,
		tolerance: DefaultEdgeTolerance,
		mode:      ModeDrawNode,
		kind:      EdgeUnselected,
		speed:     playback.DefaultSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}

	g.SetMutationGuard(sched.Guard)
	c.unsubscribe = sched.OnStatus(c.onStatus)

	return c
}

// Close detaches the controller from the scheduler.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// onStatus returns the editor to idle when the session this controller
// launched ends, unless the selection changed in the meantime.
func (c *Controller) onStatus(st playback.Status) {
	c.mu.Lock()
	if st.Running {
		if c.launching {
			c.session, c.launching = st.Session, false
		}
		c.mu.Unlock()

		return
	}
	if c.session == "" || st.Session != c.session {
		c.mu.Unlock()

		return
	}
	c.session = ""
	reset := c.gen == c.launchGen
	if reset {
		c.sel = Selection{}
		c.mode = ModeIdle
		c.anchors = 0
	}
	c.mu.Unlock()

	c.log.Debug("visualization finished", "session", st.Session, "applied", st.Applied, "cancelled", st.Cancelled, "reset", reset)
}

func (c *Controller) busy() error {
	if c.sched.Running() {
		return ErrBusy
	}

	return nil
}

// ActivateTool makes m the only active tool and clears the algorithm
// selection and edge kind. ModeReset also clears the graph.
func (c *Controller) ActivateTool(m Mode) error {
	if err := c.busy(); err != nil {
		return err
	}
	if m < ModeIdle || m >= ModeSelectAnchors {
		return fmt.Errorf("%w: %s", ErrInvalidTool, m)
	}

	c.mu.Lock()
	prev := c.sel
	c.mode = m
	c.anchors = 0
	c.sel = Selection{}
	c.kind = EdgeUnselected
	c.gen++
	c.mu.Unlock()

	c.clearAnchors(prev)
	c.log.Debug("tool activated", "mode", m.String())
	if m == ModeReset {
		return c.g.Clear()
	}

	return nil
}

// SelectEdgeKind sets the kind used for edge drawing, or EdgeUnselected to
// stop drawing. The mode goes to Idle and the algorithm to none.
func (c *Controller) SelectEdgeKind(k core.EdgeKind) error {
	if err := c.busy(); err != nil {
		return err
	}
	if k != EdgeUnselected && !k.Valid() {
		return fmt.Errorf("%w: %d", core.ErrUnknownKind, int(k))
	}

	c.mu.Lock()
	prev := c.sel
	c.mode = ModeIdle
	c.anchors = 0
	c.sel = Selection{}
	c.kind = k
	c.gen++
	c.mu.Unlock()

	c.clearAnchors(prev)

	c.log.Debug("edge kind selected", "kind", k.String())

	return nil
}

// SelectAlgorithm chooses the algorithm for the next run. engine.None
// returns to Idle; any other algorithm enters anchor selection for as many
// anchors as it needs. The edge kind is cleared.
func (c *Controller) SelectAlgorithm(a engine.Algorithm) error {
	if err := c.busy(); err != nil {
		return err
	}
	if !a.Valid() {
		return fmt.Errorf("%w: %d", engine.ErrUnknownAlgorithm, int(a))
	}

	c.mu.Lock()
	prev := c.sel
	c.kind = EdgeUnselected
	if a == engine.None {
		c.mode, c.anchors, c.sel = ModeIdle, 0, Selection{}
	} else {
		c.mode, c.anchors, c.sel = ModeSelectAnchors, a.Anchors(), Selection{Algorithm: a}
	}
	c.gen++
	c.mu.Unlock()

	c.clearAnchors(prev)

	c.log.Debug("algorithm selected", "algorithm", a.String(), "anchors", a.Anchors())

	return nil
}

// SetSpeed sets the delay between steps of the next run, in milliseconds.
func (c *Controller) SetSpeed(ms int) error {
	if err := c.busy(); err != nil {
		return err
	}
	s, err := playback.ParseSpeed(ms)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.speed = s
	c.mu.Unlock()

	return nil
}

// Click routes a single pointer press at p. Clicks that hit nothing are no-ops.
func (c *Controller) Click(p core.Point) error {
	if err := c.busy(); err != nil {
		return err
	}

	switch c.Mode() {
	case ModeDrawNode:
		n, err := c.g.AddNode(p)
		if err != nil {
			return err
		}
		c.log.Debug("node added", "node", n.ID)

		return nil

	case ModeDeleteNode:
		n, ok := nodeAt(c.g, p, c.radius)
		if !ok {
			return nil
		}

		return c.g.DeleteNode(n.ID)

	case ModeEditEdge:
		e, ok := edgeAt(c.g, p, c.tolerance)
		if !ok || !e.Kind.Weighted() {
			return nil
		}
		w, ok := c.prompt(e.From, e.To, e.Weight)
		if !ok {
			return nil
		}

		return c.g.SetEdgeWeight(e.ID, w)

	case ModeDeleteEdge:
		e, ok := edgeAt(c.g, p, c.tolerance)
		if !ok {
			return nil
		}

		return c.g.DeleteEdge(e.ID)

	case ModeSelectAnchors:
		n, ok := nodeAt(c.g, p, c.radius)
		if !ok {
			return nil
		}

		return c.pickAnchor(n.ID)
	}

	return nil
}

// Drag routes a press at from released at to.
func (c *Controller) Drag(from, to core.Point) error {
	if err := c.busy(); err != nil {
		return err
	}

	c.mu.Lock()
	mode, kind := c.mode, c.kind
	c.mu.Unlock()

	switch {
	case mode == ModeMoveNode:
		n, ok := nodeAt(c.g, from, c.radius)
		if !ok {
			return nil
		}

		return c.g.MoveNode(n.ID, to)

	case mode == ModeIdle && kind != EdgeUnselected:
		src, ok := nodeAt(c.g, from, c.radius)
		if !ok {
			return nil
		}
		dst, ok := nodeAt(c.g, to, c.radius)
		if !ok || dst.ID == src.ID {
			return nil
		}

		return c.drawEdge(src.ID, dst.ID, kind)
	}

	return nil
}

func (c *Controller) drawEdge(from, to string, kind core.EdgeKind) error {
	weight := 0.0
	if kind.Weighted() {
		current := 0.0
		if e, ok := c.g.FindEdge(from, to, kind); ok {
			current = e.Weight
		}
		w, ok := c.prompt(from, to, current)
		if !ok {
			return nil
		}
		weight = w
	}

	e, err := c.g.AddOrReplaceEdge(from, to, kind, weight)
	if err != nil {
		return err
	}
	c.log.Debug("edge drawn", "edge", e.ID, "kind", kind.String(), "weight", weight)

	return nil
}

// pickAnchor records id as the next missing anchor and launches the run
// once the selection is complete.
func (c *Controller) pickAnchor(id string) error {
	c.mu.Lock()
	if c.mode != ModeSelectAnchors {
		c.mu.Unlock()

		return nil
	}
	state := surface.StateStart
	if c.sel.Start == "" {
		c.sel.Start = id
	} else {
		c.sel.End = id
		state = surface.StateEnd
	}
	c.gen++
	sel, speed := c.sel, c.speed
	c.mu.Unlock()

	c.surf.SetElementState(id, state)
	if !sel.Complete() {
		return nil
	}

	return c.launch(sel, speed)
}

// launch runs the engine and hands the steps to the scheduler.
// Any rejection resets the selection; nothing is played.
func (c *Controller) launch(sel Selection, speed playback.Speed) error {
	tr, err := engine.Run(c.g, sel.Algorithm, sel.Start, sel.End)
	if err != nil {
		c.abort(sel)
		c.log.Debug("run rejected", "algorithm", sel.Algorithm.String(), "error", err)

		return err
	}

	c.resetStates()
	c.surf.SetElementState(tr.Start, surface.StateStart)
	if tr.End != "" {
		c.surf.SetElementState(tr.End, surface.StateEnd)
	}

	c.mu.Lock()
	c.last = tr
	c.launching = true
	c.launchGen = c.gen
	c.mu.Unlock()

	h, err := c.sched.Start(tr.Steps, speed)
	if err != nil {
		c.mu.Lock()
		c.launching = false
		c.mu.Unlock()
		c.abort(sel)

		return err
	}
	c.log.Debug("run started", "algorithm", sel.Algorithm.String(), "session", h.ID(), "steps", len(tr.Steps), "found", tr.Found)

	return nil
}

// abort drops the selection and clears any anchor highlight.
func (c *Controller) abort(sel Selection) {
	c.mu.Lock()
	c.sel = Selection{}
	c.mode = ModeIdle
	c.anchors = 0
	c.gen++
	c.mu.Unlock()

	c.clearAnchors(sel)
}

// clearAnchors removes the start/end highlight of an abandoned selection.
func (c *Controller) clearAnchors(sel Selection) {
	for _, id := range []string{sel.Start, sel.End} {
		if id != "" && c.g.HasNode(id) {
			c.surf.SetElementState(id, surface.StateDefault)
		}
	}
}

func (c *Controller) resetStates() {
	for _, n := range c.g.Nodes() {
		c.surf.SetElementState(n.ID, surface.StateDefault)
	}
	for _, e := range c.g.Edges() {
		c.surf.SetElementState(e.ID, surface.StateDefault)
	}
}

// Cancel stops a running visualization. It reports whether one was running.
func (c *Controller) Cancel() bool {
	return c.sched.Cancel()
}

// Mode returns the active tool.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

// Flags returns the per-option view of the active tool.
func (c *Controller) Flags() Flags {
	c.mu.Lock()
	defer c.mu.Unlock()

	var f Flags
	switch c.mode {
	case ModeDrawNode:
		f.DrawNode = true
	case ModeMoveNode:
		f.MoveNode = true
	case ModeDeleteNode:
		f.DeleteNode = true
	case ModeReset:
		f.Reset = true
	case ModeEditEdge:
		f.EditEdge = true
	case ModeDeleteEdge:
		f.DeleteEdge = true
	case ModeSelectAnchors:
		f.SelectStartNode = c.sel.Start == ""
		if c.anchors > 1 {
			f.SelectEndNode = c.sel.End == ""
		}
	}

	return f
}

// Selection returns the algorithm selection.
func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sel
}

// EdgeKind returns the kind used for edge drawing, or EdgeUnselected.
func (c *Controller) EdgeKind() core.EdgeKind {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.kind
}

// Speed returns the playback speed for the next run.
func (c *Controller) Speed() playback.Speed {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// Running reports whether a visualization is playing.
func (c *Controller) Running() bool { return c.sched.Running() }

// LastTrace returns the trace of the most recent launched run, or nil.
func (c *Controller) LastTrace() *engine.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
