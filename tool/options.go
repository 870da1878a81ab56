// SPDX-License-Identifier: MIT

package tool

import (
	"log/slog"

	"github.com/katalvlaran/graphisual/core"
	"github.com/katalvlaran/graphisual/playback"
)

// WeightPrompter asks for the weight of the edge between from and to.
// current is the existing weight (0 for a new edge). Returning ok=false
// cancels the action.
type WeightPrompter func(from, to string, current float64) (weight float64, ok bool)

// FixedWeight returns a prompter that always answers w.
func FixedWeight(w float64) WeightPrompter {
	return func(string, string, float64) (float64, bool) { return w, true }
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPrompter sets how weighted edges get their weight. Nil is ignored.
func WithPrompter(p WeightPrompter) Option {
	return func(c *Controller) {
		if p != nil {
			c.prompt = p
		}
	}
}

// WithInitialMode sets the starting tool. ModeSelectAnchors and ModeReset
// fall back to ModeIdle.
func WithInitialMode(m Mode) Option {
	return func(c *Controller) {
		if m < ModeIdle || m >= ModeSelectAnchors || m == ModeReset {
			m = ModeIdle
		}
		c.mode = m
	}
}

// WithNodeRadius sets the node hit radius. Non-positive values are ignored.
func WithNodeRadius(r float64) Option {
	return func(c *Controller) {
		if r > 0 {
			c.radius = r
		}
	}
}

// WithEdgeTolerance sets the edge hit tolerance. Non-positive values are ignored.
func WithEdgeTolerance(t float64) Option {
	return func(c *Controller) {
		if t > 0 {
			c.tolerance = t
		}
	}
}

// WithSpeed sets the initial playback speed. Invalid speeds are ignored.
func WithSpeed(s playback.Speed) Option {
	return func(c *Controller) {
		if s.Valid() {
			c.speed = s
		}
	}
}

// WithEdgeKind preselects an edge kind for drawing.
func WithEdgeKind(k core.EdgeKind) Option {
	return func(c *Controller) {
		if k.Valid() {
			c.kind = k
		}
	}
}
