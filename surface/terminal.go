// SPDX-License-Identifier: MIT

package surface

import (
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/graphisual/core"
)

// Palette colors
var (
	stateColors = map[State]*color.Color{
		StateDefault: color.New(color.FgHiBlack),
		StateVisited: color.New(color.FgYellow),
		StatePath:    color.New(color.FgGreen, color.Bold),
		StateStart:   color.New(color.FgCyan, color.Bold),
		StateEnd:     color.New(color.FgMagenta, color.Bold),
	}
	removeColor = color.New(color.FgRed)
	renderColor = color.New(color.FgHiWhite)
)

// Terminal is a Surface that prints one colored line per command to w.
// Colors follow color.NoColor, so output degrades to plain text when w is
// not a terminal.
type Terminal struct {
	w io.Writer
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) RenderNode(id string, pos core.Point, style Style) {
	renderColor.Fprintf(t.w, "  ● %-6s at (%.0f, %.0f)\n", id, pos.X, pos.Y)
}

func (t *Terminal) RenderEdge(id string, from, to core.Point, kind core.EdgeKind, weight float64, style Style) {
	arrow := "──"
	if kind.Directed() {
		arrow = "─▶"
	}
	line := "  " + arrow + " " + id
	if style.Label != "" {
		line += " [" + style.Label + "]"
	}
	renderColor.Fprintf(t.w, "%s (%.0f, %.0f)→(%.0f, %.0f)\n", line, from.X, from.Y, to.X, to.Y)
}

func (t *Terminal) RemoveNode(id string) {
	removeColor.Fprintf(t.w, "  ✗ node %s\n", id)
}

func (t *Terminal) RemoveEdge(id string) {
	removeColor.Fprintf(t.w, "  ✗ edge %s\n", id)
}

func (t *Terminal) SetElementState(id string, state State) {
	c, ok := stateColors[state]
	if !ok {
		c = renderColor
	}
	c.Fprintf(t.w, "  %-8s %s\n", state, id)
}
