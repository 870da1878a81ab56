// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphisual/core"
)

// EdgeSpec connects two blueprint nodes by index.
type EdgeSpec struct {
	From, To int
	Weight   float64
}

// Blueprint is a laid-out graph that has not been added to a core.Graph yet.
type Blueprint struct {
	Nodes []core.Point
	Edges []EdgeSpec
}

// Constructor appends one preset to bp.
type Constructor func(bp *Blueprint, cfg builderConfig) error

// Build resolves opts and applies cons in order to a fresh Blueprint.
func Build(opts []BuilderOption, cons ...Constructor) (*Blueprint, error) {
	cfg := newBuilderConfig(opts...)
	bp := &Blueprint{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(bp, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return bp, nil
}

// addNode appends p and returns its index.
func (bp *Blueprint) addNode(p core.Point) int {
	bp.Nodes = append(bp.Nodes, p)

	return len(bp.Nodes) - 1
}

func (bp *Blueprint) addEdge(from, to int, cfg builderConfig) {
	bp.Edges = append(bp.Edges, EdgeSpec{From: from, To: to, Weight: cfg.weightFn(cfg.rng)})
}

// Apply adds bp to g using edge kind. Unweighted kinds ignore the edge
// weights. It returns the created nodes in blueprint order.
func (bp *Blueprint) Apply(g *core.Graph, kind core.EdgeKind) ([]core.Node, error) {
	nodes := make([]core.Node, len(bp.Nodes))
	for i, p := range bp.Nodes {
		n, err := g.AddNode(p)
		if err != nil {
			return nil, fmt.Errorf("Apply: node %d: %w: %w", i, ErrConstructFailed, err)
		}
		nodes[i] = n
	}
	for _, e := range bp.Edges {
		w := 0.0
		if kind.Weighted() {
			w = e.Weight
		}
		if _, err := g.AddOrReplaceEdge(nodes[e.From].ID, nodes[e.To].ID, kind, w); err != nil {
			return nil, fmt.Errorf("Apply: edge %d→%d: %w: %w", e.From, e.To, ErrConstructFailed, err)
		}
	}

	return nodes, nil
}

// Preset returns the constructor registered under name with size n.
// Known names: sample, path, cycle, star, wheel, complete, grid, random.
// grid uses an n×n layout and random uses edge probability 0.4.
func Preset(name string, n int) (Constructor, error) {
	switch name {
	case "sample":
		return Sample(), nil
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "random":
		return RandomSparse(n, 0.4), nil
	default:
		return nil, fmt.Errorf("Preset %q: %w", name, ErrConstructFailed)
	}
}

// PresetNames lists the names Preset accepts.
func PresetNames() []string {
	return []string{"sample", "path", "cycle", "star", "wheel", "complete", "grid", "random"}
}
