// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/graphisual/core"
)

// Run computes the visualization trace of alg over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. alg must be a real algorithm (ErrNoAlgorithm, ErrUnknownAlgorithm).
//  3. start must exist (ErrAnchorNotFound).
//  4. Two-anchor algorithms: end must exist (ErrAnchorNotFound).
//
// On error no Trace is returned, so a rejected run can never be half-played.
func Run(g *core.Graph, alg Algorithm, start, end string, opts ...Option) (*Trace, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case alg == None:
		return nil, ErrNoAlgorithm
	case !alg.Valid():
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	// A missing start rejects the run instead of yielding [VisitNode(start), Done].
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrAnchorNotFound, start)
	}
	if alg.Anchors() < 2 {
		end = ""
	} else if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %q", ErrAnchorNotFound, end)
	}

	tr := &Trace{Algorithm: alg, Start: start, End: end}
	var err error
	switch alg {
	case BFS:
		err = runBFS(o, g, tr)
	case DFS:
		err = runDFS(o, g, tr)
	case Dijkstra:
		err = runDijkstra(o, g, tr)
	}
	if err != nil {
		return nil, err
	}
	tr.Steps = append(tr.Steps, Step{Kind: Done})

	return tr, nil
}

// emitter appends steps to a trace; shared by every walker.
type emitter struct {
	tr *Trace
}

func (e emitter) add(k StepKind, id string) { e.tr.Steps = append(e.tr.Steps, Step{Kind: k, ID: id}) }

// neighbors wraps core.Neighbors with engine context.
func neighbors(g *core.Graph, id string) ([]core.Neighbor, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
	}

	return nbs, nil
}
