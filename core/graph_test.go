// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphisual/core"
)

// triangle builds A–B(1), B–C(2), A–C(5) with weighted edges.
func triangle(t *testing.T) (*core.Graph, core.Node, core.Node, core.Node) {
	t.Helper()
	g := core.NewGraph()
	a, err := g.AddNode(core.Point{X: 0, Y: 0})
	require.NoError(t, err)
	b, err := g.AddNode(core.Point{X: 10, Y: 0})
	require.NoError(t, err)
	c, err := g.AddNode(core.Point{X: 20, Y: 0})
	require.NoError(t, err)
	_, err = g.AddOrReplaceEdge(a.ID, b.ID, core.KindWeighted, 1)
	require.NoError(t, err)
	_, err = g.AddOrReplaceEdge(b.ID, c.ID, core.KindWeighted, 2)
	require.NoError(t, err)
	_, err = g.AddOrReplaceEdge(a.ID, c.ID, core.KindWeighted, 5)
	require.NoError(t, err)

	return g, a, b, c
}

func TestAddNode_IDsAndOrder(t *testing.T) {
	g := core.NewGraph()
	n1, err := g.AddNode(core.Point{X: 1, Y: 2})
	require.NoError(t, err)
	n2, err := g.AddNode(core.Point{X: 3, Y: 4})
	require.NoError(t, err)

	assert.Equal(t, "n1", n1.ID)
	assert.Equal(t, "n2", n2.ID)
	assert.Less(t, n1.Seq, n2.Seq)
	assert.Equal(t, []core.Node{n1, n2}, g.Nodes())

	// IDs are not reused after deletion.
	require.NoError(t, g.DeleteNode(n2.ID))
	n3, err := g.AddNode(core.Point{})
	require.NoError(t, err)
	assert.Equal(t, "n3", n3.ID)
}

func TestMoveNode(t *testing.T) {
	g := core.NewGraph()
	n, _ := g.AddNode(core.Point{})
	require.NoError(t, g.MoveNode(n.ID, core.Point{X: 7, Y: 9}))
	got, ok := g.Node(n.ID)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 7, Y: 9}, got.Pos)

	err := g.MoveNode("missing", core.Point{})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDeleteNode_AbsentIsSilent(t *testing.T) {
	g := core.NewGraph()
	assert.NoError(t, g.DeleteNode("nope"))
}

func TestDeleteNode_Cascades(t *testing.T) {
	g, a, b, c := triangle(t)

	require.NoError(t, g.DeleteNode(b.ID))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, a.ID, edges[0].From)
	assert.Equal(t, c.ID, edges[0].To)
	assert.Equal(t, 5.0, edges[0].Weight)

	nbs, err := g.Neighbors(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{EdgeID: edges[0].ID, NodeID: c.ID, Weight: 5}}, nbs)
}

func TestAddOrReplaceEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{})

	_, err := g.AddOrReplaceEdge(a.ID, "ghost", core.KindUndirected, 0)
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
	_, err = g.AddOrReplaceEdge("ghost", a.ID, core.KindUndirected, 0)
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
	assert.Zero(t, g.EdgeCount(), "rejected edge must not be created")

	_, err = g.AddOrReplaceEdge(a.ID, a.ID, core.KindUndirected, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddOrReplaceEdge("ghost", "ghost", core.KindUndirected, 0)
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint, "missing endpoints are reported before loops")

	b, _ := g.AddNode(core.Point{})
	_, err = g.AddOrReplaceEdge(a.ID, b.ID, core.KindDirected, 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddOrReplaceEdge(a.ID, b.ID, core.KindWeighted, math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddOrReplaceEdge(a.ID, b.ID, core.EdgeKind(42), 0)
	assert.ErrorIs(t, err, core.ErrUnknownKind)
	assert.Zero(t, g.EdgeCount())
}

func TestAddOrReplaceEdge_ReplacesInPlace(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{})
	b, _ := g.AddNode(core.Point{})
	c, _ := g.AddNode(core.Point{})

	e1, err := g.AddOrReplaceEdge(a.ID, b.ID, core.KindWeighted, 4)
	require.NoError(t, err)
	_, err = g.AddOrReplaceEdge(a.ID, c.ID, core.KindWeighted, 1)
	require.NoError(t, err)

	// Reverse orientation of an undirected kind hits the same pair.
	e1b, err := g.AddOrReplaceEdge(b.ID, a.ID, core.KindWeighted, 9)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e1b.ID)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 9.0, g.Edges()[0].Weight, "replaced edge keeps its slot")

	// A different kind between the same endpoints is a separate edge.
	_, err = g.AddOrReplaceEdge(a.ID, b.ID, core.KindUndirected, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestDirectedEdges_OrderedPairs(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{})
	b, _ := g.AddNode(core.Point{})

	ab, err := g.AddOrReplaceEdge(a.ID, b.ID, core.KindDirected, 0)
	require.NoError(t, err)
	ba, err := g.AddOrReplaceEdge(b.ID, a.ID, core.KindDirected, 0)
	require.NoError(t, err)
	assert.NotEqual(t, ab.ID, ba.ID)

	found, ok := g.FindEdge(a.ID, b.ID, core.KindDirected)
	require.True(t, ok)
	assert.Equal(t, ab.ID, found.ID)

	require.NoError(t, g.DeleteEdge(ba.ID))
	nbA, _ := g.Neighbors(a.ID)
	nbB, _ := g.Neighbors(b.ID)
	assert.Len(t, nbA, 1)
	assert.Empty(t, nbB, "directed edge is not traversable backwards")
}

func TestNeighbors_AdjacencyOrderAndCost(t *testing.T) {
	g := core.NewGraph()
	hub, _ := g.AddNode(core.Point{})
	x, _ := g.AddNode(core.Point{})
	y, _ := g.AddNode(core.Point{})
	z, _ := g.AddNode(core.Point{})

	ez, _ := g.AddOrReplaceEdge(hub.ID, z.ID, core.KindUndirected, 0)
	ex, _ := g.AddOrReplaceEdge(x.ID, hub.ID, core.KindWeighted, 2.5)
	ey, _ := g.AddOrReplaceEdge(hub.ID, y.ID, core.KindDirected, 0)

	nbs, err := g.Neighbors(hub.ID)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{EdgeID: ez.ID, NodeID: z.ID, Weight: 1},
		{EdgeID: ex.ID, NodeID: x.ID, Weight: 2.5},
		{EdgeID: ey.ID, NodeID: y.ID, Weight: 1},
	}, nbs)

	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestSetEdgeWeight(t *testing.T) {
	g, a, b, _ := triangle(t)
	e, ok := g.FindEdge(a.ID, b.ID, core.KindWeighted)
	require.True(t, ok)

	require.NoError(t, g.SetEdgeWeight(e.ID, 11))
	got, _ := g.Edge(e.ID)
	assert.Equal(t, 11.0, got.Weight)

	assert.ErrorIs(t, g.SetEdgeWeight("e404", 1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.SetEdgeWeight(e.ID, math.Inf(1)), core.ErrBadWeight)

	u, _ := g.AddOrReplaceEdge(a.ID, b.ID, core.KindUndirected, 0)
	assert.ErrorIs(t, g.SetEdgeWeight(u.ID, 2), core.ErrBadWeight)
}

func TestDeleteEdge(t *testing.T) {
	g, a, b, _ := triangle(t)
	e, _ := g.FindEdge(a.ID, b.ID, core.KindWeighted)
	require.NoError(t, g.DeleteEdge(e.ID))
	assert.ErrorIs(t, g.DeleteEdge(e.ID), core.ErrEdgeNotFound)
	_, ok := g.FindEdge(b.ID, a.ID, core.KindWeighted)
	assert.False(t, ok)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestClear(t *testing.T) {
	g, _, _, _ := triangle(t)
	require.NoError(t, g.Clear())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	n, _ := g.AddNode(core.Point{})
	assert.Equal(t, "n4", n.ID)
}

func TestMutationGuard(t *testing.T) {
	errFrozen := errors.New("frozen")
	frozen := false
	g := core.NewGraph(core.WithMutationGuard(func() error {
		if frozen {
			return errFrozen
		}
		return nil
	}))
	a, err := g.AddNode(core.Point{})
	require.NoError(t, err)
	b, err := g.AddNode(core.Point{})
	require.NoError(t, err)
	e, err := g.AddOrReplaceEdge(a.ID, b.ID, core.KindWeighted, 1)
	require.NoError(t, err)

	frozen = true
	_, err = g.AddNode(core.Point{})
	assert.ErrorIs(t, err, errFrozen)
	assert.ErrorIs(t, g.MoveNode(a.ID, core.Point{X: 5}), errFrozen)
	assert.ErrorIs(t, g.DeleteNode(a.ID), errFrozen)
	_, err = g.AddOrReplaceEdge(b.ID, a.ID, core.KindDirected, 0)
	assert.ErrorIs(t, err, errFrozen)
	assert.ErrorIs(t, g.SetEdgeWeight(e.ID, 4), errFrozen)
	assert.ErrorIs(t, g.DeleteEdge(e.ID), errFrozen)
	assert.ErrorIs(t, g.Clear(), errFrozen)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	got, _ := g.Node(a.ID)
	assert.Equal(t, core.Point{}, got.Pos)

	g.SetMutationGuard(nil)
	assert.NoError(t, g.DeleteNode(a.ID))
}

// TestCascadeCompleteness drives random add/delete sequences and checks that
// no edge ever references a deleted node.
func TestCascadeCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []core.EdgeKind{core.KindUndirected, core.KindDirected, core.KindWeighted}

	for round := 0; round < 50; round++ {
		g := core.NewGraph()
		var live []string
		for step := 0; step < 60; step++ {
			switch op := rng.Intn(4); {
			case op == 0 || len(live) < 2:
				n, err := g.AddNode(core.Point{X: rng.Float64(), Y: rng.Float64()})
				require.NoError(t, err)
				live = append(live, n.ID)
			case op == 1 || op == 2:
				from, to := live[rng.Intn(len(live))], live[rng.Intn(len(live))]
				if from == to {
					continue
				}
				k := kinds[rng.Intn(len(kinds))]
				w := 0.0
				if k.Weighted() {
					w = float64(rng.Intn(10))
				}
				_, err := g.AddOrReplaceEdge(from, to, k, w)
				require.NoError(t, err)
			default:
				i := rng.Intn(len(live))
				require.NoError(t, g.DeleteNode(live[i]))
				live = append(live[:i], live[i+1:]...)
			}

			for _, e := range g.Edges() {
				require.True(t, g.HasNode(e.From), "edge %s dangles at %s", e.ID, e.From)
				require.True(t, g.HasNode(e.To), "edge %s dangles at %s", e.ID, e.To)
			}
		}
	}
}

func TestParseEdgeKind(t *testing.T) {
	for _, k := range []core.EdgeKind{core.KindUndirected, core.KindDirected, core.KindWeighted} {
		got, err := core.ParseEdgeKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := core.ParseEdgeKind("curvy")
	assert.ErrorIs(t, err, core.ErrUnknownKind)
}

func TestDegreeAndTouches(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{})
	b, _ := g.AddNode(core.Point{X: 1})
	c, _ := g.AddNode(core.Point{X: 2})
	ab, _ := g.AddOrReplaceEdge(a.ID, b.ID, core.KindUndirected, 0)
	_, _ = g.AddOrReplaceEdge(c.ID, a.ID, core.KindDirected, 0)

	for id, want := range map[string]int{a.ID: 2, b.ID: 1, c.ID: 1} {
		d, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, want, d, id)
	}
	_, err := g.Degree("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.True(t, ab.Touches(a.ID))
	assert.True(t, ab.Touches(b.ID))
	assert.False(t, ab.Touches(c.ID))

	require.NoError(t, g.DeleteNode(b.ID))
	d, _ := g.Degree(a.ID)
	assert.Equal(t, 1, d)
}
