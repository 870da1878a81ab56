// SPDX-License-Identifier: MIT
package engine_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphisual/core"
	"github.com/katalvlaran/graphisual/engine"
)

// build adds n nodes and returns their IDs in insertion order.
func build(t *testing.T, g *core.Graph, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range ids {
		nd, err := g.AddNode(core.Point{X: float64(i)})
		require.NoError(t, err)
		ids[i] = nd.ID
	}

	return ids
}

func link(t *testing.T, g *core.Graph, from, to string, kind core.EdgeKind, w float64) string {
	t.Helper()
	e, err := g.AddOrReplaceEdge(from, to, kind, w)
	require.NoError(t, err)

	return e.ID
}

func steps(tr *engine.Trace) []string {
	out := make([]string, len(tr.Steps))
	for i, s := range tr.Steps {
		out[i] = s.String()
	}

	return out
}

// EngineSuite exercises Run on small hand-built graphs.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) TestValidation() {
	t := s.T()
	_, err := engine.Run(nil, engine.BFS, "n1", "")
	require.ErrorIs(t, err, engine.ErrGraphNil)

	g := core.NewGraph()
	ids := build(t, g, 2)
	_, err = engine.Run(g, engine.None, ids[0], "")
	require.ErrorIs(t, err, engine.ErrNoAlgorithm)
	_, err = engine.Run(g, engine.Algorithm(99), ids[0], "")
	require.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
	_, err = engine.Run(g, engine.BFS, "ghost", "")
	require.ErrorIs(t, err, engine.ErrAnchorNotFound)
	_, err = engine.Run(g, engine.Dijkstra, ids[0], "ghost")
	require.ErrorIs(t, err, engine.ErrAnchorNotFound)

	// traversals ignore the end anchor entirely
	tr, err := engine.Run(g, engine.DFS, ids[0], "ghost")
	require.NoError(t, err)
	require.Empty(t, tr.End)
}

func (s *EngineSuite) TestBFS_LevelOrder() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 5) // n1..n5
	eAB := link(t, g, ids[0], ids[1], core.KindUndirected, 0)
	eAC := link(t, g, ids[0], ids[2], core.KindUndirected, 0)
	eBD := link(t, g, ids[1], ids[3], core.KindUndirected, 0)
	link(t, g, ids[2], ids[3], core.KindUndirected, 0)

	tr, err := engine.Run(g, engine.BFS, ids[0], "")
	require.NoError(t, err)
	require.Equal(t, []string{
		"visit-node:n1",
		"visit-edge:" + eAB, "visit-node:n2",
		"visit-edge:" + eAC, "visit-node:n3",
		"visit-edge:" + eBD, "visit-node:n4",
		"done",
	}, steps(tr))
	require.NotContains(t, tr.Visited(), ids[4], "isolated node is unreachable")
	require.False(t, tr.Found)
}

func (s *EngineSuite) TestDFS_PreOrder() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 4)
	eAB := link(t, g, ids[0], ids[1], core.KindUndirected, 0)
	link(t, g, ids[0], ids[2], core.KindUndirected, 0)
	eBC := link(t, g, ids[1], ids[2], core.KindUndirected, 0)
	eCD := link(t, g, ids[2], ids[3], core.KindUndirected, 0)

	tr, err := engine.Run(g, engine.DFS, ids[0], "")
	require.NoError(t, err)
	require.Equal(t, []string{
		"visit-node:n1",
		"visit-edge:" + eAB, "visit-node:n2",
		"visit-edge:" + eBC, "visit-node:n3",
		"visit-edge:" + eCD, "visit-node:n4",
		"done",
	}, steps(tr))
}

func (s *EngineSuite) TestTraversal_HonorsDirection() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 3)
	link(t, g, ids[1], ids[0], core.KindDirected, 0) // n2→n1, not traversable from n1
	link(t, g, ids[0], ids[2], core.KindDirected, 0)

	for _, alg := range []engine.Algorithm{engine.BFS, engine.DFS} {
		tr, err := engine.Run(g, alg, ids[0], "")
		require.NoError(t, err)
		require.Equal(t, []string{ids[0], ids[2]}, tr.Visited(), alg.String())
	}
}

func (s *EngineSuite) TestDijkstra_Triangle() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 3) // A, B, C
	eAB := link(t, g, ids[0], ids[1], core.KindWeighted, 1)
	eBC := link(t, g, ids[1], ids[2], core.KindWeighted, 2)
	link(t, g, ids[0], ids[2], core.KindWeighted, 5)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[2])
	require.NoError(t, err)
	require.Equal(t, ids, tr.Visited())
	require.True(t, tr.Found)
	require.Equal(t, 3.0, tr.Cost)
	require.Equal(t, ids, tr.Path)
	require.Equal(t, []string{
		"visit-node:n1",
		"visit-edge:" + eAB, "visit-node:n2",
		"visit-edge:" + eBC, "visit-node:n3",
		"path-node:n1", "path-edge:" + eAB,
		"path-node:n2", "path-edge:" + eBC,
		"path-node:n3",
		"done",
	}, steps(tr))
}

func (s *EngineSuite) TestDijkstra_StopsAtTarget() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 3)
	link(t, g, ids[0], ids[1], core.KindWeighted, 1)
	link(t, g, ids[0], ids[2], core.KindWeighted, 10)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[1])
	require.NoError(t, err)
	require.Equal(t, []string{ids[0], ids[1]}, tr.Visited(), "n3 is farther than the target")
}

func (s *EngineSuite) TestDijkstra_TieBreakByInsertion() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 4)
	// n4 is added to the adjacency before n3, but n3 was inserted first.
	link(t, g, ids[0], ids[3], core.KindWeighted, 2)
	link(t, g, ids[0], ids[2], core.KindWeighted, 2)
	link(t, g, ids[0], ids[1], core.KindWeighted, 9)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[1])
	require.NoError(t, err)
	require.Equal(t, []string{ids[0], ids[2], ids[3], ids[1]}, tr.Visited())
}

func (s *EngineSuite) TestDijkstra_UnweightedEdgesCostOne() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 3)
	link(t, g, ids[0], ids[1], core.KindUndirected, 0)
	link(t, g, ids[1], ids[2], core.KindDirected, 0)
	link(t, g, ids[0], ids[2], core.KindWeighted, 3)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[2])
	require.NoError(t, err)
	require.Equal(t, 2.0, tr.Cost)
	require.Equal(t, ids, tr.Path)
}

func (s *EngineSuite) TestDijkstra_Unreachable() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 3)
	link(t, g, ids[0], ids[1], core.KindWeighted, 1)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[2])
	require.NoError(t, err, "unreachable target is not an error")
	require.False(t, tr.Found)
	require.Empty(t, tr.Path)
	for _, st := range tr.Steps {
		require.False(t, st.Kind.IsPath(), "no path steps expected, got %s", st)
	}
	require.Equal(t, engine.Done, tr.Steps[len(tr.Steps)-1].Kind)
}

func (s *EngineSuite) TestDijkstra_StartEqualsEnd() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 2)
	link(t, g, ids[0], ids[1], core.KindWeighted, 4)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[0])
	require.NoError(t, err)
	require.Equal(t, []string{"visit-node:" + ids[0], "done"}, steps(tr))
	require.True(t, tr.Found)
	require.Zero(t, tr.Cost)
}

func (s *EngineSuite) TestDijkstra_NegativeWeightRejected() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 3)
	link(t, g, ids[0], ids[1], core.KindWeighted, 1)
	link(t, g, ids[1], ids[2], core.KindWeighted, -2)

	tr, err := engine.Run(g, engine.Dijkstra, ids[0], ids[2])
	require.ErrorIs(t, err, engine.ErrNegativeWeight)
	require.Nil(t, tr, "a rejected run emits no steps")
}

func (s *EngineSuite) TestContextCancelled() {
	t := s.T()
	g := core.NewGraph()
	ids := build(t, g, 2)
	link(t, g, ids[0], ids[1], core.KindUndirected, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, alg := range engine.Algorithms() {
		_, err := engine.Run(g, alg, ids[0], ids[1], engine.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled, alg.String())
	}
}

// randomGraph builds n nodes with random edges of every kind.
func randomGraph(t *testing.T, rng *rand.Rand, n int, density float64) (*core.Graph, []string) {
	t.Helper()
	g := core.NewGraph()
	ids := build(t, g, n)
	kinds := []core.EdgeKind{core.KindUndirected, core.KindDirected, core.KindWeighted}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() > density {
				continue
			}
			k := kinds[rng.Intn(len(kinds))]
			w := 0.0
			if k.Weighted() {
				w = float64(rng.Intn(10))
			}
			link(t, g, ids[i], ids[j], k, w)
		}
	}

	return g, ids
}

// reachable computes the reachable set independently of the engine.
func reachable(t *testing.T, g *core.Graph, start string) map[string]bool {
	seen := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbs, err := g.Neighbors(cur)
		require.NoError(t, err)
		for _, nb := range nbs {
			if !seen[nb.NodeID] {
				seen[nb.NodeID] = true
				stack = append(stack, nb.NodeID)
			}
		}
	}

	return seen
}

func TestTraversal_VisitsReachableExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 100; round++ {
		g, ids := randomGraph(t, rng, 8, 0.2)
		start := ids[rng.Intn(len(ids))]
		want := reachable(t, g, start)

		for _, alg := range []engine.Algorithm{engine.BFS, engine.DFS} {
			tr, err := engine.Run(g, alg, start, "")
			require.NoError(t, err)
			visited := tr.Visited()
			counts := make(map[string]int, len(visited))
			for _, id := range visited {
				counts[id]++
			}
			require.Len(t, counts, len(want), "%s round %d", alg, round)
			for id, c := range counts {
				require.Equal(t, 1, c, "%s visited %s more than once", alg, id)
				require.True(t, want[id], "%s visited unreachable %s", alg, id)
			}
			require.Equal(t, len(visited)-1, countKind(tr, engine.VisitEdge), "one tree edge per discovered node")
		}
	}
}

func countKind(tr *engine.Trace, k engine.StepKind) int {
	n := 0
	for _, s := range tr.Steps {
		if s.Kind == k {
			n++
		}
	}

	return n
}

func TestRun_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, ids := randomGraph(t, rng, 10, 0.3)
	for _, alg := range engine.Algorithms() {
		first, err := engine.Run(g, alg, ids[0], ids[9])
		require.NoError(t, err)
		second, err := engine.Run(g, alg, ids[0], ids[9])
		require.NoError(t, err)
		assert.Equal(t, steps(first), steps(second), alg.String())
	}
}

// bruteForce returns the minimum cost over all simple paths from→to, or +Inf.
func bruteForce(t *testing.T, g *core.Graph, from, to string) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{}
	var walk func(cur string, cost float64)
	walk = func(cur string, cost float64) {
		if cur == to {
			best = math.Min(best, cost)
			return
		}
		onPath[cur] = true
		nbs, err := g.Neighbors(cur)
		require.NoError(t, err)
		for _, nb := range nbs {
			if !onPath[nb.NodeID] {
				walk(nb.NodeID, cost+nb.Weight)
			}
		}
		onPath[cur] = false
	}
	walk(from, 0)

	return best
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 200; round++ {
		g, ids := randomGraph(t, rng, 5, 0.4)
		from, to := ids[rng.Intn(5)], ids[rng.Intn(5)]
		want := bruteForce(t, g, from, to)

		tr, err := engine.Run(g, engine.Dijkstra, from, to)
		require.NoError(t, err)
		if math.IsInf(want, 1) {
			require.False(t, tr.Found, "round %d: expected no path", round)
			continue
		}
		require.True(t, tr.Found, "round %d: expected a path", round)
		require.Equal(t, want, tr.Cost, "round %d", round)

		// the emitted PathEdge steps must add up to the same cost
		var sum float64
		for _, st := range tr.Steps {
			if st.Kind == engine.PathEdge {
				e, ok := g.Edge(st.ID)
				require.True(t, ok)
				sum += e.Cost()
			}
		}
		require.Equal(t, want, sum, "round %d", round)
		require.Equal(t, from, tr.Path[0])
		require.Equal(t, to, tr.Path[len(tr.Path)-1])
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range append(engine.Algorithms(), engine.None) {
		got, err := engine.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := engine.ParseAlgorithm(" BFS ")
	require.NoError(t, err)
	assert.Equal(t, engine.BFS, got)
	_, err = engine.ParseAlgorithm("bellman-ford")
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	assert.Equal(t, 0, engine.None.Anchors())
	assert.Equal(t, 1, engine.BFS.Anchors())
	assert.Equal(t, 1, engine.DFS.Anchors())
	assert.Equal(t, 2, engine.Dijkstra.Anchors())
}
