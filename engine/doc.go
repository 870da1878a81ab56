// SPDX-License-Identifier: MIT

// Package engine computes visualization traces for graph algorithms over a
// core.Graph.
//
// What
//
//   - Run(g, alg, start, end) returns a Trace: the ordered, immutable list of
//     Steps an animation should replay, plus a summary (Found, Cost, Path).
//   - Steps are a tagged variant: VisitNode, VisitEdge, PathNode, PathEdge, Done.
//   - Supported algorithms: BFS and DFS (one anchor), Dijkstra (two anchors).
//
// Purity
//
//	Run never sleeps, never mutates the graph and never talks to a surface.
//	Timing belongs to package playback.
//
// Determinism
//
//	Neighbors are explored in core adjacency (insertion) order and Dijkstra
//	breaks distance ties by node insertion sequence, so the same graph and
//	anchors always yield an identical Trace.
//
// Step order
//
//	BFS/DFS:   VisitNode(start), then VisitEdge(via)+VisitNode(v) for every
//	           newly discovered v, then Done. The end anchor is ignored.
//	Dijkstra:  for each finalized node, VisitEdge(predecessor edge) (not for
//	           start) then VisitNode; once end is finalized, the path from
//	           start to end as PathNode/PathEdge/…/PathNode, then Done.
//	           Unreachable end: Done only (Found == false). start == end:
//	           [VisitNode(start), Done].
//
// Errors
//
//   - ErrGraphNil          if g is nil.
//   - ErrNoAlgorithm       if alg is None.
//   - ErrUnknownAlgorithm  if alg is outside the declared set.
//   - ErrAnchorNotFound    if a required anchor is missing from the graph.
//   - ErrNegativeWeight    if Dijkstra sees a negative edge weight; no steps are returned.
//   - context errors       if the context supplied via WithContext is done.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - BFS/DFS:  O(V + E) time, O(V) memory.
//   - Dijkstra: O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
package engine
