// SPDX-License-Identifier: MIT

// Package graphisual is an interactive graph editor core with step-by-step
// algorithm playback.
//
// A user draws nodes and edges with one exclusive tool at a time, picks an
// algorithm and its anchor nodes, and watches the traversal replay onto a
// drawable surface at a chosen speed, with cancellation at any step.
//
// Layout:
//
//	core/      — Graph: nodes, undirected/directed/weighted edges, cascade
//	             delete, ordered adjacency, change events, mutation guard
//	engine/    — BFS, DFS and Dijkstra producing ordered visualization steps
//	playback/  — cancellable timed replay of steps onto a surface
//	tool/      — editor state machine: tool modes, anchors, hit-testing
//	surface/   — write-only drawing surface, graph binding, recorder, terminal
//	builder/   — laid-out graph presets (path, cycle, grid, …)
//	config/    — TOML settings
//	ctxlog/    — slog logger carried in context.Context
//	cmd/graphisual — CLI: `demo` and `algorithms`
//
// Typical wiring:
//
//	g := core.NewGraph()
//	surf := surface.NewRecorder()
//	unbind := surface.Bind(g, surf)
//	defer unbind()
//	sched := playback.New(surf)
//	ctl := tool.New(g, sched, surf)
//	_ = ctl.Click(core.Point{X: 10, Y: 10}) // draws n1 (DrawNode is the start tool)
//
// Determinism: every algorithm visits neighbours in adjacency insertion
// order and breaks Dijkstra ties by node insertion order, so the same
// editing history always yields the same step sequence.
package graphisual
