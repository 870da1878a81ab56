// SPDX-License-Identifier: MIT

// Package tool implements the editor state machine that sits between pointer
// input and the graph: one exclusive tool mode, the edge kind used for
// drawing, the algorithm selection and the hit-testing that turns a click or
// drag into a graph mutation.
//
// Modes:
//
//	ModeIdle           – no tool; with an edge kind selected a drag from
//	                     node to node draws an edge.
//	ModeDrawNode       – click adds a node.
//	ModeMoveNode       – drag from a node moves it.
//	ModeDeleteNode     – click on a node deletes it (edges cascade).
//	ModeReset          – activating it clears the whole graph.
//	ModeEditEdge       – click near a weighted edge re-prompts its weight.
//	ModeDeleteEdge     – click near an edge deletes it.
//	ModeSelectAnchors  – entered through SelectAlgorithm only; clicks pick
//	                     the start node, then the end node if the algorithm
//	                     needs one. The last anchor launches the run.
//
// Exactly one mode is active at a time; the boolean Flags view is derived
// from it for control surfaces that want per-option toggles.
//
// Busy gate:
//
//	While the playback scheduler is running, every action returns ErrBusy
//	and changes nothing. The controller also installs the scheduler guard on
//	the graph, so direct graph mutations are refused as well.
//
// Concurrency:
//
//	Controller methods may be called from any goroutine. The controller never
//	holds its own lock while calling into the scheduler, because scheduler
//	status listeners call back into the controller.
package tool
