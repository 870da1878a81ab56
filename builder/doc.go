// SPDX-License-Identifier: MIT

// Package builder generates laid-out graph presets (path, cycle, star,
// wheel, complete, grid, random sparse and the demo sample) as Blueprints
// that can be applied to a core.Graph directly or drawn through the tool
// controller one click at a time.
//
// What:
//
//   - Build(opts, cons...) resolves options once and runs every Constructor
//     in order against a single Blueprint. Each constructor appends its own
//     nodes and edges, so several presets may be composed side by side.
//   - Blueprint.Apply adds the nodes, then the edges, to a graph and returns
//     the created nodes in blueprint order.
//
// Layout:
//
//	Positions are computed on the drawing plane from WithOrigin and
//	WithSpacing. Ring shapes (cycle, wheel, complete, random) sit on a circle
//	whose circumference is roughly n·spacing, so nodes never overlap for
//	the default hit radius.
//
// Determinism:
//
//	Same options, same seed and same constructor order ⇒ identical
//	Blueprint. Randomness only comes from the *rand.Rand set by WithSeed or
//	WithRand.
//
// Errors:
//
//	ErrTooFewVertices     – size parameter below the constructor minimum.
//	ErrInvalidProbability – probability outside [0,1].
//	ErrNeedRandSource     – stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed    – nil constructor or graph rejection during Apply.
package builder
