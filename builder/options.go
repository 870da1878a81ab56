// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphisual/core"
)

// Layout defaults, in drawing-plane units.
const (
	DefaultSpacing    = 80.0
	DefaultEdgeWeight = 1.0
)

// BuilderOption customizes the resolved builderConfig.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to every constructor.
type builderConfig struct {
	origin   core.Point
	spacing  float64
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing:  DefaultSpacing,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin sets the top-left anchor of the layout.
func WithOrigin(p core.Point) BuilderOption {
	return func(c *builderConfig) { c.origin = p }
}

// WithSpacing sets the distance between neighbouring nodes. Panics on s ≤ 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic(fmt.Sprintf("builder: WithSpacing(%g)", s))
	}

	return func(c *builderConfig) { c.spacing = s }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value.
func ConstantWeightFn(value float64) WeightFn {
	return func(*rand.Rand) float64 { return value }
}

// IntRangeWeightFn yields whole weights uniformly in [min, max].
// Without an RNG it yields min. Panics if max < min.
func IntRangeWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("builder: IntRangeWeightFn(%d, %d)", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
