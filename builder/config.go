// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration, options and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn (constant 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // per-edge weight generator
}

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// newBuilderConfig applies options in order (last wins) over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
