// SPDX-License-Identifier: MIT
// Package: edgegraph/builder
//
// options.go - functional options. Option constructors validate and panic
// on meaningless input; constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/edgegraph/core"
)

// BuilderOption customizes generation before any constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per Generate call.
type builderConfig struct {
	rng  *rand.Rand
	next core.NodeID // next unallocated ID
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// alloc reserves n consecutive IDs and returns the first.
func (c *builderConfig) alloc(n int) core.NodeID {
	base := c.next
	c.next += core.NodeID(n)

	return base
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithOffset starts ID allocation at base instead of 0.
func WithOffset(base core.NodeID) BuilderOption {
	return func(c *builderConfig) { c.next = base }
}
