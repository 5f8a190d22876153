// SPDX-License-Identifier: MIT
package sampler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// DefaultHubFraction is the share of the target size filled with the
// highest-degree nodes; the rest is drawn uniformly at random.
const DefaultHubFraction = 1.0 / 3.0

// hubEpsilon absorbs float rounding so that, for example, 3 × (1/3) counts as one hub.
const hubEpsilon = 1e-9

// Option configures Sample via functional arguments. Invalid values are
// recorded and surfaced as core.ErrInvalidConfiguration when Sample runs.
type Option func(*Options)

// Options holds the sampler's tunables.
type Options struct {
	// HubFraction in [0, 1]: hubCount = ⌊targetSize·HubFraction⌋.
	HubFraction float64

	// DropIsolated removes selected nodes that end up with no induced edge.
	// The default keeps them as isolated nodes of the working graph.
	DropIsolated bool

	// Rand drives the uniform draw. nil selects rng.New(0).
	Rand *rand.Rand

	err error
}

// DefaultOptions returns HubFraction = 1/3, isolated nodes kept, default seed.
func DefaultOptions() Options {
	return Options{HubFraction: DefaultHubFraction}
}

// WithHubFraction sets the hub share. Values outside [0, 1] are a violation.
func WithHubFraction(f float64) Option {
	return func(o *Options) {
		if f < 0 || f > 1 || f != f {
			o.err = fmt.Errorf("%w: sampler: hub fraction %g not in [0, 1]", core.ErrInvalidConfiguration, f)
			return
		}
		o.HubFraction = f
	}
}

// WithDropIsolated drops selected nodes without induced edges from the result.
func WithDropIsolated() Option {
	return func(o *Options) { o.DropIsolated = true }
}

// WithRand sets an explicit random source. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh deterministic source (0 selects rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.New(seed) }
}

// hubCount returns ⌊target·fraction⌋ with rounding slack.
func hubCount(target int, fraction float64) int {
	h := int(float64(target)*fraction + hubEpsilon)
	if h > target {
		h = target
	}

	return h
}
