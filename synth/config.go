// SPDX-License-Identifier: MIT
// config.go: sentinel errors, internal configuration and functional options.
//
// Deterministic defaults:
//   • base       = 1       (first allocated node id)
//   • rng        = rng.New(0)
//   • reciprocity = 0.3    (Social: share of edges mirrored back)
//   • spread     = 1.5°    (Locations: jitter around a centre)

package synth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = fmt.Errorf("%w: synth: parameter too small", core.ErrInvalidConfiguration)

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = fmt.Errorf("%w: synth: probability out of range", core.ErrInvalidConfiguration)

// errNilConstructor is returned by Build for a nil entry.
var errNilConstructor = errors.New("synth: nil constructor")

const (
	defaultBase        = core.NodeID(1)
	defaultReciprocity = 0.3
	defaultSpreadDeg   = 1.5
)

// config aggregates every knob; constructors read it and advance next.
type config struct {
	next        core.NodeID
	rng         *rand.Rand
	reciprocity float64
	spread      float64
	err         error
}

// Option customizes generation.
type Option func(*config)

func newConfig(opts ...Option) *config {
	cfg := &config{
		next:        defaultBase,
		reciprocity: defaultReciprocity,
		spread:      defaultSpreadDeg,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.rng = rng.Or(cfg.rng)

	return cfg
}

// alloc reserves n consecutive ids and returns the first one.
func (c *config) alloc(n int) core.NodeID {
	first := c.next
	c.next += core.NodeID(n)

	return first
}

// WithBase sets the first node id handed out.
func WithBase(id core.NodeID) Option {
	return func(c *config) { c.next = id }
}

// WithSeed creates a deterministic source (0 selects rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rng.New(seed) }
}

// WithRand sets an explicit source. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithReciprocity sets the probability that a Social edge u→v is mirrored by v→u.
func WithReciprocity(p float64) Option {
	return func(c *config) {
		if p < 0 || p > 1 {
			c.err = fmt.Errorf("reciprocity=%g: %w", p, ErrInvalidProbability)
			return
		}
		c.reciprocity = p
	}
}

// WithSpread sets the Locations jitter around a centre, in degrees (≥ 0).
func WithSpread(deg float64) Option {
	return func(c *config) {
		if deg < 0 {
			c.err = fmt.Errorf("%w: synth: spread %g is negative", core.ErrInvalidConfiguration, deg)
			return
		}
		c.spread = deg
	}
}
