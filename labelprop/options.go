// SPDX-License-Identifier: MIT
package labelprop

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// DefaultMaxIterations bounds the number of propagation passes.
const DefaultMaxIterations = 50

// Option configures Detect via functional arguments.
// Invalid values are recorded and surfaced when Detect is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one detection run.
type Options struct {
	// Ctx is checked before every pass.
	Ctx context.Context

	// MaxIterations caps the number of passes; must be > 0.
	MaxIterations int

	// Rand drives the visit order and tie-breaks. nil selects rng.New(0).
	Rand *rand.Rand

	// OnIteration runs after each pass with the 1-based pass number and the
	// number of labels changed during it.
	OnIteration func(iteration, changes int)

	err error
}

// DefaultOptions returns MaxIterations = 50, background context, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		OnIteration:   func(int, int) {},
	}
}

// WithMaxIterations sets the pass cap. n ≤ 0 is a configuration violation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: labelprop: max iterations must be positive (%d)", core.ErrInvalidConfiguration, n)
			return
		}
		o.MaxIterations = n
	}
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

// WithOnIteration registers a per-pass progress callback.
func WithOnIteration(fn func(iteration, changes int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithContext sets a context for cancellation between passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
