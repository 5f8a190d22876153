// SPDX-License-Identifier: MIT
// Package pathsample estimates the typical shortest-path length of a
// core.Graph by running early-exit BFS between random node pairs.
//
// Each trial draws two distinct nodes uniformly, then searches from the first
// until the second is discovered (success, with its hop count) or the first
// node's component is exhausted (failure). The average is taken over
// successes only; with zero successes it is 0.
//
// Complexity: O(sampleSize · (V + E)) worst case; O(V) memory reused across trials.
package pathsample

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/geosocial/bfs"
	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// DefaultSampleSize is the number of trials used by the orchestrator.
const DefaultSampleSize = 1000

// Estimate is the outcome of one sampling run.
type Estimate struct {
	// Average is the mean hop count over successful trials, or 0.
	Average float64

	// StdDev is the sample standard deviation over successes (0 below two).
	StdDev float64

	Successes int
	Failures  int

	// Histogram maps hop count to the number of successful trials.
	Histogram map[int]int

	// MaxDepth is the largest successful hop count.
	MaxDepth int
}

// Option configures Run.
type Option func(*Options)

// Options holds the sampler's source of randomness and hooks.
type Options struct {
	Ctx  context.Context
	Rand *rand.Rand

	// OnTrial runs after every trial with the pair, the hop count and
	// whether a path exists.
	OnTrial func(a, b core.NodeID, depth int, found bool)
}

// DefaultOptions returns a background context and the default seed.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), OnTrial: func(core.NodeID, core.NodeID, int, bool) {}}
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

// WithContext sets a context checked between trials.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnTrial registers a per-trial callback.
func WithOnTrial(fn func(a, b core.NodeID, depth int, found bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}

// Run performs sampleSize trials on g.
//
// Errors:
//   - core.ErrInvalidConfiguration for a negative sampleSize.
//   - core.ErrInsufficientNodes when sampleSize > 0 and g has fewer than two nodes.
//   - a context error if cancelled between trials.
//
// sampleSize == 0 returns a zero Estimate without inspecting g.
func Run(g *core.Graph, sampleSize int, opts ...Option) (*Estimate, error) {
	if sampleSize < 0 {
		return nil, fmt.Errorf("%w: pathsample: sample size %d is negative", core.ErrInvalidConfiguration, sampleSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	est := &Estimate{Histogram: map[int]int{}}
	if sampleSize == 0 {
		return est, nil
	}
	if g.Len() < 2 {
		return nil, fmt.Errorf("%w: pathsample: need 2 nodes, graph has %d", core.ErrInsufficientNodes, g.Len())
	}

	r := rng.Or(o.Rand)
	s := bfs.NewSearcher(g)
	depths := make([]float64, 0, sampleSize)
	for trial := 0; trial < sampleSize; trial++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		a, b := rng.DistinctPair(g.Len(), r)
		d, found := s.Distance(a, b)
		o.OnTrial(g.NodeAt(a), g.NodeAt(b), d, found)
		if !found {
			est.Failures++
			continue
		}
		est.Successes++
		est.Histogram[d]++
		est.MaxDepth = max(est.MaxDepth, d)
		depths = append(depths, float64(d))
	}

	if len(depths) > 0 {
		est.Average = stat.Mean(depths, nil)
	}
	if len(depths) > 1 {
		est.StdDev = stat.StdDev(depths, nil)
	}

	return est, nil
}
