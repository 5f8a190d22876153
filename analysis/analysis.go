// SPDX-License-Identifier: MIT
// Package analysis runs the whole pipeline: sample the working graph, then
// detect communities, build the spanning forest and estimate path lengths
// concurrently over the same read-only graph.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geosocial/bfs"
	"github.com/katalvlaran/geosocial/config"
	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/ingest"
	"github.com/katalvlaran/geosocial/labelprop"
	"github.com/katalvlaran/geosocial/metrics"
	"github.com/katalvlaran/geosocial/pathsample"
	"github.com/katalvlaran/geosocial/rng"
	"github.com/katalvlaran/geosocial/sampler"
	"github.com/katalvlaran/geosocial/spanning"
)

// Stage names, in report order.
const (
	StageSample      = "sample"
	StageCommunities = "communities"
	StageForest      = "forest"
	StagePaths       = "paths"
)

// Random stream ids derived from the run seed.
const (
	streamSampler uint64 = iota + 1
	streamPropagation
	streamPaths
	streamSynthGraph
	streamSynthGeo
)

// Timing is the wall time of one stage.
type Timing struct {
	Stage    string
	Duration time.Duration
}

// GraphSummary describes the working graph.
type GraphSummary struct {
	Nodes     int
	Edges     int
	Hubs      int
	Drawn     int
	Available int
}

// Report is everything one run produced.
type Report struct {
	RunID string
	Seed  int64

	LocationStats   *ingest.Stats
	ConnectionStats *ingest.Stats

	Graph GraphSummary

	Communities    *labelprop.Result
	CommunityStats labelprop.Stats

	Forest      *spanning.Forest
	ForestStats spanning.Stats

	// Paths is nil when the graph had fewer than two nodes.
	Paths *pathsample.Estimate

	// ExamplePath is one shortest path between the first connected pair
	// sampled; empty when no trial succeeded.
	ExamplePath []core.NodeID

	Timings []Timing
}

// Run executes the pipeline over in. log and rec may be nil.
func Run(ctx context.Context, in *Input, cfg *config.Config, log *zap.Logger, rec *metrics.Recorder) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	rep := &Report{
		RunID:           uuid.NewString(),
		Seed:            cfg.Seed,
		LocationStats:   in.LocationStats,
		ConnectionStats: in.ConnectionStats,
		Timings: []Timing{
			{Stage: StageSample}, {Stage: StageCommunities}, {Stage: StageForest}, {Stage: StagePaths},
		},
	}
	log = log.With(zap.String("run_id", rep.RunID))

	g, err := rep.sample(in, cfg, log, rec)
	if err != nil {
		return nil, err
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error { return rep.communities(gctx, g, cfg, log, rec) })
	grp.Go(func() error { return rep.forest(g, in, cfg, log, rec) })
	grp.Go(func() error { return rep.paths(gctx, g, cfg, log, rec) })
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	log.Info("run finished", zap.Duration("total", rep.total()))

	return rep, nil
}

// timed runs fn and stores its duration in slot i.
func (rep *Report) timed(i int, rec *metrics.Recorder, fn func() error) error {
	start := time.Now()
	err := fn()
	rep.Timings[i].Duration = time.Since(start)
	rec.ObserveStage(rep.Timings[i].Stage, rep.Timings[i].Duration)

	return err
}

func (rep *Report) total() time.Duration {
	var d time.Duration
	for _, t := range rep.Timings {
		d += t.Duration
	}

	return d
}

func (rep *Report) sample(in *Input, cfg *config.Config, log *zap.Logger, rec *metrics.Recorder) (*core.Graph, error) {
	opts := []sampler.Option{
		sampler.WithHubFraction(cfg.Sampling.HubFraction),
		sampler.WithRand(rng.Derive(cfg.Seed, streamSampler)),
	}
	if cfg.Sampling.DropIsolated {
		opts = append(opts, sampler.WithDropIsolated())
	}

	var res *sampler.Result
	err := rep.timed(0, rec, func() error {
		var err error
		res, err = sampler.Sample(in.Connections, cfg.Sampling.TargetSize, opts...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("analysis: %s: %w", StageSample, err)
	}

	g := res.Graph
	rep.Graph = GraphSummary{
		Nodes:     g.Len(),
		Edges:     g.EdgeCount(),
		Hubs:      len(res.Hubs),
		Drawn:     len(res.Drawn),
		Available: res.Available,
	}
	rec.SetGraph(g.Len(), g.EdgeCount())
	log.Info("working graph sampled",
		zap.Int("nodes", rep.Graph.Nodes),
		zap.Int("edges", rep.Graph.Edges),
		zap.Int("hubs", rep.Graph.Hubs),
		zap.Int("available", rep.Graph.Available),
		zap.Duration("took", rep.Timings[0].Duration))

	return g, nil
}

func (rep *Report) communities(ctx context.Context, g *core.Graph, cfg *config.Config, log *zap.Logger, rec *metrics.Recorder) error {
	var res *labelprop.Result
	err := rep.timed(1, rec, func() error {
		var err error
		res, err = labelprop.Detect(g,
			labelprop.WithContext(ctx),
			labelprop.WithMaxIterations(cfg.Communities.MaxIterations),
			labelprop.WithRand(rng.Derive(cfg.Seed, streamPropagation)),
			labelprop.WithOnIteration(func(iteration, changes int) {
				log.Debug("propagation pass", zap.Int("iteration", iteration), zap.Int("changes", changes))
			}),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("analysis: %s: %w", StageCommunities, err)
	}

	rep.Communities = res
	rep.CommunityStats = labelprop.Summarize(g, res.Communities, cfg.Communities.TopN)
	rec.SetCommunities(len(res.Communities), res.Iterations)
	log.Info("communities detected",
		zap.Int("communities", len(res.Communities)),
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Float64("modularity", rep.CommunityStats.Modularity),
		zap.Duration("took", rep.Timings[1].Duration))
	if !res.Converged {
		log.Warn("label propagation hit the iteration cap", zap.Int("max_iterations", cfg.Communities.MaxIterations))
	}

	return nil
}

func (rep *Report) forest(g *core.Graph, in *Input, cfg *config.Config, log *zap.Logger, rec *metrics.Recorder) error {
	var f *spanning.Forest
	err := rep.timed(2, rec, func() error {
		var err error
		f, err = spanning.Compute(g, in.Locations, spanning.WithMethod(cfg.Forest.Method))
		return err
	})
	if err != nil {
		return fmt.Errorf("analysis: %s: %w", StageForest, err)
	}

	rep.Forest = f
	rep.ForestStats = spanning.Summarize(g, f)
	rec.SetForest(len(f.Edges), f.TotalWeight)
	log.Info("spanning forest built",
		zap.String("method", cfg.Forest.Method),
		zap.Int("edges", len(f.Edges)),
		zap.Int("candidates", f.Candidates),
		zap.Float64("total_km", f.TotalWeight),
		zap.Duration("took", rep.Timings[2].Duration))

	return nil
}

func (rep *Report) paths(ctx context.Context, g *core.Graph, cfg *config.Config, log *zap.Logger, rec *metrics.Recorder) error {
	var (
		est      *pathsample.Estimate
		src, dst core.NodeID
		havePair bool
	)
	err := rep.timed(3, rec, func() error {
		var err error
		est, err = pathsample.Run(g, cfg.Paths.SampleSize,
			pathsample.WithContext(ctx),
			pathsample.WithRand(rng.Derive(cfg.Seed, streamPaths)),
			pathsample.WithOnTrial(func(a, b core.NodeID, _ int, found bool) {
				rec.CountTrial(found)
				if found && !havePair {
					src, dst, havePair = a, b, true
				}
			}),
		)
		return err
	})
	switch {
	case errors.Is(err, core.ErrInsufficientNodes):
		log.Warn("path sampling skipped", zap.Int("nodes", g.Len()))
		return nil
	case err != nil:
		return fmt.Errorf("analysis: %s: %w", StagePaths, err)
	}

	rep.Paths = est
	rec.SetPathAverage(est.Average)
	if havePair {
		if rep.ExamplePath, err = examplePath(ctx, g, src, dst); err != nil {
			return fmt.Errorf("analysis: %s: %w", StagePaths, err)
		}
	}
	log.Info("path lengths estimated",
		zap.Float64("average", est.Average),
		zap.Int("successes", est.Successes),
		zap.Int("failures", est.Failures),
		zap.Duration("took", rep.Timings[3].Duration))

	return nil
}

// examplePath runs a full BFS from src that stops once dst is discovered.
func examplePath(ctx context.Context, g *core.Graph, src, dst core.NodeID) ([]core.NodeID, error) {
	res, err := bfs.BFS(g, src, bfs.WithContext(ctx), bfs.WithTarget(dst))
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}
