// SPDX-License-Identifier: MIT
package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geosocial/config"
	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
	"github.com/katalvlaran/geosocial/ingest"
	"github.com/katalvlaran/geosocial/rng"
	"github.com/katalvlaran/geosocial/synth"
)

// Input is the raw material of one run.
type Input struct {
	Locations   geo.Locations
	Connections []core.Connection

	// LocationStats and ConnectionStats are set when the input was read
	// from files.
	LocationStats   *ingest.Stats
	ConnectionStats *ingest.Stats
}

// LoadInput reads the files named in cfg.Input, or generates a synthetic
// dataset when cfg.Input.Synthetic > 0.
func LoadInput(cfg *config.Config, log *zap.Logger) (*Input, error) {
	if log == nil {
		log = zap.NewNop()
	}
	in := cfg.Input
	if in.Synthetic > 0 {
		return synthetic(cfg, log)
	}
	if in.Locations == "" || in.Connections == "" {
		return nil, fmt.Errorf("%w: analysis: both input.locations and input.connections are required", core.ErrInvalidConfiguration)
	}

	locs, lst, err := ingest.LoadLocationsFile(in.Locations, log)
	if err != nil {
		return nil, err
	}
	log.Info("locations loaded",
		zap.String("file", in.Locations),
		zap.Int("loaded", lst.Loaded),
		zap.Int("skipped", lst.Skipped))

	rows, cst, err := ingest.LoadConnectionsFile(in.Connections, log)
	if err != nil {
		return nil, err
	}
	log.Info("connections loaded",
		zap.String("file", in.Connections),
		zap.Int("users", cst.Loaded),
		zap.Int("connections", cst.Connections),
		zap.Float64("per_user", cst.AveragePerUser()),
		zap.Int("skipped", cst.Skipped))

	return &Input{Locations: locs, Connections: rows, LocationStats: &lst, ConnectionStats: &cst}, nil
}

func synthetic(cfg *config.Config, log *zap.Logger) (*Input, error) {
	in := cfg.Input
	rows, err := synth.Social(in.Synthetic, in.SyntheticDegree, synth.WithRand(rng.Derive(cfg.Seed, streamSynthGraph)))
	if err != nil {
		return nil, fmt.Errorf("analysis: synthetic connections: %w", err)
	}
	locs, err := synth.Locations(in.Synthetic, in.SyntheticCoverage, synth.WithRand(rng.Derive(cfg.Seed, streamSynthGeo)))
	if err != nil {
		return nil, fmt.Errorf("analysis: synthetic locations: %w", err)
	}
	log.Info("synthetic input generated",
		zap.Int("users", len(rows)),
		zap.Int("located", len(locs)))

	return &Input{Locations: locs, Connections: rows}, nil
}
