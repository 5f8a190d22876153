// SPDX-License-Identifier: MIT
// social.go: synthetic raw datasets shaped like a crawled social network.
//
// Model:
//   • Users are 1..n (matching the 1-based ordinal ids of the locations file).
//   • Each user u emits outDeg(u) ~ Geometric(mean) directed edges.
//   • Targets are picked by preferential attachment: with probability 1/2 an
//     endpoint of an already-emitted edge, otherwise uniformly. This yields
//     the heavy degree tail the hub sampler relies on.
//   • Each edge u→v is mirrored as v→u with probability cfg.reciprocity,
//     so the raw list is directed and asymmetric.

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
)

// centres are population centres that synthetic locations cluster around.
var centres = []geo.Location{
	{Lat: -33.45, Lon: -70.66}, // Santiago
	{Lat: 40.42, Lon: -3.70},   // Madrid
	{Lat: 35.68, Lon: 139.69},  // Tokyo
	{Lat: 40.71, Lon: -74.01},  // New York
	{Lat: -1.29, Lon: 36.82},   // Nairobi
	{Lat: 51.51, Lon: -0.13},   // London
	{Lat: -23.55, Lon: -46.63}, // São Paulo
	{Lat: 28.61, Lon: 77.21},   // Delhi
}

// Social generates n raw connection rows with the given mean out-degree.
// Rows are returned in owner order 1..n; neighbor lists may repeat ids and
// never contain the owner.
//
// Complexity: O(n · mean) expected time and memory.
func Social(n int, mean float64, opts ...Option) ([]core.Connection, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < 2 {
		return nil, fmt.Errorf("Social: n=%d < min=2: %w", n, ErrTooFewVertices)
	}
	if mean < 0 || math.IsNaN(mean) {
		return nil, fmt.Errorf("%w: synth: Social: mean degree %g is negative", core.ErrInvalidConfiguration, mean)
	}

	r := cfg.rng
	rows := make([]core.Connection, n)
	for i := range rows {
		rows[i].Node = core.NodeID(i + 1)
	}
	// endpoints holds every emitted endpoint (0-based) for preferential picks.
	endpoints := make([]int, 0, int(2*mean*float64(n))+1)
	p := 1 / (1 + mean)
	for u := 0; u < n; u++ {
		deg := 0
		for r.Float64() > p {
			deg++
		}
		for k := 0; k < deg; k++ {
			v := r.Intn(n)
			if len(endpoints) > 0 && r.Intn(2) == 0 {
				v = endpoints[r.Intn(len(endpoints))]
			}
			if v == u {
				continue
			}
			rows[u].Neighbors = append(rows[u].Neighbors, core.NodeID(v+1))
			endpoints = append(endpoints, u, v)
			if r.Float64() < cfg.reciprocity {
				rows[v].Neighbors = append(rows[v].Neighbors, core.NodeID(u+1))
			}
		}
	}

	return rows, nil
}

// Locations places roughly coverage·n of the users 1..n near a random centre.
// Users left out have no location, which every consumer must tolerate.
//
// Complexity: O(n).
func Locations(n int, coverage float64, opts ...Option) (geo.Locations, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < 0 {
		return nil, fmt.Errorf("Locations: n=%d < 0: %w", n, ErrTooFewVertices)
	}
	if coverage < 0 || coverage > 1 || math.IsNaN(coverage) {
		return nil, fmt.Errorf("Locations: coverage=%g: %w", coverage, ErrInvalidProbability)
	}

	r := cfg.rng
	locs := make(geo.Locations, int(float64(n)*coverage)+1)
	for i := 1; i <= n; i++ {
		if r.Float64() >= coverage {
			continue
		}
		c := centres[r.Intn(len(centres))]
		locs[core.NodeID(i)] = geo.Location{
			Lat: clamp(c.Lat+r.NormFloat64()*cfg.spread, -90, 90),
			Lon: wrapLon(c.Lon + r.NormFloat64()*cfg.spread),
		}
	}

	return locs, nil
}

func clamp(x, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, x)) }

// wrapLon folds a longitude back into [-180, 180].
func wrapLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}

	return lon
}
