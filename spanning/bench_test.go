// SPDX-License-Identifier: MIT
package spanning_test

import (
	"testing"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
	"github.com/katalvlaran/geosocial/rng"
	"github.com/katalvlaran/geosocial/spanning"
)

func benchInstance(n, deg int) (*core.Graph, geo.Locations) {
	r := rng.New(7)
	b := core.NewBuilder(core.WithCapacity(n, n*deg))
	locs := make(geo.Locations, n)
	for i := 0; i < n; i++ {
		locs[core.NodeID(i)] = geo.Location{Lat: r.Float64()*120 - 60, Lon: r.Float64()*360 - 180}
		for d := 0; d < deg; d++ {
			b.AddEdge(core.NodeID(i), core.NodeID(r.Intn(n)))
		}
	}

	return b.Build(), locs
}

// BenchmarkKruskal measures a 20k-node random graph with all nodes located.
func BenchmarkKruskal(b *testing.B) {
	g, locs := benchInstance(20_000, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Kruskal(g, locs)
	}
}

// BenchmarkPrim runs the same instance through the heap-based variant.
func BenchmarkPrim(b *testing.B) {
	g, locs := benchInstance(20_000, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Prim(g, locs)
	}
}
