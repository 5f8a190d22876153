// SPDX-License-Identifier: MIT
package bfs_test

import (
	"testing"

	"github.com/katalvlaran/geosocial/bfs"
	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	bld := core.NewBuilder(core.WithCapacity(N+1, N))
	for i := core.NodeID(0); i < N; i++ {
		bld.AddEdge(i, i+1)
	}
	g := bld.Build()

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkSearcher_Random measures reused point-to-point queries on a
// sparse random graph.
func BenchmarkSearcher_Random(b *testing.B) {
	const N = 50_000
	r := rng.New(3)
	bld := core.NewBuilder(core.WithCapacity(N, 3*N))
	for i := 0; i < 3*N; i++ {
		bld.AddEdge(core.NodeID(r.Intn(N)), core.NodeID(r.Intn(N)))
	}
	g := bld.Build()
	s := bfs.NewSearcher(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src, dst := rng.DistinctPair(g.Len(), r)
		_, _ = s.Distance(src, dst)
	}
}
