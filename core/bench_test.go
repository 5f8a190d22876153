// SPDX-License-Identifier: MIT
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/geosocial/core"
)

// BenchmarkBuild measures freezing 200k random half-edges over 50k nodes.
func BenchmarkBuild(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	const n, m = 50_000, 200_000
	us := make([]core.NodeID, m)
	vs := make([]core.NodeID, m)
	for i := range us {
		us[i] = core.NodeID(r.Intn(n))
		vs[i] = core.NodeID(r.Intn(n))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bld := core.NewBuilder(core.WithCapacity(n, m))
		for k := range us {
			bld.AddEdge(us[k], vs[k])
		}
		_ = bld.Build()
	}
}
