// SPDX-License-Identifier: MIT
package labelprop_test

import (
	"testing"

	"github.com/katalvlaran/geosocial/labelprop"
)

// BenchmarkDetect_Ring measures propagation on a 10k-node ring lattice.
func BenchmarkDetect_Ring(b *testing.B) {
	g := ring(10_000, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = labelprop.Detect(g, labelprop.WithSeed(int64(i+1)))
	}
}
