// SPDX-License-Identifier: MIT
package labelprop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/labelprop"
)

func TestSummarize(t *testing.T) {
	g := trianglePlusPair()
	comms := []labelprop.Community{{1, 2, 3}, {4, 5}}
	st := labelprop.Summarize(g, comms, 1)

	assert.Equal(t, 2, st.Communities)
	assert.Equal(t, 5, st.Nodes)
	assert.Equal(t, 3, st.Largest)
	assert.Equal(t, 2, st.Smallest)
	assert.InDelta(t, 2.5, st.Mean, 1e-12)
	assert.Equal(t, 3, st.Median, "element at len/2 of [2 3]")
	assert.Equal(t, 4, st.InternalEdges)
	assert.Equal(t, 0, st.ExternalEdges)
	assert.InDelta(t, 1.0, st.Cohesion, 1e-12)
	assert.Equal(t, []int{3}, st.Top)
	assert.Equal(t, 2, st.Buckets[0].Count)
	assert.Equal(t, 1, st.Buckets[0].Min)
	assert.Equal(t, 5, st.Buckets[0].Max)
	assert.Equal(t, 0, st.Buckets[len(st.Buckets)-1].Max, "last bucket is unbounded")

	// Q = Σ_c [L_c/m − (d_c/2m)²] with m = 4: (3/4 − (6/8)²) + (1/4 − (2/8)²).
	assert.InDelta(t, 0.375, st.Modularity, 1e-9)
}

func TestSummarize_Splits(t *testing.T) {
	g := trianglePlusPair()
	st := labelprop.Summarize(g, []labelprop.Community{{1, 2}, {3}, {4, 5}}, 10)
	assert.Equal(t, 2, st.InternalEdges)
	assert.Equal(t, 2, st.ExternalEdges)
	assert.InDelta(t, 0.5, st.Cohesion, 1e-12)
	assert.Equal(t, []int{2, 2, 1}, st.Top)
}

func TestSummarize_Degenerate(t *testing.T) {
	st := labelprop.Summarize(core.Empty(), nil, 5)
	assert.Equal(t, 0, st.Communities)
	assert.Empty(t, st.Top)

	b := core.NewBuilder()
	b.AddNode(1)
	b.AddNode(2)
	st = labelprop.Summarize(b.Build(), []labelprop.Community{{1}, {2}}, 5)
	assert.Equal(t, 0.0, st.Cohesion)
	assert.Equal(t, 0.0, st.Modularity)
	assert.Equal(t, 1, st.Median)
}
