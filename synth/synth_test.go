// SPDX-License-Identifier: MIT
package synth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/synth"
)

func TestBuild_Topologies(t *testing.T) {
	cases := []struct {
		name  string
		con   synth.Constructor
		nodes int
		edges int
		comps int
	}{
		{"cycle", synth.Cycle(5), 5, 5, 1},
		{"path", synth.Path(4), 4, 3, 1},
		{"path-single", synth.Path(1), 1, 0, 1},
		{"star", synth.Star(6), 6, 5, 1},
		{"complete", synth.Complete(5), 5, 10, 1},
		{"isolated", synth.Isolated(3), 3, 0, 3},
		{"disjoint", synth.Disjoint(synth.Complete(3), synth.Path(2)), 5, 4, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := synth.Build(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.Len())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Len(t, g.ConnectedComponents(), tc.comps)
			assert.True(t, g.IsSymmetric())
		})
	}
}

func TestBuild_IDsAreConsecutive(t *testing.T) {
	g, err := synth.Build([]synth.Option{synth.WithBase(10)}, synth.Complete(3), synth.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{10, 11, 12, 13, 14}, g.Nodes())
	assert.True(t, g.HasEdge(13, 14))
	assert.False(t, g.HasEdge(12, 13))
}

func TestBuild_Errors(t *testing.T) {
	_, err := synth.Build(nil, synth.Cycle(2))
	assert.ErrorIs(t, err, synth.ErrTooFewVertices)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = synth.Build(nil, synth.Disjoint(synth.Path(2), synth.Star(0)))
	assert.ErrorIs(t, err, synth.ErrTooFewVertices)

	_, err = synth.Build(nil, nil)
	assert.Error(t, err)

	_, err = synth.Build([]synth.Option{synth.WithReciprocity(2)}, synth.Path(2))
	assert.True(t, errors.Is(err, synth.ErrInvalidProbability))
}

func TestSocial(t *testing.T) {
	rows, err := synth.Social(500, 6, synth.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, rows, 500)

	total, maxDeg := 0, 0
	for i, row := range rows {
		assert.Equal(t, core.NodeID(i+1), row.Node)
		for _, v := range row.Neighbors {
			assert.NotEqual(t, row.Node, v)
			assert.GreaterOrEqual(t, v, core.NodeID(1))
			assert.LessOrEqual(t, v, core.NodeID(500))
		}
		total += row.Degree()
		maxDeg = max(maxDeg, row.Degree())
	}
	assert.Greater(t, total, 500*4, "mean out-degree plus mirrored edges")
	assert.Greater(t, maxDeg, 12, "preferential attachment produces hubs")

	again, err := synth.Social(500, 6, synth.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, rows, again)

	_, err = synth.Social(1, 3)
	assert.ErrorIs(t, err, synth.ErrTooFewVertices)
	_, err = synth.Social(10, -1)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestLocations(t *testing.T) {
	locs, err := synth.Locations(2000, 0.5, synth.WithSeed(9))
	require.NoError(t, err)
	assert.InDelta(t, 1000, len(locs), 120)
	for id, l := range locs {
		assert.GreaterOrEqual(t, id, core.NodeID(1))
		assert.LessOrEqual(t, id, core.NodeID(2000))
		assert.NoError(t, l.Validate())
	}

	none, err := synth.Locations(100, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := synth.Locations(100, 1, synth.WithSpread(0))
	require.NoError(t, err)
	assert.Len(t, all, 100)

	_, err = synth.Locations(10, 1.5)
	assert.ErrorIs(t, err, synth.ErrInvalidProbability)
	_, err = synth.Locations(10, 0.5, synth.WithSpread(-1))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}
