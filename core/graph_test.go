// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geosocial/core"
)

// buildTrianglePlusPair returns {1↔2, 2↔3, 3↔1} ∪ {4↔5}.
func buildTrianglePlusPair() *core.Graph {
	b := core.NewBuilder()
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 1)
	b.AddEdge(4, 5)

	return b.Build()
}

func TestEmpty(t *testing.T) {
	g := core.Empty()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.ConnectedComponents())
	assert.True(t, g.IsSymmetric())

	// Builder with nothing added yields the same shape.
	g2 := core.NewBuilder().Build()
	assert.Equal(t, 0, g2.Len())
}

func TestBuilder_SymmetrizesAndDedups(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge(1, 2)
	b.AddEdge(2, 1) // reverse orientation
	b.AddEdge(1, 2) // duplicate
	b.AddEdge(1, 3)
	g := b.Build()

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.IsSymmetric())

	n1, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3}, n1)

	n3, err := g.NeighborIDs(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1}, n3)
}

func TestBuilder_Loops(t *testing.T) {
	// Default: loops dropped but endpoint kept.
	b := core.NewBuilder()
	b.AddEdge(7, 7)
	g := b.Build()
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	d, err := g.Degree(7)
	require.NoError(t, err)
	assert.Zero(t, d)

	// WithLoops: loop kept exactly once.
	b = core.NewBuilder(core.WithLoops())
	b.AddEdge(7, 7)
	b.AddEdge(7, 7)
	b.AddEdge(7, 8)
	g = b.Build()
	assert.Equal(t, 2, g.EdgeCount())
	n7, err := g.NeighborIDs(7)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{7, 8}, n7)
	assert.True(t, g.HasEdge(7, 7))
	assert.True(t, g.IsSymmetric())
}

func TestGraph_Queries(t *testing.T) {
	g := buildTrianglePlusPair()

	assert.Equal(t, []core.NodeID{1, 2, 3, 4, 5}, g.Nodes())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasNode(4))
	assert.False(t, g.HasNode(9))
	assert.True(t, g.HasEdge(3, 1))
	assert.False(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(3, 99))

	i, ok := g.IndexOf(4)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(4), g.NodeAt(i))
	assert.Equal(t, 1, g.DegreeAt(i))

	_, err := g.NeighborIDs(99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = g.Degree(99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	adj := g.Adjacency()
	assert.Len(t, adj, 5)
	assert.Equal(t, []core.NodeID{1, 3}, adj[2])
}

func TestGraph_IsolatedNodes(t *testing.T) {
	b := core.NewBuilder()
	b.AddNode(10)
	b.AddEdge(1, 2)
	g := b.Build()

	assert.Equal(t, 3, g.Len())
	d, err := g.Degree(10)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestConnectedComponents(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge(5, 4)
	b.AddEdge(3, 1)
	b.AddEdge(2, 3)
	b.AddNode(9)
	g := b.Build()

	comps := g.ConnectedComponents()
	assert.Equal(t, [][]core.NodeID{{1, 2, 3}, {4, 5}, {9}}, comps)
}

func TestFromAdjacency_Asymmetric(t *testing.T) {
	raw := map[core.NodeID][]core.NodeID{
		1: {2, 3, 3},
		2: {},
		4: {1},
	}
	g := core.FromAdjacency(raw)

	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, g.Nodes())
	assert.True(t, g.IsSymmetric())
	assert.True(t, g.HasEdge(3, 1))
	assert.True(t, g.HasEdge(1, 4))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuilder_ReuseDoesNotAlias(t *testing.T) {
	b := core.NewBuilder(core.WithCapacity(4, 4))
	b.AddEdge(1, 2)
	g1 := b.Build()
	b.AddEdge(2, 3)
	g2 := b.Build()

	assert.Equal(t, 2, g1.Len())
	assert.Equal(t, 3, g2.Len())
	assert.Equal(t, 1, g1.EdgeCount())
}

func TestToGonum(t *testing.T) {
	b := core.NewBuilder(core.WithLoops())
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 3)
	b.AddNode(8)
	g := b.Build()

	ug := g.ToGonum()
	assert.Equal(t, 4, ug.Nodes().Len())
	assert.Equal(t, 2, ug.Edges().Len()) // loop skipped
	assert.True(t, ug.HasEdgeBetween(1, 2))
	assert.False(t, ug.HasEdgeBetween(1, 3))
}
