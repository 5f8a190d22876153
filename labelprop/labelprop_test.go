// SPDX-License-Identifier: MIT
package labelprop_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/labelprop"
)

// trianglePlusPair is {1↔2, 2↔3, 3↔1} ∪ {4↔5}.
func trianglePlusPair() *core.Graph {
	b := core.NewBuilder()
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 1)
	b.AddEdge(4, 5)

	return b.Build()
}

func TestDetect_TrianglePlusPair(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		res, err := labelprop.Detect(trianglePlusPair(), labelprop.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, res.Converged, "seed %d", seed)
		assert.Equal(t, []labelprop.Community{{1, 2, 3}, {4, 5}}, res.Communities, "seed %d", seed)
	}
}

func TestDetect_Empty(t *testing.T) {
	res, err := labelprop.Detect(core.Empty())
	require.NoError(t, err)
	assert.Empty(t, res.Communities)
	assert.NotNil(t, res.Communities)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
}

func TestDetect_SingleIsolatedNode(t *testing.T) {
	b := core.NewBuilder()
	b.AddNode(7)
	res, err := labelprop.Detect(b.Build())
	require.NoError(t, err)
	assert.Equal(t, []labelprop.Community{{7}}, res.Communities)

	l, err := res.Label(7)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(7), l)

	_, err = res.Label(8)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestDetect_SelfLoopDoesNotCrash(t *testing.T) {
	b := core.NewBuilder(core.WithLoops())
	b.AddEdge(1, 1)
	b.AddEdge(1, 2)
	res, err := labelprop.Detect(b.Build(), labelprop.WithSeed(3))
	require.NoError(t, err)
	total := 0
	for _, c := range res.Communities {
		total += len(c)
	}
	assert.Equal(t, 2, total)
}

func TestDetect_InvalidMaxIterations(t *testing.T) {
	_, err := labelprop.Detect(trianglePlusPair(), labelprop.WithMaxIterations(0))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = labelprop.Detect(trianglePlusPair(), labelprop.WithMaxIterations(-4))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestDetect_IterationCapAndHook(t *testing.T) {
	var calls []int
	res, err := labelprop.Detect(trianglePlusPair(),
		labelprop.WithMaxIterations(1),
		labelprop.WithOnIteration(func(iter, changes int) {
			calls = append(calls, iter)
			assert.Positive(t, changes, "the first pass always relabels the pair")
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
	assert.Equal(t, []int{1}, calls)
}

func TestDetect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := labelprop.Detect(trianglePlusPair(), labelprop.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetect_Deterministic(t *testing.T) {
	g := ring(60, 3)
	a, err := labelprop.Detect(g, labelprop.WithSeed(17))
	require.NoError(t, err)
	b, err := labelprop.Detect(g, labelprop.WithSeed(17))
	require.NoError(t, err)
	assert.Equal(t, a.Communities, b.Communities)
	assert.Equal(t, a.Iterations, b.Iterations)
}

// ring links every node to the next k nodes around a cycle of n nodes.
func ring(n, k int) *core.Graph {
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		for d := 1; d <= k; d++ {
			b.AddEdge(core.NodeID(i), core.NodeID((i+d)%n))
		}
	}

	return b.Build()
}

func TestDetect_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	endpoints := gen.SliceOf(gen.UInt8Range(0, 30))

	build := func(xs []uint8) *core.Graph {
		b := core.NewBuilder()
		for i := 0; i+1 < len(xs); i += 2 {
			b.AddEdge(core.NodeID(xs[i]), core.NodeID(xs[i+1]))
		}
		// A fixed band of isolated nodes.
		for id := core.NodeID(100); id < 104; id++ {
			b.AddNode(id)
		}
		return b.Build()
	}

	properties.Property("communities partition the node set", prop.ForAll(
		func(xs []uint8, seed int64) bool {
			g := build(xs)
			res, err := labelprop.Detect(g, labelprop.WithSeed(seed))
			if err != nil {
				return false
			}
			seen := map[core.NodeID]bool{}
			for _, c := range res.Communities {
				for _, id := range c {
					if seen[id] || !g.HasNode(id) {
						return false
					}
					seen[id] = true
				}
			}
			return len(seen) == g.Len()
		},
		endpoints, gen.Int64(),
	))

	properties.Property("isolated nodes are singletons", prop.ForAll(
		func(xs []uint8, seed int64) bool {
			g := build(xs)
			res, err := labelprop.Detect(g, labelprop.WithSeed(seed))
			if err != nil {
				return false
			}
			for _, c := range res.Communities {
				for _, id := range c {
					if d, _ := g.Degree(id); d == 0 && len(c) != 1 {
						return false
					}
				}
			}
			return true
		},
		endpoints, gen.Int64(),
	))

	properties.Property("members of a community share a label", prop.ForAll(
		func(xs []uint8, seed int64) bool {
			res, err := labelprop.Detect(build(xs), labelprop.WithSeed(seed))
			if err != nil {
				return false
			}
			for _, c := range res.Communities {
				first, _ := res.Label(c[0])
				for _, id := range c[1:] {
					if l, _ := res.Label(id); l != first {
						return false
					}
				}
			}
			return true
		},
		endpoints, gen.Int64(),
	))

	properties.TestingRun(t)
}
