// SPDX-License-Identifier: MIT
package spanning

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
	"github.com/katalvlaran/geosocial/unionfind"
)

// Kruskal computes a minimum spanning forest of the located subgraph of g.
//
// Steps:
//  1. One singleton set per node of g.
//  2. Enumerate candidates (u < v, both located) weighted by opts' WeightFunc.
//  3. Sort ascending by weight; ties by (U, V) so runs are reproducible.
//  4. Accept an edge iff its endpoints lie in different sets; union them.
//
// Zero candidates yield an empty forest with zero weight and no error.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph, locs geo.Locations, opts ...Option) (*Forest, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return kruskal(g, locs, o)
}

func kruskal(g *core.Graph, locs geo.Locations, o Options) (*Forest, error) {
	// 1. Fresh disjoint sets for this run.
	uf := unionfind.New(g.Len())
	for i := 0; i < g.Len(); i++ {
		uf.MakeSet(g.NodeAt(i))
	}

	// 2-3. Candidates in deterministic ascending order.
	edges := candidates(g, locs, o.Weight)
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})

	// 4. Greedy acceptance.
	f := &Forest{Edges: make([]Edge, 0, min(len(edges), max(g.Len()-1, 0))), Candidates: len(edges)}
	for _, e := range edges {
		merged, err := uf.Union(e.U, e.V)
		if err != nil {
			return nil, err
		}
		if !merged {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.TotalWeight += e.Weight
		if uf.Sets() == 1 {
			break
		}
	}

	return f, nil
}
