// SPDX-License-Identifier: MIT
package spanning

import (
	"container/heap"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
)

// Prim computes a minimum spanning forest of the located subgraph of g by
// growing one tree per component with a min-heap.
//
// Steps:
//  1. Enumerate candidates exactly as Kruskal does and index them per node.
//  2. For every located node with at least one candidate, in ascending id
//     order, that is not yet in a tree: mark it and push its candidates.
//  3. Pop the lightest edge; skip it if both ends are in the tree, else add
//     the far end and push its candidates. Repeat until the heap drains.
//
// The total weight equals Kruskal's; the accepted edge set may differ only
// among equal-weight alternatives.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, locs geo.Locations, opts ...Option) (*Forest, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return prim(g, locs, o), nil
}

func prim(g *core.Graph, locs geo.Locations, o Options) *Forest {
	edges := candidates(g, locs, o.Weight)
	f := &Forest{Edges: make([]Edge, 0, min(len(edges), max(g.Len()-1, 0))), Candidates: len(edges)}
	if len(edges) == 0 {
		return f
	}

	// 1. incident[i] lists candidate positions touching node index i.
	incident := make([][]int32, g.Len())
	for k, e := range edges {
		iu, _ := g.IndexOf(e.U)
		iv, _ := g.IndexOf(e.V)
		incident[iu] = append(incident[iu], int32(k))
		incident[iv] = append(incident[iv], int32(k))
	}

	inTree := make([]bool, g.Len())
	pq := &edgePQ{edges: edges}
	grow := func(i int) {
		inTree[i] = true
		for _, k := range incident[i] {
			e := edges[k]
			iu, _ := g.IndexOf(e.U)
			iv, _ := g.IndexOf(e.V)
			if !inTree[iu] || !inTree[iv] {
				heap.Push(pq, k)
			}
		}
	}

	// 2. One restart per component of the located edge graph.
	for root := 0; root < g.Len(); root++ {
		if inTree[root] || len(incident[root]) == 0 {
			continue
		}
		grow(root)
		// 3. Expand until the component is exhausted.
		for pq.Len() > 0 {
			e := edges[heap.Pop(pq).(int32)]
			iu, _ := g.IndexOf(e.U)
			iv, _ := g.IndexOf(e.V)
			next := iv
			if inTree[iv] {
				next = iu
			}
			if inTree[next] {
				continue
			}
			f.Edges = append(f.Edges, e)
			f.TotalWeight += e.Weight
			grow(next)
		}
	}

	return f
}

// edgePQ is a min-heap of candidate positions ordered by (Weight, U, V).
type edgePQ struct {
	edges []Edge
	items []int32
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.edges[pq.items[i]], pq.edges[pq.items[j]]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(int32)) }

func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	k := old[n-1]
	pq.items = old[:n-1]

	return k
}
