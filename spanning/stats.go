// SPDX-License-Identifier: MIT
package spanning

import (
	"slices"

	"github.com/katalvlaran/geosocial/core"
)

// HubDegree is the forest degree from which a node counts as a hub.
const HubDegree = 5

// maxHubExamples caps Stats.HubExamples.
const maxHubExamples = 5

// Stats describes the shape of a forest relative to its source graph.
type Stats struct {
	Edges       int
	TotalWeight float64

	// Nodes is the number of distinct nodes touched by the forest.
	Nodes int

	MaxDegree  int
	MinDegree  int
	MeanDegree float64

	// Leaves counts forest nodes of degree 1.
	Leaves int

	// Hubs counts forest nodes of degree >= HubDegree; HubExamples lists up
	// to five of them in ascending id order.
	Hubs        int
	HubExamples []core.NodeID

	// OriginalEdges is the undirected edge count of the source graph.
	OriginalEdges int

	// Reduction is 100·(1 − Edges/OriginalEdges), or 0 without original edges.
	Reduction float64
}

// Summarize computes degree statistics of f over the nodes it touches.
//
// Complexity: O(F log F) for F forest edges.
func Summarize(g *core.Graph, f *Forest) Stats {
	st := Stats{Edges: len(f.Edges), TotalWeight: f.TotalWeight, OriginalEdges: g.EdgeCount(), HubExamples: []core.NodeID{}}
	if st.OriginalEdges > 0 {
		st.Reduction = 100 * (1 - float64(st.Edges)/float64(st.OriginalEdges))
	}
	if len(f.Edges) == 0 {
		return st
	}

	degree := make(map[core.NodeID]int, 2*len(f.Edges))
	for _, e := range f.Edges {
		degree[e.U]++
		degree[e.V]++
	}
	ids := make([]core.NodeID, 0, len(degree))
	for id := range degree {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	st.Nodes = len(ids)
	st.MinDegree = degree[ids[0]]
	sum := 0
	for _, id := range ids {
		d := degree[id]
		sum += d
		st.MaxDegree = max(st.MaxDegree, d)
		st.MinDegree = min(st.MinDegree, d)
		if d == 1 {
			st.Leaves++
		}
		if d >= HubDegree {
			st.Hubs++
			if len(st.HubExamples) < maxHubExamples {
				st.HubExamples = append(st.HubExamples, id)
			}
		}
	}
	st.MeanDegree = float64(sum) / float64(len(ids))

	return st
}
