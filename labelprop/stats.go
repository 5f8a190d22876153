// SPDX-License-Identifier: MIT
package labelprop

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/geosocial/core"
)

// SizeBucket counts communities whose size falls in [Min, Max]. Max == 0
// means unbounded.
type SizeBucket struct {
	Min, Max int
	Count    int
}

// sizeBounds are the lower bounds of the reported size buckets.
var sizeBounds = []int{1, 6, 21, 101, 501}

// Stats summarizes a community partition of a graph.
type Stats struct {
	Communities int
	Nodes       int

	Largest  int
	Smallest int
	Mean     float64
	// Median is the element at len/2 of the ascending sizes.
	Median int

	// InternalEdges and ExternalEdges count every undirected edge once.
	InternalEdges int
	ExternalEdges int
	// Cohesion is InternalEdges / (InternalEdges + ExternalEdges), or 0.
	Cohesion float64

	// Modularity is Newman's Q at resolution 1, or 0 for an edgeless graph.
	Modularity float64

	Buckets []SizeBucket

	// Top lists the sizes of the largest communities, largest first.
	Top []int
}

// Summarize computes partition statistics of comms over g, reporting at most
// topN sizes in Stats.Top. Members of comms that are not in g are ignored
// for edge classification.
//
// Complexity: O(V + E + C log C) plus gonum's modularity pass.
func Summarize(g *core.Graph, comms []Community, topN int) Stats {
	st := Stats{Communities: len(comms), Buckets: make([]SizeBucket, len(sizeBounds))}
	for k, lo := range sizeBounds {
		st.Buckets[k].Min = lo
		if k+1 < len(sizeBounds) {
			st.Buckets[k].Max = sizeBounds[k+1] - 1
		}
	}
	if len(comms) == 0 {
		st.Top = []int{}
		return st
	}

	sizes := make([]int, len(comms))
	fsizes := make([]float64, len(comms))
	member := make([]int, g.Len())
	for i := range member {
		member[i] = -1
	}
	for c, comm := range comms {
		sizes[c] = len(comm)
		fsizes[c] = float64(len(comm))
		st.Nodes += len(comm)
		for _, id := range comm {
			if i, ok := g.IndexOf(id); ok {
				member[i] = c
			}
		}
		for k := len(sizeBounds) - 1; k >= 0; k-- {
			if len(comm) >= sizeBounds[k] {
				st.Buckets[k].Count++
				break
			}
		}
	}

	asc := slices.Clone(sizes)
	slices.Sort(asc)
	st.Smallest = asc[0]
	st.Largest = asc[len(asc)-1]
	st.Median = asc[len(asc)/2]
	st.Mean = stat.Mean(fsizes, nil)

	for i := 0; i < g.Len(); i++ {
		for _, j := range g.NeighborsAt(i) {
			if int(j) < i {
				continue
			}
			if member[i] >= 0 && member[i] == member[j] {
				st.InternalEdges++
			} else {
				st.ExternalEdges++
			}
		}
	}
	if total := st.InternalEdges + st.ExternalEdges; total > 0 {
		st.Cohesion = float64(st.InternalEdges) / float64(total)
		st.Modularity = modularity(g, comms)
	}

	slices.Reverse(asc)
	st.Top = asc[:min(max(topN, 0), len(asc))]

	return st
}

// modularity evaluates gonum's community.Q over the same topology.
func modularity(g *core.Graph, comms []Community) float64 {
	gg := g.ToGonum()
	if gg.Edges().Len() == 0 {
		return 0
	}
	parts := make([][]graph.Node, 0, len(comms))
	for _, comm := range comms {
		part := make([]graph.Node, 0, len(comm))
		for _, id := range comm {
			if g.HasNode(id) {
				part = append(part, simple.Node(int64(id)))
			}
		}
		if len(part) > 0 {
			parts = append(parts, part)
		}
	}

	return community.Q(gg, parts, 1)
}
