// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"sort"
)

// Graph is an immutable undirected graph stored as a CSR arena.
//
// ids[i] is the NodeID of index i (ascending). The neighbors of index i are
// adj[offsets[i]:offsets[i+1]], sorted ascending.
type Graph struct {
	ids     []NodeID
	index   map[NodeID]int32
	offsets []int
	adj     []int32
	loops   int // number of kept self-loops
}

// emptyOffsets backs every zero-node graph.
var emptyOffsets = []int{0}

// Empty returns a graph with no nodes and no edges.
func Empty() *Graph {
	return &Graph{index: map[NodeID]int32{}, offsets: emptyOffsets}
}

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of undirected edges. A kept self-loop counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return (len(g.adj)-g.loops)/2 + g.loops
}

// Nodes returns a copy of all node ids in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.ids))
	copy(out, g.ids)

	return out
}

// NodeAt returns the NodeID stored at index i. It panics if i is out of range,
// like slice indexing; index-space callers own their bounds.
func (g *Graph) NodeAt(i int) NodeID { return g.ids[i] }

// IndexOf returns the dense index of id and whether id belongs to the graph.
// Complexity: O(1) expected.
func (g *Graph) IndexOf(id NodeID) (int, bool) {
	i, ok := g.index[id]

	return int(i), ok
}

// HasNode reports whether id belongs to the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.index[id]

	return ok
}

// NeighborsAt returns the neighbor indices of index i. The slice aliases the
// graph's arena and must not be modified.
// Complexity: O(1).
func (g *Graph) NeighborsAt(i int) []int32 {
	return g.adj[g.offsets[i]:g.offsets[i+1]]
}

// DegreeAt returns the number of neighbors of index i.
func (g *Graph) DegreeAt(i int) int { return g.offsets[i+1] - g.offsets[i] }

// Degree returns the number of neighbors of id, or ErrUnknownNode.
func (g *Graph) Degree(id NodeID) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return g.DegreeAt(int(i)), nil
}

// NeighborIDs returns the neighbor ids of id in ascending order, or ErrUnknownNode.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	nbrs := g.NeighborsAt(int(i))
	out := make([]NodeID, len(nbrs))
	for k, j := range nbrs {
		out[k] = g.ids[j]
	}

	return out, nil
}

// HasEdge reports whether u and v are adjacent. Unknown ids yield false.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v NodeID) bool {
	iu, ok := g.index[u]
	if !ok {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	nbrs := g.NeighborsAt(int(iu))
	k := sort.Search(len(nbrs), func(k int) bool { return nbrs[k] >= iv })

	return k < len(nbrs) && nbrs[k] == iv
}

// Adjacency exports the graph as a fresh map of ascending neighbor lists.
// Intended for display layers; algorithms should use the index space.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[NodeID][]NodeID {
	out := make(map[NodeID][]NodeID, len(g.ids))
	for i, id := range g.ids {
		nbrs := g.NeighborsAt(i)
		row := make([]NodeID, len(nbrs))
		for k, j := range nbrs {
			row[k] = g.ids[j]
		}
		out[id] = row
	}

	return out
}

// IsSymmetric verifies v ∈ N(u) ⇔ u ∈ N(v) for every stored edge.
// Graphs produced by Builder always satisfy it; the check exists for tests
// and for callers that want to assert the invariant at a boundary.
// Complexity: O(E log Δ).
func (g *Graph) IsSymmetric() bool {
	for i := range g.ids {
		for _, j := range g.NeighborsAt(i) {
			back := g.NeighborsAt(int(j))
			k := sort.Search(len(back), func(k int) bool { return back[k] >= int32(i) })
			if k == len(back) || back[k] != int32(i) {
				return false
			}
		}
	}

	return true
}
