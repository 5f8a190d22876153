// SPDX-License-Identifier: MIT
package core

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum copies the graph into a gonum simple.UndirectedGraph so that gonum's
// graph algorithms (modularity, centrality, ...) can run on the same topology.
// Node ids map one-to-one to gonum int64 ids. Self-loops are skipped because
// simple graphs cannot hold them.
//
// Complexity: O(V + E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, id := range g.ids {
		out.AddNode(simple.Node(int64(id)))
	}
	for i, u := range g.ids {
		for _, j := range g.NeighborsAt(i) {
			// Each undirected edge is stored twice; keep the forward half.
			if int(j) <= i {
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(g.ids[j]))})
		}
	}

	return out
}
