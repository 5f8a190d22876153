// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/geosocial/core"
)

// ExampleBuilder shows that directed, duplicated input collapses into a
// symmetric graph.
func ExampleBuilder() {
	b := core.NewBuilder()
	b.AddEdge(1, 2)
	b.AddEdge(2, 1)
	b.AddEdge(2, 3)

	g := b.Build()
	n2, _ := g.NeighborIDs(2)
	fmt.Println("nodes:", g.Nodes())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("N(2):", n2)
	// Output:
	// nodes: [1 2 3]
	// edges: 2
	// N(2): [1 3]
}

// ExampleGraph_ConnectedComponents lists the triangle and the pair as two components.
func ExampleGraph_ConnectedComponents() {
	g := core.FromAdjacency(map[core.NodeID][]core.NodeID{
		1: {2, 3},
		2: {3},
		4: {5},
	})
	fmt.Println(g.ConnectedComponents())
	// Output: [[1 2 3] [4 5]]
}
