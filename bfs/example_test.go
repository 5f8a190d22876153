// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/geosocial/bfs"
	"github.com/katalvlaran/geosocial/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid whose node
// id is 10·row + column.
func ExampleBFS_gridTraversal() {
	b := core.NewBuilder()
	for i := core.NodeID(0); i < 3; i++ {
		for j := core.NodeID(0); j < 3; j++ {
			if j+1 < 3 {
				b.AddEdge(10*i+j, 10*i+j+1)
			}
			if i+1 < 3 {
				b.AddEdge(10*i+j, 10*(i+1)+j)
			}
		}
	}

	res, err := bfs.BFS(b.Build(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 10 2 11 20 12 21 22]
}

// ExampleDistance finds the fewest-hop distance across two competing routes.
func ExampleDistance() {
	b := core.NewBuilder()
	// Route1: 1–2–3–4–9 (4 hops); Route2: 1–5–6–9 (3 hops)
	for _, e := range [][2]core.NodeID{{1, 2}, {2, 3}, {3, 4}, {4, 9}, {1, 5}, {5, 6}, {6, 9}} {
		b.AddEdge(e[0], e[1])
	}
	b.AddNode(42)
	g := b.Build()

	d, ok, _ := bfs.Distance(g, 1, 9)
	fmt.Println(d, ok)
	_, ok, _ = bfs.Distance(g, 1, 42)
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}
