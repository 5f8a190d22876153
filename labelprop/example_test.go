// SPDX-License-Identifier: MIT
package labelprop_test

import (
	"fmt"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/labelprop"
)

// ExampleDetect splits two cliques joined by nothing into two communities
// and leaves an isolated node on its own.
func ExampleDetect() {
	b := core.NewBuilder()
	for _, e := range [][2]core.NodeID{{1, 2}, {2, 3}, {3, 1}, {10, 11}, {11, 12}, {12, 10}} {
		b.AddEdge(e[0], e[1])
	}
	b.AddNode(99)

	res, err := labelprop.Detect(b.Build(), labelprop.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Communities)
	// Output:
	// [[1 2 3] [10 11 12] [99]]
}
