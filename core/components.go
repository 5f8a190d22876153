// SPDX-License-Identifier: MIT
package core

import "slices"

// ConnectedComponents partitions the graph into its connected components.
// Each component lists node ids in ascending order; components are ordered by
// their smallest member, so the result is deterministic.
//
// Time:   O(V + E).
// Memory: O(V) for the seen flags and the queue.
func (g *Graph) ConnectedComponents() [][]NodeID {
	n := g.Len()
	seen := make([]bool, n)
	queue := make([]int32, 0, 64)
	var comps [][]NodeID

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue = append(queue[:0], int32(start))
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, j := range g.NeighborsAt(int(queue[qi])) {
				if !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		comp := make([]NodeID, len(queue))
		for k, i := range queue {
			comp[k] = g.ids[i]
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}
