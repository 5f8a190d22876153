// SPDX-License-Identifier: MIT
package bfs

import "github.com/katalvlaran/geosocial/core"

// Searcher answers repeated point-to-point distance queries on one graph
// without reallocating per query. Visited marks are epoch-stamped, so a query
// only touches the nodes it actually reaches.
//
// A Searcher is not safe for concurrent use; give each goroutine its own.
type Searcher struct {
	graph *core.Graph
	stamp []uint32
	depth []int32
	queue []int32
	epoch uint32
}

// NewSearcher allocates O(V) scratch space for g.
func NewSearcher(g *core.Graph) *Searcher {
	return &Searcher{
		graph: g,
		stamp: make([]uint32, g.Len()),
		depth: make([]int32, g.Len()),
		queue: make([]int32, 0, 64),
	}
}

// Distance runs a level-order search from index src and returns the depth at
// which index dst is discovered, or false once the component is exhausted.
// Indices must be in [0, g.Len()).
//
// Complexity: O(V + E) worst case, O(1) amortized setup.
func (s *Searcher) Distance(src, dst int) (int, bool) {
	if src == dst {
		return 0, true
	}
	s.next()
	s.stamp[src] = s.epoch
	s.depth[src] = 0
	s.queue = append(s.queue[:0], int32(src))
	for head := 0; head < len(s.queue); head++ {
		u := s.queue[head]
		d := s.depth[u] + 1
		for _, v := range s.graph.NeighborsAt(int(u)) {
			if s.stamp[v] == s.epoch {
				continue
			}
			if int(v) == dst {
				return int(d), true
			}
			s.stamp[v] = s.epoch
			s.depth[v] = d
			s.queue = append(s.queue, v)
		}
	}

	return 0, false
}

// next advances the epoch, clearing stamps on wrap-around.
func (s *Searcher) next() {
	s.epoch++
	if s.epoch == 0 {
		clear(s.stamp)
		s.epoch = 1
	}
}
