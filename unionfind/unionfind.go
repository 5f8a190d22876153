// SPDX-License-Identifier: MIT
// Package unionfind implements a disjoint-set forest over core.NodeID values
// with iterative path compression and union by rank.
//
// Contract:
//   - MakeSet adds an element as its own singleton set; re-adding is a no-op.
//   - Find and Union on an element that was never added return
//     core.ErrUnknownNode. Elements are never created implicitly.
//   - Find rewires every node on the walked path directly to the root
//     (two passes), so deep chains never recurse.
//
// Complexity: MakeSet O(1); Find and Union O(α(n)) amortized.
package unionfind

import (
	"fmt"

	"github.com/katalvlaran/geosocial/core"
)

// UnionFind is a disjoint-set structure. It is not safe for concurrent use;
// each spanning-forest run owns a fresh instance.
type UnionFind struct {
	index  map[core.NodeID]int32
	ids    []core.NodeID
	parent []int32
	rank   []uint8
	sets   int
}

// New returns an empty UnionFind pre-sized for capacity elements.
func New(capacity int) *UnionFind {
	if capacity < 0 {
		capacity = 0
	}

	return &UnionFind{
		index:  make(map[core.NodeID]int32, capacity),
		ids:    make([]core.NodeID, 0, capacity),
		parent: make([]int32, 0, capacity),
		rank:   make([]uint8, 0, capacity),
	}
}

// MakeSet adds n as a singleton set. Adding an existing element is a no-op.
func (uf *UnionFind) MakeSet(n core.NodeID) {
	if _, ok := uf.index[n]; ok {
		return
	}
	i := int32(len(uf.parent))
	uf.index[n] = i
	uf.ids = append(uf.ids, n)
	uf.parent = append(uf.parent, i)
	uf.rank = append(uf.rank, 0)
	uf.sets++
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the representative of the set containing n.
func (uf *UnionFind) Find(n core.NodeID) (core.NodeID, error) {
	i, ok := uf.index[n]
	if !ok {
		return 0, fmt.Errorf("unionfind: find %d: %w", n, core.ErrUnknownNode)
	}

	return uf.ids[uf.root(i)], nil
}

// Union merges the sets containing a and b. It reports whether a merge
// happened (false when a and b were already in the same set).
func (uf *UnionFind) Union(a, b core.NodeID) (bool, error) {
	ia, ok := uf.index[a]
	if !ok {
		return false, fmt.Errorf("unionfind: union %d: %w", a, core.ErrUnknownNode)
	}
	ib, ok := uf.index[b]
	if !ok {
		return false, fmt.Errorf("unionfind: union %d: %w", b, core.ErrUnknownNode)
	}

	return uf.link(uf.root(ia), uf.root(ib)), nil
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b core.NodeID) (bool, error) {
	ra, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// root walks to the root of i, then rewrites every visited parent to it.
func (uf *UnionFind) root(i int32) int32 {
	r := i
	for uf.parent[r] != r {
		r = uf.parent[r]
	}
	for uf.parent[i] != r {
		next := uf.parent[i]
		uf.parent[i] = r
		i = next
	}

	return r
}

// link attaches the lower-rank root under the higher-rank one; on a tie the
// survivor's rank grows by one.
func (uf *UnionFind) link(ra, rb int32) bool {
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	uf.sets--

	return true
}
