// SPDX-License-Identifier: MIT
package core

import (
	"slices"
)

// pair is one directed half of an undirected edge, recorded during building.
type pair struct {
	u, v NodeID
}

// Builder accumulates nodes and undirected edges and freezes them into a Graph.
// A Builder is not safe for concurrent use; the Graph it builds is.
type Builder struct {
	allowLoops bool
	nodes      map[NodeID]struct{}
	pairs      []pair
}

// NewBuilder returns an empty Builder configured by opts.
// Complexity: O(1).
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.nodes == nil {
		b.nodes = make(map[NodeID]struct{})
	}

	return b
}

// AddNode adds id to the node set. Adding an existing node is a no-op.
func (b *Builder) AddNode(id NodeID) {
	b.nodes[id] = struct{}{}
}

// AddEdge records the undirected edge {u, v}, adding both endpoints as nodes.
// Duplicate edges and either orientation collapse into one edge at Build time.
// Self-loops are ignored unless the builder was created WithLoops; the
// endpoint is still added as a node.
func (b *Builder) AddEdge(u, v NodeID) {
	b.nodes[u] = struct{}{}
	b.nodes[v] = struct{}{}
	if u == v {
		if b.allowLoops {
			b.pairs = append(b.pairs, pair{u, u})
		}
		return
	}
	b.pairs = append(b.pairs, pair{u, v}, pair{v, u})
}

// Build freezes the accumulated nodes and edges into an immutable Graph.
// The builder may be reused afterwards; later additions do not affect the result.
//
// Steps:
//  1. Sort node ids ascending and assign dense indices.
//  2. Sort the recorded half-edges by (u, v) and drop duplicates.
//  3. Count per-node degrees into offsets and fill the flat neighbor arena.
//
// Complexity: O(V log V + E log E) time, O(V + E) memory.
func (b *Builder) Build() *Graph {
	if len(b.nodes) == 0 {
		return Empty()
	}

	// 1. Dense index assignment in ascending id order.
	ids := make([]NodeID, 0, len(b.nodes))
	for id := range b.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	index := make(map[NodeID]int32, len(ids))
	for i, id := range ids {
		index[id] = int32(i)
	}

	// 2. Canonical half-edge list.
	pairs := slices.Clone(b.pairs)
	slices.SortFunc(pairs, func(a, c pair) int {
		switch {
		case a.u < c.u:
			return -1
		case a.u > c.u:
			return 1
		case a.v < c.v:
			return -1
		case a.v > c.v:
			return 1
		}
		return 0
	})
	pairs = slices.Compact(pairs)

	// 3. CSR fill. Pairs are sorted by u then v, and index order matches id
	//    order, so each row comes out already sorted.
	offsets := make([]int, len(ids)+1)
	for _, p := range pairs {
		offsets[index[p.u]+1]++
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
	adj := make([]int32, len(pairs))
	loops := 0
	for k, p := range pairs {
		adj[k] = index[p.v]
		if p.u == p.v {
			loops++
		}
	}

	return &Graph{ids: ids, index: index, offsets: offsets, adj: adj, loops: loops}
}

// FromAdjacency builds a symmetric Graph from a possibly asymmetric adjacency
// map: every key becomes a node, every listed neighbor becomes a node, and
// every listed pair becomes an undirected edge.
// Complexity: O(V log V + E log E).
func FromAdjacency(adjacency map[NodeID][]NodeID, opts ...BuilderOption) *Graph {
	b := NewBuilder(opts...)
	for u, nbrs := range adjacency {
		b.AddNode(u)
		for _, v := range nbrs {
			b.AddEdge(u, v)
		}
	}

	return b.Build()
}
