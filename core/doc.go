// SPDX-License-Identifier: MIT
// Package core provides the dense, read-only, symmetric adjacency store that
// every analysis component consumes.
//
// What
//
//   - Graph is an undirected graph over NodeID values stored as a compressed
//     sparse row (CSR) arena: every node gets a contiguous index, and all
//     neighbor lists live in one flat []int32 buffer addressed by offsets.
//   - Builder accumulates nodes and edges (in any order, with duplicates and
//     either orientation) and freezes them into a Graph.
//   - FromAdjacency symmetrizes a map[NodeID][]NodeID in a single call.
//
// Why
//
//   - A map-of-slices adjacency costs one allocation per node and scatters
//     neighbor lists across the heap. At ten-million-node scale the flat arena
//     keeps traversal cache-friendly and the memory footprint predictable.
//
// Guarantees
//
//   - Symmetric: v ∈ N(u) ⇔ u ∈ N(v).
//   - No duplicate neighbor entries.
//   - Self-loops are dropped unless WithLoops is set; a kept loop appears once.
//   - Deterministic: nodes are indexed in ascending NodeID order and every
//     neighbor list is sorted ascending by index (equivalently by NodeID).
//   - Immutable after Build: a Graph is safe for concurrent readers.
//
// Index space
//
//	Algorithms that run hot loops (label propagation, BFS, Kruskal) work on
//	indices 0..Len()-1 through NeighborsAt and NodeAt; the NodeID-facing
//	methods (NeighborIDs, Degree, HasEdge) return ErrUnknownNode for ids
//	outside the node set.
//
// Complexity (V = nodes, E = undirected edges)
//
//   - Build:       O(V log V + E log E) time, O(V + E) memory.
//   - NeighborsAt: O(1).
//   - HasEdge:     O(log deg(u)).
//   - ConnectedComponents: O(V + E).
package core
