// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over an undirected core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - BFS returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks at two stages: OnEnqueue (discovery) and OnVisit (dequeue; may
//     abort with an error).
//   - WithFilterNeighbor prunes individual edges, WithMaxDepth bounds the
//     depth (d>0) or disables the bound (d==0), WithTarget stops early.
//   - Distance and Searcher answer point-to-point queries with early exit:
//     the search ends as soon as the destination is discovered.
//
// Determinism
//
//	Neighbor lists are stored in ascending id order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Symmetry
//
//	Graphs are undirected, so Distance(a, b) == Distance(b, a) for every pair.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, visited flags, Depth and Parent maps)
//   - Searcher reuses its O(V) scratch across queries; a query touches only
//     the nodes it reaches.
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id core.NodeID, depth int) error { return nil }),
//	)
//
//	d, ok, err := bfs.Distance(g, a, b)
//
// Errors
//
//   - ErrGraphNil                   if the graph pointer is nil.
//   - core.ErrUnknownNode           if the start (or destination) is not in the graph.
//   - core.ErrInvalidConfiguration  for a negative MaxDepth.
//   - ErrNoPath                     from Result.PathTo for an unreached node.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
