// SPDX-License-Identifier: MIT
// Package spanning builds geography-weighted minimum spanning forests over a
// core.Graph whose nodes may carry geo.Location coordinates.
//
// What & Why
//
//   - A spanning forest is a maximal cycle-free subgraph; it is a spanning tree
//     only when the graph is connected. Working graphs sampled from a social
//     network are rarely connected, so both algorithms here return forests and
//     never fail on disconnection.
//   - Only edges whose two endpoints have a known location are candidates.
//     Unlocated edges are neither accepted nor reported.
//   - The default weight is the haversine great-circle distance in kilometres.
//
// Algorithms Provided
//
//   - Kruskal(g, locs, opts...) (*Forest, error)
//     Sort all candidates ascending by weight (ties by node-id pair) and accept
//     each edge that joins two different union-find sets.
//     Time O(E log E + α(V)·E), memory O(V + E).
//
//   - Prim(g, locs, opts...) (*Forest, error)
//     Grow one tree per component from its smallest located node with a
//     min-heap of candidates. Same total weight as Kruskal.
//     Time O(E log E), memory O(V + E).
//
//   - Compute(g, locs, opts...) dispatches on WithMethod (default Kruskal).
//
// Guarantees
//
//   - |Edges| = (#located nodes with a candidate) − (#components among them
//     in the located edge graph).
//   - No subset of Edges forms a cycle.
//   - TotalWeight is minimal among all spanning forests of the located graph.
//   - Zero candidates yield an empty forest with zero weight and no error.
//
// Errors:
//
//	core.ErrInvalidConfiguration - unknown method name.
package spanning
