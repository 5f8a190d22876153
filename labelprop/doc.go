// SPDX-License-Identifier: MIT
// Package labelprop partitions an undirected core.Graph into communities by
// asynchronous label propagation.
//
// What:
//
//	Every node starts with its own label. On each pass the non-isolated nodes
//	are visited in a freshly shuffled order; a visited node adopts the label
//	carried by the most of its neighbors, choosing uniformly among tied labels.
//	A pass that changes no label ends the run (converged); otherwise the run
//	stops after MaxIterations passes. Nodes sharing a final label form one
//	community.
//
// Semantics:
//   - Updates are in place: a neighbor already visited in the current pass
//     contributes its new label. Labels are never snapshotted per pass.
//   - Isolated nodes are skipped and always come out as singleton communities.
//   - A kept self-loop counts the node's own label once; it never crashes.
//   - The result is a function of the random stream alone: the same graph
//     and seed give the same communities.
//
// Output:
//
//	Each Community lists its members in ascending id order. Communities are
//	ordered by size, largest first; equal sizes by smallest member.
//
// Complexity:
//
//	Time   O(I · (V + E)) for I passes (tally and reset are linear in degree).
//	Memory O(V) for labels, the visit order and the tally buffer.
//
// Errors:
//
//	core.ErrInvalidConfiguration - MaxIterations ≤ 0.
//	core.ErrUnknownNode          - Result.Label on a node outside the graph.
//	context errors               - the run was cancelled between passes.
package labelprop
