// SPDX-License-Identifier: MIT
package sampler

import (
	"slices"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// Result is the working graph together with how its node set was chosen.
type Result struct {
	// Graph is the induced, symmetrized working graph.
	Graph *core.Graph

	// Hubs are the top-degree nodes selected, in descending degree order.
	Hubs []core.NodeID

	// Drawn are the uniformly drawn nodes, in draw order.
	Drawn []core.NodeID

	// Available is the number of distinct owner rows in the raw input.
	Available int
}

// Sample reduces a raw connection list to an induced, symmetric working graph
// of at most min(targetSize, #owners) nodes.
//
// Steps:
//  1. Collapse duplicate owners: a later row replaces the earlier row's
//     neighbors but keeps its position.
//  2. Rank owners by raw out-degree, descending; ties keep input order.
//  3. targetSize ← min(targetSize, #owners); hubs = ⌊targetSize·HubFraction⌋
//     top-ranked owners; drawCount = targetSize − hubs.
//  4. Draw drawCount owners uniformly without replacement from the rest, or
//     take the whole rest if it is smaller (the graph may come out smaller
//     than requested; this is accepted, not compensated).
//  5. For every selected u and raw neighbor v that is also selected, add the
//     undirected edge {u, v}. Self-references are discarded.
//
// targetSize ≤ 0 or an empty input yields an empty graph and no error.
// The raw input is never modified.
//
// Complexity: O(R log R + Σdeg) time, O(R + Σdeg) memory, R = #rows.
func Sample(raw []core.Connection, targetSize int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows := collapse(raw)
	if len(rows) == 0 || targetSize <= 0 {
		return &Result{Graph: core.Empty(), Hubs: []core.NodeID{}, Drawn: []core.NodeID{}, Available: len(rows)}, nil
	}

	// 2. Stable degree ranking over row positions.
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return rows[b].Degree() - rows[a].Degree()
	})

	// 3. Budget split.
	target := min(targetSize, len(rows))
	nHubs := hubCount(target, o.HubFraction)
	nDraw := target - nHubs

	selected := make(map[core.NodeID]struct{}, target)
	res := &Result{
		Hubs:      make([]core.NodeID, 0, nHubs),
		Drawn:     make([]core.NodeID, 0, nDraw),
		Available: len(rows),
	}
	for _, i := range order[:nHubs] {
		id := rows[i].Node
		selected[id] = struct{}{}
		res.Hubs = append(res.Hubs, id)
	}

	// 4. Uniform draw from the remaining pool.
	pool := order[nHubs:]
	if len(pool) >= nDraw {
		for _, k := range rng.SampleInts(len(pool), nDraw, rng.Or(o.Rand)) {
			id := rows[pool[k]].Node
			selected[id] = struct{}{}
			res.Drawn = append(res.Drawn, id)
		}
	} else {
		for _, i := range pool {
			id := rows[i].Node
			selected[id] = struct{}{}
			res.Drawn = append(res.Drawn, id)
		}
	}

	// 5. Induce and symmetrize.
	b := core.NewBuilder(core.WithCapacity(len(selected), 0))
	for _, row := range rows {
		if _, ok := selected[row.Node]; !ok {
			continue
		}
		if !o.DropIsolated {
			b.AddNode(row.Node)
		}
		for _, v := range row.Neighbors {
			if v == row.Node {
				continue
			}
			if _, ok := selected[v]; ok {
				b.AddEdge(row.Node, v)
			}
		}
	}
	res.Graph = b.Build()

	return res, nil
}

// collapse removes duplicate owners, keeping the first position and the last
// neighbor list, without touching the caller's slice.
func collapse(raw []core.Connection) []core.Connection {
	pos := make(map[core.NodeID]int, len(raw))
	rows := make([]core.Connection, 0, len(raw))
	for _, c := range raw {
		if i, ok := pos[c.Node]; ok {
			rows[i].Neighbors = c.Neighbors
			continue
		}
		pos[c.Node] = len(rows)
		rows = append(rows, c)
	}

	return rows
}

// FromMap converts an adjacency map into connection rows ordered by ascending
// owner id, which fixes the tie order of the degree ranking.
func FromMap(adjacency map[core.NodeID][]core.NodeID) []core.Connection {
	ids := make([]core.NodeID, 0, len(adjacency))
	for id := range adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	rows := make([]core.Connection, len(ids))
	for i, id := range ids {
		rows[i] = core.Connection{Node: id, Neighbors: adjacency[id]}
	}

	return rows
}
