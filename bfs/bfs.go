// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, neighbor filtering and early exit.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/geosocial/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	idx   int32
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
	done    bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, core.ErrUnknownNode for a missing start,
// core.ErrInvalidConfiguration for bad options, a context error,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	si, ok := g.IndexOf(start)
	if !ok {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrUnknownNode)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, 64),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, 64),
			Depth:  make(map[core.NodeID]int, 64),
			Parent: make(map[core.NodeID]core.NodeID, 64),
		},
	}

	w.enqueue(int32(si), 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(idx int32, d int, parent int32) {
	id := w.graph.NodeAt(int(idx))
	w.visited[idx] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.graph.NodeAt(int(parent))
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
	if w.opts.HasTarget && id == w.opts.Target {
		w.done = true
	}
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[head]
		id := w.graph.NodeAt(int(item.idx))
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		// A target equal to the start is found before any expansion.
		if w.done {
			break
		}
		w.enqueueNeighbors(item, id)
		if w.done {
			break
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem, id core.NodeID) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, j := range w.graph.NeighborsAt(int(item.idx)) {
		if w.visited[j] {
			continue
		}
		if !w.opts.FilterNeighbor(id, w.graph.NodeAt(int(j))) {
			continue
		}
		w.enqueue(j, nextDepth, item.idx)
		if w.done {
			return
		}
	}
}

// Distance returns the hop count between src and dst and whether dst is
// reachable. The search stops as soon as dst is discovered.
//
// Complexity: O(V + E) worst case.
func Distance(g *core.Graph, src, dst core.NodeID) (int, bool, error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	si, ok := g.IndexOf(src)
	if !ok {
		return 0, false, fmt.Errorf("bfs: distance from %d: %w", src, core.ErrUnknownNode)
	}
	di, ok := g.IndexOf(dst)
	if !ok {
		return 0, false, fmt.Errorf("bfs: distance to %d: %w", dst, core.ErrUnknownNode)
	}
	d, found := NewSearcher(g).Distance(si, di)

	return d, found, nil
}
