// SPDX-License-Identifier: MIT
package labelprop

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/rng"
)

// Community is a set of node ids in ascending order.
type Community []core.NodeID

// Result holds the outcome of one detection run.
type Result struct {
	// Communities partition the graph's node set.
	Communities []Community

	// Iterations is the number of passes executed.
	Iterations int

	// Converged reports whether the last pass changed no label.
	Converged bool

	graph  *core.Graph
	labels []int32
}

// Label returns the final label of id. Labels are opaque node ids: two nodes
// share a community iff they share a label.
func (r *Result) Label(id core.NodeID) (core.NodeID, error) {
	i, ok := r.graph.IndexOf(id)
	if !ok {
		return 0, fmt.Errorf("labelprop: label %d: %w", id, core.ErrUnknownNode)
	}

	return r.graph.NodeAt(int(r.labels[i])), nil
}

// detector encapsulates the mutable state of one run. Labels live in the
// graph's index space: label k stands for the node at index k.
type detector struct {
	graph   *core.Graph
	opts    Options
	rnd     *rand.Rand
	labels  []int32
	order   []int32
	counts  []int32
	touched []int32
	ties    []int32
}

// Detect runs label propagation on g.
//
// Steps:
//  1. label[i] = i for every node; collect the non-isolated indices.
//  2. Per pass: shuffle the visit order, then for every visited u tally the
//     current labels of N(u), pick uniformly among the most frequent, and
//     update label[u] in place if it differs.
//  3. Stop when a pass changes nothing or MaxIterations passes ran.
//  4. Group nodes by final label.
//
// Complexity: O(I · (V + E)) time, O(V) memory.
func Detect(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	d := &detector{
		graph:  g,
		opts:   o,
		rnd:    rng.Or(o.Rand),
		labels: make([]int32, n),
		order:  make([]int32, 0, n),
		counts: make([]int32, n),
	}
	for i := 0; i < n; i++ {
		d.labels[i] = int32(i)
		if g.DegreeAt(i) > 0 {
			d.order = append(d.order, int32(i))
		}
	}

	res := &Result{graph: g, labels: d.labels}
	for res.Iterations < o.MaxIterations && len(d.order) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		changes := d.pass()
		res.Iterations++
		o.OnIteration(res.Iterations, changes)
		if changes == 0 {
			res.Converged = true
			break
		}
	}
	if len(d.order) == 0 {
		// Nothing can ever change.
		res.Converged = true
	}
	res.Communities = d.group()

	return res, nil
}

// pass visits every non-isolated node once in random order and returns the
// number of labels changed.
func (d *detector) pass() int {
	rng.ShuffleInt32(d.order, d.rnd)
	changes := 0
	for _, u := range d.order {
		next := d.vote(u)
		if next != d.labels[u] {
			d.labels[u] = next
			changes++
		}
	}

	return changes
}

// vote tallies the current labels around u and returns the winner. Tied
// labels are considered in first-seen order of the neighbor scan.
func (d *detector) vote(u int32) int32 {
	d.touched = d.touched[:0]
	var best int32
	for _, v := range d.graph.NeighborsAt(int(u)) {
		l := d.labels[v]
		if d.counts[l] == 0 {
			d.touched = append(d.touched, l)
		}
		d.counts[l]++
		if d.counts[l] > best {
			best = d.counts[l]
		}
	}

	d.ties = d.ties[:0]
	for _, l := range d.touched {
		if d.counts[l] == best {
			d.ties = append(d.ties, l)
		}
		d.counts[l] = 0
	}
	if len(d.ties) == 1 {
		return d.ties[0]
	}

	return d.ties[d.rnd.Intn(len(d.ties))]
}

// group collects node ids per label. Scanning indices in ascending order keeps
// every community sorted because ids ascend with their index.
func (d *detector) group() []Community {
	slot := make(map[int32]int, 16)
	var out []Community
	for i, l := range d.labels {
		k, ok := slot[l]
		if !ok {
			k = len(out)
			slot[l] = k
			out = append(out, Community{})
		}
		out[k] = append(out[k], d.graph.NodeAt(i))
	}
	// Stable keeps equal sizes ordered by smallest member.
	slices.SortStableFunc(out, func(a, b Community) int { return len(b) - len(a) })
	if out == nil {
		out = []Community{}
	}

	return out
}
