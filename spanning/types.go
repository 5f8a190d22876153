// SPDX-License-Identifier: MIT
package spanning

import (
	"fmt"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
)

// MethodKruskal selects Kruskal's algorithm (sort all candidates, union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm, restarted once per component.
const MethodPrim = "prim"

// Edge is one accepted forest edge in canonical form: U < V.
type Edge struct {
	U, V   core.NodeID
	Weight float64
}

// Forest is the result of one spanning-forest run. It is not modified after
// the builder returns it.
type Forest struct {
	// Edges are the accepted edges in acceptance order.
	Edges []Edge

	// TotalWeight is the sum of the accepted weights.
	TotalWeight float64

	// Candidates is the number of edges with both endpoints located.
	Candidates int
}

// WeightFunc returns the weight of the edge between two located nodes.
type WeightFunc func(a, b geo.Location) float64

// Options configures a spanning-forest run.
type Options struct {
	// Method is MethodKruskal or MethodPrim; Compute dispatches on it.
	Method string

	// Weight defaults to geo.Haversine (kilometres).
	Weight WeightFunc

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Kruskal with haversine weights.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Weight: geo.Haversine}
}

// WithMethod selects the algorithm used by Compute. Unknown names are a
// configuration violation.
func WithMethod(m string) Option {
	return func(o *Options) {
		switch m {
		case MethodKruskal, MethodPrim:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: spanning: unknown method %q", core.ErrInvalidConfiguration, m)
		}
	}
}

// WithWeightFunc replaces the edge weight. nil is ignored.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Compute runs the algorithm named by the Method option.
func Compute(g *core.Graph, locs geo.Locations, opts ...Option) (*Forest, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.Method == MethodPrim {
		return prim(g, locs, o), nil
	}

	return kruskal(g, locs, o)
}

// candidates enumerates the located edges {u, v}, u < v, with their weights.
// Edges with a missing endpoint location are excluded. Self-loops never qualify.
func candidates(g *core.Graph, locs geo.Locations, w WeightFunc) []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for i := 0; i < g.Len(); i++ {
		u := g.NodeAt(i)
		lu, ok := locs.Lookup(u)
		if !ok {
			continue
		}
		for _, j := range g.NeighborsAt(i) {
			// Indices ascend with ids, so j > i is v > u.
			if int(j) <= i {
				continue
			}
			v := g.NodeAt(int(j))
			lv, ok := locs.Lookup(v)
			if !ok {
				continue
			}
			out = append(out, Edge{U: u, V: v, Weight: w(lu, lv)})
		}
	}

	return out
}
