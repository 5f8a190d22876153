// SPDX-License-Identifier: MIT
// Package core defines the central NodeID, Connection and Graph types and the
// error taxonomy shared by every analysis component.
//
// This file declares NodeID, Connection, the sentinel errors, and the
// BuilderOption set used by NewBuilder / FromAdjacency.
//
// Errors:
//
//	ErrInvalidConfiguration - a component was configured with meaningless values.
//	ErrUnknownNode          - a lookup referenced a node outside the graph's node set.
//	ErrInsufficientNodes    - fewer nodes than an operation minimally requires.
package core

import "errors"

// Sentinel errors shared by all analysis packages. Components wrap these with
// fmt.Errorf("%w: ...") so callers can match a single value with errors.Is.
var (
	// ErrInvalidConfiguration indicates a non-positive size, an out-of-range
	// fraction, a nil random source, or any other setting that makes a run meaningless.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrUnknownNode indicates a query for a node that is not part of the
	// current node set. It is a programming-contract violation.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInsufficientNodes indicates an operation needs more nodes than exist
	// (for example, pair sampling on a graph with fewer than two nodes).
	ErrInsufficientNodes = errors.New("core: insufficient nodes")
)

// NodeID is a non-negative node identifier. IDs are dense but need not be contiguous.
type NodeID uint64

// Connection is one row of a raw connection list: the owning node followed by
// its neighbors, in ingestion order. Raw connections may be directed or
// asymmetric and may repeat neighbors; the sampler symmetrizes them.
type Connection struct {
	// Node is the owner of the row.
	Node NodeID

	// Neighbors lists the row's neighbor ids as ingested.
	Neighbors []NodeID
}

// Degree returns the raw out-degree of the row (duplicates included).
func (c Connection) Degree() int { return len(c.Neighbors) }

// BuilderOption configures a Builder before edges are added.
type BuilderOption func(b *Builder)

// WithLoops keeps self-loops (u, u) instead of silently dropping them.
// A kept loop appears exactly once in u's neighbor list.
func WithLoops() BuilderOption {
	return func(b *Builder) { b.allowLoops = true }
}

// WithCapacity pre-sizes the builder for roughly n nodes and m undirected edges.
func WithCapacity(n, m int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.nodes = make(map[NodeID]struct{}, n)
		}
		if m > 0 {
			b.pairs = make([]pair, 0, 2*m)
		}
	}
}
