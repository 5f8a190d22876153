// SPDX-License-Identifier: MIT
// topology.go: Build orchestrator and the fixed-shape constructors.
//
// Contract:
//   • Each constructor validates its size first and returns ErrTooFewVertices.
//   • Ids are allocated from cfg in ascending order; edges are emitted in a
//     stable order (the core.Builder dedups and sorts anyway).

package synth

import (
	"fmt"

	"github.com/katalvlaran/geosocial/core"
)

// Constructor appends one topology to b using ids allocated from cfg.
type Constructor func(b *core.Builder, cfg *config) error

const (
	minCycleNodes    = 3
	minPathNodes     = 1
	minStarNodes     = 1
	minCompleteNodes = 1
)

// Build applies cons in order on a fresh core.Builder and returns the frozen
// graph. Constructor errors are wrapped with "synth: Build: %w".
//
// Complexity: Σ cost of each constructor plus one core.Builder.Build.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	b := core.NewBuilder()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("synth: Build: index %d: %w", i, errNilConstructor)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("synth: Build: %w", err)
		}
	}

	return b.Build(), nil
}

// Cycle builds C_n over n fresh ids (n ≥ 3).
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg *config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		first := cfg.alloc(n)
		for i := 0; i < n; i++ {
			b.AddEdge(first+core.NodeID(i), first+core.NodeID((i+1)%n))
		}

		return nil
	}
}

// Path builds P_n over n fresh ids (n ≥ 1; a single node is isolated).
func Path(n int) Constructor {
	return func(b *core.Builder, cfg *config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		first := cfg.alloc(n)
		b.AddNode(first)
		for i := 1; i < n; i++ {
			b.AddEdge(first+core.NodeID(i-1), first+core.NodeID(i))
		}

		return nil
	}
}

// Star builds a hub (the first id) with n-1 leaves (n ≥ 1).
func Star(n int) Constructor {
	return func(b *core.Builder, cfg *config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.alloc(n)
		b.AddNode(hub)
		for i := 1; i < n; i++ {
			b.AddEdge(hub, hub+core.NodeID(i))
		}

		return nil
	}
}

// Complete builds K_n over n fresh ids (n ≥ 1).
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg *config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		first := cfg.alloc(n)
		b.AddNode(first)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.AddEdge(first+core.NodeID(i), first+core.NodeID(j))
			}
		}

		return nil
	}
}

// Isolated adds n fresh nodes without edges.
func Isolated(n int) Constructor {
	return func(b *core.Builder, cfg *config) error {
		if n < 0 {
			return fmt.Errorf("Isolated: n=%d < 0: %w", n, ErrTooFewVertices)
		}
		first := cfg.alloc(n)
		for i := 0; i < n; i++ {
			b.AddNode(first + core.NodeID(i))
		}

		return nil
	}
}

// Disjoint groups parts into one constructor; each part gets its own id range.
func Disjoint(parts ...Constructor) Constructor {
	return func(b *core.Builder, cfg *config) error {
		for i, part := range parts {
			if part == nil {
				return fmt.Errorf("Disjoint: part %d: %w", i, errNilConstructor)
			}
			if err := part(b, cfg); err != nil {
				return fmt.Errorf("Disjoint: part %d: %w", i, err)
			}
		}

		return nil
	}
}
