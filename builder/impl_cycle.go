// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3, Path: n ≥ 2 (else ErrTooFewVertices).
//   • Vertices added via cfg.idFn in ascending index order (0..n-1).
//   • Edges emitted in stable order i — i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexed(g, cfg, MethodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addIndexed(g, cfg, MethodPath, 0, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, MethodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// addIndexed adds vertices cfg.idFn(from) .. cfg.idFn(from+n-1).
func addIndexed(g *core.Graph, cfg builderConfig, method string, from, n int) error {
	for i := from; i < from+n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w", method, u, v, err)
	}
	return nil
}
