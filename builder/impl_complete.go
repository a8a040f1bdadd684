// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// impl_complete.go — Complete(n), CompleteBipartite(n1, n2) and
// Disjoint(copies, size) constructors.
//
// Complexity:
//   • Complete: O(n²) edges.
//   • CompleteBipartite: O(n1·n2) edges.
//   • Disjoint: O(copies·size²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
)

// Complete returns a Constructor for the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		return clique(g, cfg, MethodComplete, 0, n)
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}. Vertex IDs are
// "<left><i>" and "<right><j>".
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCompleteBipartite, right[j], err)
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Disjoint returns a Constructor for copies vertex-disjoint copies of K_size.
// Copy c uses indices c·size .. c·size+size-1 of cfg.idFn.
func Disjoint(copies, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if copies < MinDisjointCopies || size < MinCompleteNodes {
			return fmt.Errorf("%s: copies=%d, size=%d: %w", MethodDisjoint, copies, size, ErrTooFewVertices)
		}
		for c := 0; c < copies; c++ {
			if err := clique(g, cfg, MethodDisjoint, c*size, size); err != nil {
				return err
			}
		}
		return nil
	}
}

func clique(g *core.Graph, cfg builderConfig, method string, from, n int) error {
	if err := addIndexed(g, cfg, method, from, n); err != nil {
		return err
	}
	for i := from; i < from+n; i++ {
		for j := i + 1; j < from+n; j++ {
			if err := addEdge(g, method, cfg.idFn(i), cfg.idFn(j)); err != nil {
				return err
			}
		}
	}
	return nil
}
