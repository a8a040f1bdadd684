// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// impl_field.go — FieldGraph constructor.
//
// Contract:
//   • One vertex per field element, ID = f.Format(e), added in element order.
//   • For every ordered pair (x, y), x ≠ y, add {x, y} when rel.Related(x, y).
//     core.Graph.AddEdge is a no-op for an existing undirected edge, so an
//     asymmetric relation yields {x, y} when it holds in either direction.
//   • No self-loops are ever emitted.
//   • cfg.ctx is checked once per outer row.
//
// Complexity:
//   • Time: O(q²) relation evaluations.
//   • Space: O(q) IDs plus the graph itself.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
	"github.com/katalvlaran/gfsrg/field"
	"github.com/katalvlaran/gfsrg/relation"
)

// FieldGraph returns a Constructor that realises rel on the elements of f.
func FieldGraph(f *field.Field, rel relation.Relation) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if f == nil {
			return fmt.Errorf("%s: %w", MethodFieldGraph, ErrNilField)
		}
		if rel == nil {
			return fmt.Errorf("%s: %w", MethodFieldGraph, ErrNilRelation)
		}

		elems := f.Elements()
		ids := make([]string, len(elems))
		for i, e := range elems {
			ids[i] = f.Format(e)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodFieldGraph, ids[i], err)
			}
		}

		for i, x := range elems {
			if err := cfg.ctx.Err(); err != nil {
				return fmt.Errorf("%s: %s row %d: %w: %w", MethodFieldGraph, f, i, ErrConstructFailed, err)
			}
			for j, y := range elems {
				if i == j || !rel.Related(x, y) {
					continue
				}
				if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s, %s): %w", MethodFieldGraph, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
