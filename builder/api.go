// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
	"github.com/katalvlaran/gfsrg/field"
	"github.com/katalvlaran/gfsrg/relation"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// BuildFieldGraph constructs GF(order) and returns the graph of rel over it.
//
// Errors: field.ErrNotPrimePower / field.ErrOrderTooLarge for a bad order,
// ErrNilRelation, or ErrConstructFailed joined with the ctx error.
func BuildFieldGraph(ctx context.Context, order int, rel relation.Relation) (*core.Graph, error) {
	f, err := field.New(order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return BuildGraph(
		[]core.GraphOption{core.WithCapacity(f.Order())},
		[]BuilderOption{WithContext(ctx)},
		FieldGraph(f, rel),
	)
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// FieldGraph(f, rel)            one vertex per element, edge iff rel either way.  O(q²)
// Cycle(n)                      simple cycle C_n (n ≥ 3).                         O(n)
// Path(n)                       simple path P_n (n ≥ 2).                          O(n)
// Complete(n)                   complete graph K_n (n ≥ 1).                       O(n²)
// CompleteBipartite(n1, n2)     K_{n1,n2} with cfg.leftPrefix/cfg.rightPrefix.    O(n1·n2)
// Disjoint(copies, size)        copies·K_size, disconnected for copies ≥ 2.       O(copies·size²)
