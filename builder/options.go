// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil fn, nil ctx).
//     Constructors themselves never panic.

package builder

import "context"

// BuilderOption customizes constructor behaviour by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPartitionPrefix sets the vertex ID prefixes of CompleteBipartite.
// Empty strings fall back to "L" / "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix = left
		c.rightPrefix = right
	}
}

// WithContext makes long-running constructors observe ctx. Panics on nil.
func WithContext(ctx context.Context) BuilderOption {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}
