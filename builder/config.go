// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • left/right  = "L" / "R"
//   • ctx         = context.Background()

package builder

import "context"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic). FieldGraph ignores it
	// and labels vertices by their field rendering.
	idFn IDFn

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string

	// Cancellation for long-running constructors (FieldGraph).
	ctx context.Context
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
