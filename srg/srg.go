// SPDX-License-Identifier: MIT
// File: srg.go
// Role: Params/Result types and the strong-regularity check.

package srg

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
	"github.com/katalvlaran/gfsrg/matrix"
)

// ErrGraphNil is returned when Check receives a nil graph.
var ErrGraphNil = errors.New("srg: graph is nil")

// Params are the four strongly regular parameters.
type Params struct {
	V      int // vertex count
	K      int // degree
	Lambda int // common neighbours of adjacent pairs
	Mu     int // common neighbours of non-adjacent pairs
}

// String renders the tuple as "(v, k, λ, μ)".
func (p Params) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", p.V, p.K, p.Lambda, p.Mu)
}

// Result is either "not strongly regular" (OK == false) or a parameter set.
type Result struct {
	Params Params
	OK     bool
}

// False is the negative Result.
var False = Result{}

// String renders "False" or the parameter tuple.
func (r Result) String() string {
	if !r.OK {
		return "False"
	}
	return r.Params.String()
}

// Check tests g for strong regularity.
//
// Steps:
//  1. Snapshot g into a bit-packed adjacency.
//  2. Require a loop-free k-regular graph with 0 < k < v-1.
//  3. Scan all unordered pairs; the first adjacent pair fixes λ and the first
//     non-adjacent pair fixes μ; any disagreement returns False.
//
// Context cancellation is checked once per row.
//
// Complexity: O(V² · V/64) time, O(V²/64) space.
func Check(ctx context.Context, g *core.Graph) (Result, error) {
	if g == nil {
		return False, ErrGraphNil
	}
	a, err := matrix.NewAdjacency(g)
	if err != nil {
		return False, fmt.Errorf("srg: Check: %w", err)
	}

	return checkAdjacency(ctx, a)
}

func checkAdjacency(ctx context.Context, a *matrix.Adjacency) (Result, error) {
	v := a.Size()
	if v < 2 || a.HasLoops() {
		return False, nil
	}

	k, _ := a.Degree(0)
	for i := 1; i < v; i++ {
		d, _ := a.Degree(i)
		if d != k {
			return False, nil
		}
	}
	// complete or empty
	if k == 0 || k == v-1 {
		return False, nil
	}

	lambda, mu := -1, -1
	for i := 0; i < v; i++ {
		if err := ctx.Err(); err != nil {
			return False, fmt.Errorf("srg: Check: %w", err)
		}
		for j := i + 1; j < v; j++ {
			c, _ := a.CommonNeighbors(i, j)
			if a.Has(i, j) {
				if lambda < 0 {
					lambda = c
				} else if c != lambda {
					return False, nil
				}
				continue
			}
			if mu < 0 {
				mu = c
			} else if c != mu {
				return False, nil
			}
		}
	}

	return Result{Params: Params{V: v, K: k, Lambda: lambda, Mu: mu}, OK: true}, nil
}
