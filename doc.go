// Package gfsrg enumerates power-difference graphs over the finite fields
// GF(2^n) and reports which of them are connected and strongly regular.
//
// For a power n and each nontrivial factor d of 2^n − 1 the graph has one
// vertex per field element and an edge {x, y} whenever x − y is a nonzero
// d-th power. The module is organised leaves first:
//
//	factor/    — nontrivial factors, primality, prime-power split
//	field/     — GF(p^k) arithmetic on exp/log tables, Sage-style rendering
//	core/      — thread-safe simple undirected Graph
//	bfs/       — breadth-first search, Connected, Components
//	matrix/    — bit-packed adjacency snapshot with popcount queries
//	srg/       — strong-regularity test returning (v, k, λ, μ) or False
//	relation/  — power-residue relations on field elements
//	builder/   — Constructor-style graph builders (field graphs + fixtures)
//	pipeline/  — bounded fan-out build and check stages, batch Run
//	report/    — result lines and output destinations
//	sweep/     — "4..8, 10" power lists
//	config/    — YAML configuration
//	metrics/   — Prometheus collectors exported as a textfile
//	cmd/gfsrg  — the command-line entry point
//
// Example:
//
//	d := pipeline.NewDispatcher(pipeline.WithWorkers(4))
//	sum, err := d.Run(ctx, []int{4}, os.Stdout)
//	// GF(16), Residue Power: 3, SRG: (16, 5, 0, 2)
//	// GF(16), Residue Power: 5 is not connected
package gfsrg
