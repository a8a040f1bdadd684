// Package builder provides "functional-options"-style graph constructors.
//
// The central constructor is FieldGraph, which realises a binary relation on
// a finite field as a simple undirected graph: one vertex per field element,
// an edge {x, y} whenever the relation holds for (x, y) or (y, x).
//
// A handful of small reference topologies (Cycle, Path, Complete,
// CompleteBipartite, Disjoint) share the same Constructor contract; they are
// used as known-answer fixtures for connectivity and strong-regularity tests.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the ID scheme and bipartite prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//   - Orchestrators:
//     – BuildGraph:        applies constructors in order to a fresh core.Graph.
//     – BuildFieldGraph:   field + relation in one call.
//
// Guarantees:
//
//   - Idempotent construction: re-running a constructor on g does not
//     duplicate vertices or edges.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime parameter errors are sentinel errors wrapped with the method name.
package builder
