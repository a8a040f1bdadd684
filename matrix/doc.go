// Package matrix offers a bit-packed adjacency matrix view of a core.Graph.
//
// Adjacency stores one row of ⌈V/64⌉ machine words per vertex, so:
//
//   - Has(i, j) is O(1).
//   - Degree(i) is O(V/64) popcounts.
//   - CommonNeighbors(i, j) is O(V/64) popcounts of AND-ed rows.
//
// That makes the O(V²) pair scan of a strong-regularity test O(V³/64) word
// operations, fine for the field orders the pipeline sweeps.
//
// Vertex indices follow g.Vertices() (insertion order); IDs()/Index() map
// between indices and vertex IDs. The matrix is a snapshot: later mutations of
// the source graph are not reflected.
package matrix
