// Package core provides a thread-safe, in-memory simple undirected Graph
// used as the vertex/edge container for field graphs.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; {u,v} is stored once and mirrored in adjacency.
//   - No parallel edges: adding an existing {u,v} is a no-op (not an error),
//     so builders may consult a relation in both directions without bookkeeping.
//   - Self-loops are rejected unless WithLoops() is given.
//   - Vertex insertion order is preserved and reported by Vertices().
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1), idempotent
//	HasVertex(id string) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) (added bool, err error) // O(1), dedup
//	HasEdge(u, v string) bool                    // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)  // O(d log d), sorted
//	Degree(id string) (int, error)            // O(1)
//	Vertices() []string                       // O(V), insertion order
//	Edges() []Edge                            // O(E log E), sorted by (From,To)
//	VertexCount() int / EdgeCount() int       // O(1)
//	Stats() GraphStats                        // O(V)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop when loops are disabled
package core
