// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Degree, Edges).
// Determinism:
//   - NeighborIDs() returns IDs sorted lex asc.
//   - Edges() returns edges sorted by (From, To) lex asc with From ≤ To.
// Concurrency:
//   - Read operations hold muVert then muAdj read locks.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically.
// A self-loop lists id itself once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	nbrs := g.adjacency[id]
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of distinct neighbours of id (a loop counts once).
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Edges returns every edge once, with From ≤ To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u <= v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.muAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
