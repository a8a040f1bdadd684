// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: policy getters and the Stats snapshot.

package core

// Looped reports whether self-loops are permitted by policy.
// If false, AddEdge(v,v) returns ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of vertex/edge counts and the degree range.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock then muAdj.RLock (documented lock order).
//   - Stage 2: Scan every vertex degree once.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
		AllowsLoops: g.allowLoops,
		Regular:     true,
	}
	for i, id := range g.order {
		d := len(g.adjacency[id])
		if i == 0 {
			stats.MinDegree, stats.MaxDegree = d, d
			continue
		}
		if d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	stats.Regular = stats.MinDegree == stats.MaxDegree

	return stats
}
