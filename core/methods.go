// Package core: vertex and edge lifecycle on the Graph type defined in types.go.
//
// Adjacency is a nested map adjacency[u][v] = struct{}{}, mirrored for u≠v,
// giving constant-time insertion and membership tests. An undirected edge is
// never stored twice, which is what makes AddEdge idempotent.

package core

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Index: len(g.order)}
	g.order = append(g.order, id)

	g.muAdj.Lock()
	g.adjacency[id] = make(map[string]struct{})
	g.muAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the Vertex record for id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Adding an edge that already exists is a no-op and reports added == false.
//
// Returns ErrEmptyVertexID or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (added bool, err error) {
	// 1) Input validation
	if u == "" || v == "" {
		return false, ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return false, ErrLoopNotAllowed
	}

	// 2) Ensure endpoints exist (idempotent)
	if err = g.AddVertex(u); err != nil {
		return false, err
	}
	if err = g.AddVertex(v); err != nil {
		return false, err
	}

	// 3) Insert under the adjacency lock
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, exists := g.adjacency[u][v]; exists {
		return false, nil
	}
	g.adjacency[u][v] = struct{}{}
	if u != v {
		g.adjacency[v][u] = struct{}{}
	}
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether {u,v} is an edge. Order of u and v is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and safe to retain.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}
