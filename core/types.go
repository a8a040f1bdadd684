// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vertex/Edge/Graph types, options, sentinel errors and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the zero-based insertion position of this Vertex.
	Index int
}

// Edge is an undirected edge {From, To}; From sorts before To (or equals it for a loop).
type Edge struct {
	From string
	To   string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory simple undirected graph.
//
// muVert protects vertices and order; muAdj protects adjacency and edgeCount.
// Lock order, when both are needed, is muVert then muAdj.
type Graph struct {
	muVert sync.RWMutex // guards vertices, order
	muAdj  sync.RWMutex // guards adjacency, edgeCount

	allowLoops bool
	capacity   int

	vertices map[string]*Vertex
	order    []string // insertion order of vertex IDs

	// adjacency[u][v] exists iff {u,v} ∈ E; mirrored for u≠v.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// GraphStats is a read-only snapshot of size and degree figures.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MinDegree   int
	MaxDegree   int
	Regular     bool // every vertex has the same degree (vacuously true for V=0)
	AllowsLoops bool
}

// NewGraph creates an empty Graph. By default loops are rejected.
// Complexity: O(capacity) for preallocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string]map[string]struct{}, g.capacity)

	return g
}
