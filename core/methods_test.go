// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfsrg/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	// Stage 1: empty IDs are rejected.
	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)

	// Stage 2: insertion and membership.
	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexB))
	assert.False(t, g.HasVertex(VertexEmpty))

	// Stage 3: duplicate insertion is a no-op.
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Index)
	_, err = g.Vertex(VertexB)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_VerticesInsertionOrder anchors the ordering contract of Vertices().
func TestGraph_VerticesInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	for _, id := range []string{VertexD, VertexA, VertexC, VertexB} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{VertexD, VertexA, VertexC, VertexB}, g.Vertices())
}

// TestGraph_AddEdgeDedup verifies that re-adding {u,v} in either orientation is a no-op.
func TestGraph_AddEdgeDedup(t *testing.T) {
	g := core.NewGraph()

	added, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = g.AddEdge(VertexB, VertexA)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexC))
	assert.False(t, g.HasEdge(VertexEmpty, VertexA))
}

// TestGraph_Loops verifies the loop policy.
func TestGraph_Loops(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexA)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, g.Looped())
	assert.Equal(t, 0, g.VertexCount(), "rejected loop must not create its endpoint")

	gl := core.NewGraph(core.WithLoops())
	added, err := gl.AddEdge(VertexA, VertexA)
	require.NoError(t, err)
	assert.True(t, added)
	nbrs, err := gl.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA}, nbrs)
	assert.Equal(t, []core.Edge{{From: VertexA, To: VertexA}}, gl.Edges())
}

// TestGraph_EmptyEndpoints verifies empty IDs are rejected before any mutation.
func TestGraph_EmptyEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexEmpty, VertexA)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge(VertexA, VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

// TestGraph_NeighborsDegreeEdges checks the query APIs on a square.
func TestGraph_NeighborsDegreeEdges(t *testing.T) {
	g := buildSquare(t)

	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexD}, nbrs)

	d, err := g.Degree(VertexC)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = g.NeighborIDs(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	want := []core.Edge{
		{From: VertexA, To: VertexB},
		{From: VertexA, To: VertexD},
		{From: VertexB, To: VertexC},
		{From: VertexC, To: VertexD},
	}
	assert.Equal(t, want, g.Edges())
}

// TestGraph_Stats checks degree range and regularity.
func TestGraph_Stats(t *testing.T) {
	assert.Equal(t, core.GraphStats{Regular: true}, core.NewGraph().Stats())

	g := buildSquare(t)
	s := g.Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, 2, s.MinDegree)
	assert.Equal(t, 2, s.MaxDegree)
	assert.True(t, s.Regular)

	_, err := g.AddEdge(VertexA, VertexC)
	require.NoError(t, err)
	s = g.Stats()
	assert.Equal(t, 3, s.MaxDegree)
	assert.False(t, s.Regular)
}
