package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfsrg/bfs"
	"github.com/katalvlaran/gfsrg/core"
)

func mustEdge(t *testing.T, g *core.Graph, u, v string) {
	t.Helper()
	_, err := g.AddEdge(u, v)
	require.NoError(t, err)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Connected(context.Background(), nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Components(context.Background(), nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_CycleDepths covers a 4-cycle and checks layering and paths.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B")
	mustEdge(t, g, "B", "C")
	mustEdge(t, g, "C", "D")
	mustEdge(t, g, "D", "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

// TestBFS_MaxDepth verifies the depth limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B")
	mustEdge(t, g, "B", "C")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_OnVisitAbort verifies hook errors propagate wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B")
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled verifies a cancelled context aborts the walk.
func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Connected(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestConnected covers trivial, connected and disconnected graphs.
func TestConnected(t *testing.T) {
	ctx := context.Background()

	ok, err := bfs.Connected(ctx, core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok, "empty graph")

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("A"))
	ok, err = bfs.Connected(ctx, single)
	require.NoError(t, err)
	assert.True(t, ok, "single vertex")

	path := core.NewGraph()
	for i := 0; i < 9; i++ {
		mustEdge(t, path, strconv.Itoa(i), strconv.Itoa(i+1))
	}
	ok, err = bfs.Connected(ctx, path)
	require.NoError(t, err)
	assert.True(t, ok, "path")

	split := core.NewGraph()
	mustEdge(t, split, "X", "Y")
	mustEdge(t, split, "P", "Q")
	ok, err = bfs.Connected(ctx, split)
	require.NoError(t, err)
	assert.False(t, ok, "two components")

	isolated := core.NewGraph()
	mustEdge(t, isolated, "A", "B")
	require.NoError(t, isolated.AddVertex("C"))
	ok, err = bfs.Connected(ctx, isolated)
	require.NoError(t, err)
	assert.False(t, ok, "isolated vertex")
}

// TestComponents verifies partition order and contents.
func TestComponents(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "X", "Y")
	mustEdge(t, g, "P", "Q")
	mustEdge(t, g, "Q", "R")
	require.NoError(t, g.AddVertex("Z"))

	comps, err := bfs.Components(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"X", "Y"}, {"P", "Q", "R"}, {"Z"}}, comps)
}
