package srg_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfsrg/core"
	"github.com/katalvlaran/gfsrg/srg"
)

func graphFrom(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprint(i)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(fmt.Sprint(e[0]), fmt.Sprint(e[1]))
		require.NoError(t, err)
	}
	return g
}

func cycle(n int) [][2]int {
	out := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, [2]int{i, (i + 1) % n})
	}
	return out
}

func complete(n int) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

func TestCheck(t *testing.T) {
	k33 := [][2]int{}
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			k33 = append(k33, [2]int{i, j})
		}
	}
	// Petersen: outer 5-cycle, inner pentagram, spokes.
	petersen := [][2]int{}
	for i := 0; i < 5; i++ {
		petersen = append(petersen, [2]int{i, (i + 1) % 5}, [2]int{5 + i, 5 + (i+2)%5}, [2]int{i, 5 + i})
	}

	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  string
	}{
		{"C5 pentagon", 5, cycle(5), "(5, 2, 0, 1)"},
		{"C4 square", 4, cycle(4), "(4, 2, 0, 2)"},
		{"K33", 6, k33, "(6, 3, 0, 3)"},
		{"Petersen", 10, petersen, "(10, 3, 0, 1)"},
		{"C6 not srg", 6, cycle(6), "False"},
		{"K5 complete", 5, complete(5), "False"},
		{"empty", 4, nil, "False"},
		{"single vertex", 1, nil, "False"},
		{"path not regular", 3, [][2]int{{0, 1}, {1, 2}}, "False"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := srg.Check(context.Background(), graphFrom(t, tc.n, tc.edges))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.String())
		})
	}
}

func TestCheck_DisjointCliques(t *testing.T) {
	// 2·K3: adjacent pairs share one neighbour, non-adjacent pairs none.
	g := graphFrom(t, 6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	res, err := srg.Check(context.Background(), g)
	require.NoError(t, err)
	require.True(t, res.OK)
	assert.Equal(t, srg.Params{V: 6, K: 2, Lambda: 1, Mu: 0}, res.Params)
}

func TestCheck_Errors(t *testing.T) {
	_, err := srg.Check(context.Background(), nil)
	assert.ErrorIs(t, err, srg.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = srg.Check(ctx, graphFrom(t, 5, cycle(5)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "False", srg.False.String())
	assert.Equal(t, "(16, 5, 0, 2)", srg.Result{Params: srg.Params{V: 16, K: 5, Lambda: 0, Mu: 2}, OK: true}.String())
}
