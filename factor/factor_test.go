package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfsrg/factor"
)

func TestNonTrivialFactors_Known(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{n: 15, want: []int{3, 5}},
		{n: 7, want: []int{}},
		{n: 63, want: []int{3, 7, 9, 21}},
		{n: 255, want: []int{3, 5, 15, 17, 51, 85}},
		{n: 36, want: []int{2, 3, 4, 6, 9, 12, 18}},
		{n: 49, want: []int{7}},
		{n: 1, want: []int{}},
		{n: 0, want: []int{}},
		{n: 4, want: []int{2}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, factor.NonTrivialFactors(tc.n), "n=%d", tc.n)
	}
}

// Exhaustive cross-check against a naive divisor scan for small n.
func TestNonTrivialFactors_EmptyIffPrime(t *testing.T) {
	for n := 2; n <= 2000; n++ {
		got := factor.NonTrivialFactors(n)
		require.Equal(t, factor.IsPrime(n), len(got) == 0, "n=%d", n)

		var naive []int
		for d := 2; d < n; d++ {
			if n%d == 0 {
				naive = append(naive, d)
			}
		}
		if naive == nil {
			naive = []int{}
		}
		require.Equal(t, naive, got, "n=%d", n)
	}
}

func TestPrimePower(t *testing.T) {
	cases := []struct {
		q    int
		p, k int
		ok   bool
	}{
		{q: 2, p: 2, k: 1, ok: true},
		{q: 16, p: 2, k: 4, ok: true},
		{q: 9, p: 3, k: 2, ok: true},
		{q: 125, p: 5, k: 3, ok: true},
		{q: 13, p: 13, k: 1, ok: true},
		{q: 6, ok: false},
		{q: 12, ok: false},
		{q: 1, ok: false},
		{q: 0, ok: false},
		{q: -8, ok: false},
	}
	for _, tc := range cases {
		p, k, ok := factor.PrimePower(tc.q)
		assert.Equal(t, tc.ok, ok, "q=%d", tc.q)
		if tc.ok {
			assert.Equal(t, tc.p, p, "q=%d p", tc.q)
			assert.Equal(t, tc.k, k, "q=%d k", tc.q)
		}
	}
}
