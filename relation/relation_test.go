package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfsrg/field"
	"github.com/katalvlaran/gfsrg/relation"
)

func TestNewPower_Errors(t *testing.T) {
	_, err := relation.NewPower(0, relation.Difference, 16)
	assert.ErrorIs(t, err, relation.ErrBadPower)

	_, err = relation.NewPower(3, nil, 16)
	assert.ErrorIs(t, err, relation.ErrNilCombiner)

	_, err = relation.NewPower(3, relation.Difference, 12)
	assert.ErrorIs(t, err, field.ErrNotPrimePower)

	_, err = relation.NewPower(3, relation.Difference, 1)
	assert.ErrorIs(t, err, field.ErrNotPrimePower)
}

// In GF(q) the nonzero n-th powers form a subgroup of order (q-1)/gcd(n, q-1).
func TestResidues_SubgroupSize(t *testing.T) {
	tests := []struct {
		order, power, want int
	}{
		{16, 3, 5},
		{16, 5, 3},
		{16, 15, 1},
		{16, 1, 15},
		{64, 9, 7},
		{9, 2, 4},
		{8, 7, 1},
	}
	for _, tc := range tests {
		r, err := relation.NewPower(tc.power, relation.Difference, tc.order)
		require.NoError(t, err)
		res := r.Residues()
		assert.Len(t, res, tc.want, "GF(%d), n=%d", tc.order, tc.power)
		for i := 1; i < len(res); i++ {
			assert.Less(t, res[i-1], res[i])
		}
		assert.Contains(t, res, r.Field().One())
		assert.Equal(t, tc.power, r.Exponent())
	}
}

func TestRelated_Difference(t *testing.T) {
	r, err := relation.NewPower(3, relation.Difference, 16)
	require.NoError(t, err)
	f := r.Field()

	related := 0
	for _, x := range f.Elements() {
		assert.False(t, r.Related(x, x), "x-x = 0 is never related")
		for _, y := range f.Elements() {
			// char 2: x-y == y-x, so the relation is symmetric
			assert.Equal(t, r.Related(x, y), r.Related(y, x))
			if r.Related(x, y) {
				related++
			}
		}
	}
	// each vertex has 5 related partners
	assert.Equal(t, 16*5, related)
}

func TestRelated_Asymmetric(t *testing.T) {
	// In GF(7), squares are {1, 2, 4}; -1 = 6 is a non-square, so x-y and
	// y-x are never both residues.
	r, err := relation.NewPower(2, relation.Difference, 7)
	require.NoError(t, err)
	assert.Equal(t, []field.Element{1, 2, 4}, r.Residues())
	assert.True(t, r.Related(1, 0))
	assert.False(t, r.Related(0, 1))
}

func TestRelated_SumAndOutOfField(t *testing.T) {
	r, err := relation.NewPower(1, relation.Sum, 5)
	require.NoError(t, err)
	assert.True(t, r.Related(1, 2))
	assert.False(t, r.Related(2, 3), "2+3 = 0 in GF(5)")
	assert.False(t, r.Related(9, 1))
}

func TestFunc(t *testing.T) {
	var rel relation.Relation = relation.Func(func(x, y field.Element) bool { return x < y })
	assert.True(t, rel.Related(1, 2))
	assert.False(t, rel.Related(2, 1))
}
