package chow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithgeo/hodgeriemann/chow"
)

// TestEnumerateBasis_GradeCounts checks the per-grade counts against the
// Gaussian-binomial dimension sequence for a small square case.
func TestEnumerateBasis_GradeCounts(t *testing.T) {
	grades := chow.EnumerateBasis(2, 2)
	require.Len(t, grades, 5)

	want := []int{1, 1, 2, 1, 1}
	for p, vs := range grades {
		assert.Len(t, vs, want[p], "grade %d", p)
	}
}

// TestEnumerateBasis_TotalCount checks Σ_p |B[p]| = C(m+n, n).
func TestEnumerateBasis_TotalCount(t *testing.T) {
	cases := []struct {
		m, n  int
		total int
	}{
		{1, 1, 2},
		{2, 2, 6},
		{2, 3, 10},
		{3, 2, 10},
		{3, 3, 20},
	}
	for _, tc := range cases {
		grades := chow.EnumerateBasis(tc.m, tc.n)
		total := 0
		for _, vs := range grades {
			total += len(vs)
		}
		assert.Equal(t, tc.total, total, "m=%d n=%d", tc.m, tc.n)
	}
}

// TestEnumerateBasis_LexOrder pins the deterministic enumeration order of
// a grade with several vectors.
func TestEnumerateBasis_LexOrder(t *testing.T) {
	grades := chow.EnumerateBasis(2, 2)
	require.Len(t, grades[2], 2)
	assert.Equal(t, chow.Vector{0, 1}, grades[2][0])
	assert.Equal(t, chow.Vector{2, 0}, grades[2][1])
}

// TestEnumerateBasis_VectorInvariants checks weight and sum bounds for
// every enumerated vector.
func TestEnumerateBasis_VectorInvariants(t *testing.T) {
	grades := chow.EnumerateBasis(3, 2)
	for p, vs := range grades {
		for _, v := range vs {
			assert.Equal(t, p, v.Weight())
			assert.LessOrEqual(t, v.Sum(), 3)
			assert.Len(t, v, 2)
		}
	}
}

// TestEnumerateBasis_Degenerate: negative bounds yield nil, zero bounds
// yield the single empty monomial.
func TestEnumerateBasis_Degenerate(t *testing.T) {
	assert.Nil(t, chow.EnumerateBasis(-1, 2))
	assert.Nil(t, chow.EnumerateBasis(2, -1))

	grades := chow.EnumerateBasis(0, 0)
	require.Len(t, grades, 1)
	require.Len(t, grades[0], 1)
	assert.Equal(t, 0, grades[0][0].Weight())
}

// TestVector_Combine checks the offset arithmetic and the length guard.
func TestVector_Combine(t *testing.T) {
	v := chow.Vector{1, 0}
	w := chow.Vector{0, 1}

	got, err := v.Combine(w, 3)
	require.NoError(t, err)
	assert.Equal(t, chow.Vector{4, 1}, got)

	// Operands must not be mutated.
	assert.Equal(t, chow.Vector{1, 0}, v)
	assert.Equal(t, chow.Vector{0, 1}, w)

	_, err = v.Combine(chow.Vector{1}, 0)
	assert.ErrorIs(t, err, chow.ErrLengthMismatch)
}

// TestPool_Dedup checks first-seen index identity and clone-on-add.
func TestPool_Dedup(t *testing.T) {
	pool := chow.NewPool()

	v := chow.Vector{1, 2}
	i1 := pool.Add(v)
	i2 := pool.Add(chow.Vector{1, 2})
	assert.Equal(t, i1, i2)
	assert.Equal(t, 1, pool.Len())

	// Mutating the caller's slice must not reach the pool.
	v[0] = 99
	stored, err := pool.Vector(i1)
	require.NoError(t, err)
	assert.Equal(t, chow.Vector{1, 2}, stored)

	_, err = pool.Vector(5)
	assert.ErrorIs(t, err, chow.ErrPoolIndex)
}
