package chow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithgeo/hodgeriemann/chow"
)

// TestBuildGeometricPairings_Shape checks grade count, matrix sizes and
// symmetry of the index tables.
func TestBuildGeometricPairings_Shape(t *testing.T) {
	gp, err := chow.BuildGeometricPairings(2, 2)
	require.NoError(t, err)

	// Grades 0..⌊4/2⌋.
	require.Len(t, gp.Grades, 3)
	for p, mat := range gp.Grades {
		size := len(gp.Basis[p])
		require.Len(t, mat, size, "grade %d", p)
		for i := range mat {
			require.Len(t, mat[i], size)
			for j := range mat[i] {
				assert.Equal(t, mat[i][j], mat[j][i], "grade %d (%d,%d)", p, i, j)
			}
		}
	}
}

// TestBuildGeometricPairings_PoolSharing: all combined vectors of weight
// mn collapse into a small shared pool. For (2,2) the distinct combined
// vectors are (4,0), (0,2) and (2,1).
func TestBuildGeometricPairings_PoolSharing(t *testing.T) {
	gp, err := chow.BuildGeometricPairings(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, gp.Pool.Len())

	for i := 0; i < gp.Pool.Len(); i++ {
		v, err := gp.Pool.Vector(i)
		require.NoError(t, err)
		assert.Equal(t, 4, v.Weight())
	}
}

// TestBuildArithmeticPairings_Shape checks both families: self-pairing
// vectors carry weight mn+1, cross-pairing vectors weight mn, and the
// grade-0 cross table is absent.
func TestBuildArithmeticPairings_Shape(t *testing.T) {
	ap, err := chow.BuildArithmeticPairings(2, 2)
	require.NoError(t, err)

	// Grades 0..⌊5/2⌋.
	require.Len(t, ap.Self, 3)
	require.Len(t, ap.Cross, 3)
	assert.Nil(t, ap.Cross[0])

	for p := 1; p < len(ap.Cross); p++ {
		require.Len(t, ap.Cross[p], len(ap.Basis[p]))
		for i := range ap.Cross[p] {
			require.Len(t, ap.Cross[p][i], len(ap.Basis[p-1]))
		}
	}

	for i := 0; i < ap.SelfPool.Len(); i++ {
		v, err := ap.SelfPool.Vector(i)
		require.NoError(t, err)
		assert.Equal(t, 5, v.Weight())
	}
	for i := 0; i < ap.CrossPool.Len(); i++ {
		v, err := ap.CrossPool.Vector(i)
		require.NoError(t, err)
		assert.Equal(t, 4, v.Weight())
	}
}

// TestBuildPairings_Determinism: two builds of the same bounds agree on
// every index table and on pool order.
func TestBuildPairings_Determinism(t *testing.T) {
	a, err := chow.BuildGeometricPairings(3, 2)
	require.NoError(t, err)
	b, err := chow.BuildGeometricPairings(3, 2)
	require.NoError(t, err)

	require.Equal(t, a.Grades, b.Grades)
	require.Equal(t, a.Pool.Len(), b.Pool.Len())
	for i := 0; i < a.Pool.Len(); i++ {
		va, err := a.Pool.Vector(i)
		require.NoError(t, err)
		vb, err := b.Pool.Vector(i)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

// TestBuildPairings_Degenerate: negative and zero-n bounds produce empty
// structures, never errors.
func TestBuildPairings_Degenerate(t *testing.T) {
	gp, err := chow.BuildGeometricPairings(-1, 2)
	require.NoError(t, err)
	assert.Empty(t, gp.Grades)
	assert.Equal(t, 0, gp.Pool.Len())

	ap, err := chow.BuildArithmeticPairings(2, 0)
	require.NoError(t, err)
	assert.Empty(t, ap.Self)
	assert.Empty(t, ap.Cross)
}
