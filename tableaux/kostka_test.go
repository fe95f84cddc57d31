// Package tableaux_test contains unit tests for partitions, Kostka numbers
// and the exact harmonic/binomial helpers.
package tableaux_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithgeo/hodgeriemann/tableaux"
)

// TestKostka_KnownValues pins the evaluator against hand-countable and
// textbook values.
func TestKostka_KnownValues(t *testing.T) {
	cases := []struct {
		shape   tableaux.Partition
		content []int
		want    int64
	}{
		// Empty shape, empty content: the single empty tableau.
		{tableaux.Partition{}, nil, 1},
		// Single row: one weakly increasing arrangement.
		{tableaux.Partition{3}, []int{1, 1, 1}, 1},
		// Column of height 2: strict increase forces the order.
		{tableaux.Partition{1, 1}, []int{1, 1}, 1},
		// Column of height 2 cannot hold two equal entries.
		{tableaux.Partition{1, 1}, []int{2}, 0},
		// Standard tableaux of shape (2,1): 2.
		{tableaux.Partition{2, 1}, []int{1, 1, 1}, 2},
		// Standard tableaux of the 2×2 square: 2.
		{tableaux.Partition{2, 2}, []int{1, 1, 1, 1}, 2},
		// Standard tableaux of the 2×3 rectangle: 5 (Catalan).
		{tableaux.Partition{3, 3}, []int{1, 1, 1, 1, 1, 1}, 5},
		// Rectangle with rectangular content: unique row-constant filling.
		{tableaux.Partition{2, 2}, []int{2, 2}, 1},
		{tableaux.Partition{3, 3}, []int{3, 3}, 1},
		// Near-rectangular content.
		{tableaux.Partition{3, 3}, []int{2, 2, 2}, 1},
		{tableaux.Partition{2, 2}, []int{2, 1, 1}, 1},
		// Dominance violated: content not dominated by shape.
		{tableaux.Partition{1, 1, 1, 1}, []int{2, 2}, 0},
		// SYT of staircase (3,2,1): 16.
		{tableaux.Partition{3, 2, 1}, []int{1, 1, 1, 1, 1, 1}, 16},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("K(%v,%v)", tc.shape, tc.content)
		t.Run(name, func(t *testing.T) {
			got, err := tableaux.Kostka(tc.shape, tc.content)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Int64(), "unexpected Kostka number")
		})
	}
}

// TestKostka_ContentPermutationInvariance verifies the classical symmetry
// K(λ, μ) = K(λ, σμ) for permuted content.
func TestKostka_ContentPermutationInvariance(t *testing.T) {
	shape := tableaux.Partition{3, 2}
	a, err := tableaux.Kostka(shape, []int{2, 2, 1})
	require.NoError(t, err)
	b, err := tableaux.Kostka(shape, []int{1, 2, 2})
	require.NoError(t, err)
	c, err := tableaux.Kostka(shape, []int{2, 1, 2})
	require.NoError(t, err)

	assert.Zero(t, a.Cmp(b), "K must be invariant under content permutation")
	assert.Zero(t, a.Cmp(c), "K must be invariant under content permutation")
}

// TestKostka_DominanceAgreement cross-checks positivity of K(λ, μ) against
// the dominance criterion for partition contents.
func TestKostka_DominanceAgreement(t *testing.T) {
	shapes := []tableaux.Partition{{4, 2}, {3, 3}, {3, 2, 1}, {2, 2, 2}}
	contents := []tableaux.Partition{{4, 2}, {3, 3}, {3, 2, 1}, {2, 2, 2}, {1, 1, 1, 1, 1, 1}}

	for _, sh := range shapes {
		for _, ct := range contents {
			k, err := tableaux.Kostka(sh, ct)
			require.NoError(t, err)
			positive := k.Sign() > 0
			assert.Equal(t, sh.Dominates(ct), positive,
				"positivity of K(%v,%v) must match dominance", sh, ct)
		}
	}
}

// TestKostka_Errors exercises the sentinel error surface.
func TestKostka_Errors(t *testing.T) {
	// Increasing parts are not a partition.
	_, err := tableaux.Kostka(tableaux.Partition{1, 2}, []int{1, 2})
	assert.ErrorIs(t, err, tableaux.ErrBadPartition)

	// Negative part.
	_, err = tableaux.Kostka(tableaux.Partition{2, -1}, []int{1})
	assert.ErrorIs(t, err, tableaux.ErrBadPartition)

	// Negative multiplicity.
	_, err = tableaux.Kostka(tableaux.Partition{2}, []int{3, -1})
	assert.ErrorIs(t, err, tableaux.ErrNegativeContent)

	// Size mismatch signals a grading bug upstream.
	_, err = tableaux.Kostka(tableaux.Partition{2, 1}, []int{1, 1})
	assert.ErrorIs(t, err, tableaux.ErrContentMismatch)
}

// TestPartition_Helpers covers Normalize, Conjugate, Rectangle and Dominates.
func TestPartition_Helpers(t *testing.T) {
	p := tableaux.Partition{3, 2, 0, 0}
	assert.Equal(t, tableaux.Partition{3, 2}, p.Normalize())
	assert.Equal(t, 5, p.Size())
	assert.Equal(t, 2, p.Len())

	assert.Equal(t, tableaux.Partition{2, 2, 1}, tableaux.Partition{3, 2}.Conjugate())
	assert.Equal(t, tableaux.Partition{4, 4, 4}, tableaux.Rectangle(3, 4))
	assert.Equal(t, tableaux.Partition{}, tableaux.Rectangle(0, 4))

	assert.True(t, tableaux.Partition{3, 1}.Dominates(tableaux.Partition{2, 2}))
	assert.False(t, tableaux.Partition{2, 2}.Dominates(tableaux.Partition{3, 1}))
	// Different sizes never compare.
	assert.False(t, tableaux.Partition{3}.Dominates(tableaux.Partition{2}))
}

// TestHarmonics verifies the exact prefix sums and the error path.
func TestHarmonics(t *testing.T) {
	hs, err := tableaux.Harmonics(4)
	require.NoError(t, err)
	require.Len(t, hs, 5)

	assert.Zero(t, hs[0].Cmp(new(big.Rat)), "H_0 = 0")
	assert.Zero(t, hs[1].Cmp(big.NewRat(1, 1)), "H_1 = 1")
	assert.Zero(t, hs[2].Cmp(big.NewRat(3, 2)), "H_2 = 3/2")
	assert.Zero(t, hs[3].Cmp(big.NewRat(11, 6)), "H_3 = 11/6")
	assert.Zero(t, hs[4].Cmp(big.NewRat(25, 12)), "H_4 = 25/12")

	_, err = tableaux.Harmonics(-1)
	assert.ErrorIs(t, err, tableaux.ErrBadBound)
}

// TestBinomial covers in-range, out-of-range and error cases.
func TestBinomial(t *testing.T) {
	b, err := tableaux.Binomial(5, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), b.Int64())

	b, err = tableaux.Binomial(4, 7)
	require.NoError(t, err)
	assert.Zero(t, b.Sign(), "out-of-range k yields 0")

	_, err = tableaux.Binomial(-1, 0)
	assert.ErrorIs(t, err, tableaux.ErrBadBound)
}

func BenchmarkKostka_Rectangle(b *testing.B) {
	shape := tableaux.Rectangle(4, 4)
	content := []int{4, 4, 4, 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tableaux.Kostka(shape, content); err != nil {
			b.Fatal(err)
		}
	}
}
