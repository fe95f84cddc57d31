package tableaux

import "math/big"

// Harmonics returns the exact harmonic numbers H_0..H_k as big.Rat values,
// H_j = Σ_{i=1..j} 1/i with H_0 = 0.
//
// The slice is freshly allocated; callers may share it across many degree
// evaluations (package chow precomputes it once per (m, n)).
//
// Errors:
//   - ErrBadBound when k < 0.
//
// Complexity: Time O(k) big.Rat additions, Space O(k).
func Harmonics(k int) ([]*big.Rat, error) {
	if k < 0 {
		return nil, ErrBadBound
	}
	out := make([]*big.Rat, k+1)
	out[0] = new(big.Rat)
	for i := 1; i <= k; i++ {
		out[i] = new(big.Rat).Add(out[i-1], big.NewRat(1, int64(i)))
	}

	return out, nil
}

// Binomial returns C(n, k) exactly. Out-of-range k yields 0, matching the
// lattice-point counting identities used by the basis tests.
//
// Errors:
//   - ErrBadBound when n < 0.
func Binomial(n, k int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrBadBound
	}
	if k < 0 || k > n {
		return big.NewInt(0), nil
	}

	return new(big.Int).Binomial(int64(n), int64(k)), nil
}
