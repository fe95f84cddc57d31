// Package chow: monomial basis enumeration for the graded ring.

package chow

// EnumerateBasis lists all exponent vectors of length n with coordinate
// sum ≤ m, grouped by weight. The result has m·n+1 grades; grade p holds
// the vectors with Σ i·v_i = p in lexicographic order.
//
// The vectors of grade p are in bijection with the partitions of p fitting
// inside an n×m box, so Σ_p |B[p]| = C(m+n, n).
//
// Degenerate bounds (negative m or n) yield an empty result, not an error.
//
// Determinism: the DFS visits coordinates left to right with ascending
// exponents, so grade ordering is lexicographic and reproducible.
// Complexity: O(C(m+n, n)) vectors, each of length n.
func EnumerateBasis(m, n int) [][]Vector {
	if m < 0 || n < 0 {
		return nil
	}

	grades := make([][]Vector, m*n+1)
	acc := make(Vector, n)
	var walk func(pos, remaining, weight int)
	walk = func(pos, remaining, weight int) {
		if pos == n {
			grades[weight] = append(grades[weight], acc.Clone())

			return
		}
		for e := 0; e <= remaining; e++ {
			acc[pos] = e
			walk(pos+1, remaining-e, weight+(pos+1)*e)
		}
		acc[pos] = 0
	}
	walk(0, m, 0)

	return grades
}
