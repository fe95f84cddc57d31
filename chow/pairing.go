// Package chow: pairing-index construction. Matrices store pool indices,
// not degrees, so each distinct combined vector is degree-evaluated once.

package chow

// GeometricPairings holds the per-grade symmetric index matrices of the
// geometric top-degree pairing and the shared vector pool behind them.
type GeometricPairings struct {
	M, N int

	// Basis is the graded basis the matrices are indexed by.
	Basis [][]Vector

	// Grades[p] is the |B[p]|×|B[p]| symmetric matrix of pool indices for
	// grades p = 0..⌊mn/2⌋.
	Grades []IndexMatrix

	// Pool is shared by all grades.
	Pool *Pool
}

// BuildGeometricPairings constructs, for each grade p up to ⌊mn/2⌋, the
// symmetric table of pool indices for v_i + v_j + (mn−2p)·e₁.
//
// Only the unordered pairs i ≤ j are combined; the index is recorded at
// (i,j) and (j,i), which makes symmetry a construction invariant rather
// than a property to verify.
//
// Degenerate bounds yield an empty structure with a fresh empty pool.
func BuildGeometricPairings(m, n int) (*GeometricPairings, error) {
	out := &GeometricPairings{M: m, N: n, Pool: NewPool()}
	if m < 0 || n < 0 {
		return out, nil
	}

	out.Basis = EnumerateBasis(m, n)
	top := m * n
	for p := 0; p <= top/2; p++ {
		basis := out.Basis[p]
		size := len(basis)
		mat := make(IndexMatrix, size)
		for i := range mat {
			mat[i] = make([]int, size)
		}
		offset := top - 2*p
		for i := 0; i < size; i++ {
			for j := i; j < size; j++ {
				combined, err := basis[i].Combine(basis[j], offset)
				if err != nil {
					return nil, err
				}
				idx := out.Pool.Add(combined)
				mat[i][j] = idx
				mat[j][i] = idx
			}
		}
		out.Grades = append(out.Grades, mat)
	}

	return out, nil
}

// ArithmeticPairings holds the two pairing families of the arithmetic
// (extended) ring: the top-degree self-pairing of each grade and the
// cross-pairing of grade p against grade p−1, which represents the
// auxiliary generator. Each family has its own pool: self-pairing vectors
// have weight mn+1 (arithmetic degrees), cross-pairing vectors have weight
// mn (geometric degrees).
type ArithmeticPairings struct {
	M, N int

	Basis [][]Vector

	// Self[p] is |B[p]|×|B[p]| for p = 0..⌊(mn+1)/2⌋.
	Self []IndexMatrix

	// Cross[p] is |B[p]|×|B[p−1]|; Cross[0] is nil (no grade −1).
	Cross []IndexMatrix

	SelfPool  *Pool
	CrossPool *Pool
}

// BuildArithmeticPairings constructs the arithmetic pairing tables with
// offset (mn+1−2p)·e₁. Grades run to ⌊(mn+1)/2⌋ so every offset stays
// non-negative. Rings with n = 0 have no auxiliary generator and yield an
// empty structure.
func BuildArithmeticPairings(m, n int) (*ArithmeticPairings, error) {
	out := &ArithmeticPairings{M: m, N: n, SelfPool: NewPool(), CrossPool: NewPool()}
	if m < 0 || n <= 0 {
		return out, nil
	}

	out.Basis = EnumerateBasis(m, n)
	top := m * n
	for p := 0; p <= (top+1)/2; p++ {
		basis := out.Basis[p]
		size := len(basis)
		offset := top + 1 - 2*p

		self := make(IndexMatrix, size)
		for i := range self {
			self[i] = make([]int, size)
		}
		for i := 0; i < size; i++ {
			for j := i; j < size; j++ {
				combined, err := basis[i].Combine(basis[j], offset)
				if err != nil {
					return nil, err
				}
				idx := out.SelfPool.Add(combined)
				self[i][j] = idx
				self[j][i] = idx
			}
		}
		out.Self = append(out.Self, self)

		if p == 0 {
			out.Cross = append(out.Cross, nil)

			continue
		}
		prev := out.Basis[p-1]
		cross := make(IndexMatrix, size)
		for i := range cross {
			cross[i] = make([]int, len(prev))
		}
		for i := 0; i < size; i++ {
			for j := 0; j < len(prev); j++ {
				combined, err := basis[i].Combine(prev[j], offset)
				if err != nil {
					return nil, err
				}
				cross[i][j] = out.CrossPool.Add(combined)
			}
		}
		out.Cross = append(out.Cross, cross)
	}

	return out, nil
}
