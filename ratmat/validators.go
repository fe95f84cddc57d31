// SPDX-License-Identifier: MIT
// Package ratmat: central validators shared by all kernels. Every public
// operation routes its precondition checks through these helpers so error
// priority stays consistent: nil -> shape -> symmetry.

package ratmat

// ValidateNotNil rejects a nil matrix.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare rejects nil and non-square matrices.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateSymmetric rejects nil, non-square and asymmetric matrices.
// Symmetry is exact: m[i,j] must equal m[j,i] as rationals.
// Determinism: fixed upper-triangle scan order i→j.
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j].Cmp(m.data[j*n+i]) != 0 {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
