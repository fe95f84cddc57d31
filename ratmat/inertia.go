// SPDX-License-Identifier: MIT
// Package ratmat: exact inertia of symmetric rational matrices.

package ratmat

import (
	"fmt"
	"math/big"
)

const opSignature = "SignatureRank"

// SignatureRank computes the exact signature and rank of a symmetric
// matrix by symmetric congruence elimination (Lagrange reduction).
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m); clone into a working copy A.
//   - Stage 2: for k = 0..n-1, bring a usable pivot to position k:
//     the first j ≥ k with A[j,j] ≠ 0 in fixed scan order, or, when the
//     remaining diagonal is all zero, the first off-diagonal A[i,j] ≠ 0,
//     repaired into a diagonal pivot by the congruence row_i += row_j,
//     col_i += col_j (A[i,i] becomes 2·A[i,j] ≠ 0). If the remaining block
//     is entirely zero, elimination stops.
//   - Stage 3: record sign(A[k,k]), then clear column k below the pivot via
//     the symmetric update A ← E·A·Eᵀ.
//
// By Sylvester's law of inertia the pivot signs are congruence invariants,
// so signature = #positive − #negative pivots and rank = #pivots.
//
// Inputs:
//   - m: symmetric *Dense (exact symmetry required).
//
// Returns:
//   - sig:  signature (positive minus negative inertia index).
//   - rank: number of non-zero pivots; m is singular iff rank < n.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (wrapped with the op tag).
//
// Determinism:
//   - Fixed pivot scans (diagonal j↑, then upper triangle i→j); identical
//     inputs always take identical elimination paths.
//
// Complexity:
//   - Time O(n³) big.Rat operations, Space O(n²) for the working copy.
func SignatureRank(m *Dense) (sig, rank int, err error) {
	if err = ValidateSymmetric(m); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opSignature, err)
	}

	a := m.Clone()
	n := a.r

	var (
		pos, neg int
		factor   = new(big.Rat) // elimination multiplier A[i,k]/A[k,k]
		tmp      = new(big.Rat) // scratch for row updates
	)
	for k := 0; k < n; k++ {
		if !a.pivotTo(k) {
			break // remaining block is zero: no further rank
		}

		pivot := a.data[k*n+k]
		if pivot.Sign() > 0 {
			pos++
		} else {
			neg++
		}

		// Clear column k below the pivot with row operations. For a
		// symmetric A the trailing block of E·A·Eᵀ equals that of E·A, so
		// one-sided elimination keeps the block symmetric and the inertia
		// intact.
		for i := k + 1; i < n; i++ {
			if a.data[i*n+k].Sign() == 0 {
				continue
			}
			factor.Quo(a.data[i*n+k], pivot)
			for j := k; j < n; j++ {
				tmp.Mul(factor, a.data[k*n+j])
				a.data[i*n+j].Sub(a.data[i*n+j], tmp)
			}
		}
	}

	return pos - neg, pos + neg, nil
}

// IsSingular reports whether the symmetric matrix m is singular.
// Thin facade over SignatureRank; shares its validation and error surface.
func IsSingular(m *Dense) (bool, error) {
	_, rank, err := SignatureRank(m)
	if err != nil {
		return false, err
	}

	return rank < m.r, nil
}

// pivotTo places a non-zero diagonal pivot at position k of the working
// copy, using congruence transformations only. Reports false when the
// trailing block A[k:,k:] is identically zero.
func (m *Dense) pivotTo(k int) bool {
	n := m.r

	// Preferred: first non-zero diagonal entry at or after k.
	for j := k; j < n; j++ {
		if m.data[j*n+j].Sign() != 0 {
			if j != k {
				m.swapSym(k, j)
			}

			return true
		}
	}

	// All-zero diagonal: look for the first non-zero off-diagonal entry and
	// fold row/col j into row/col i, making A[i,i] = 2·A[i,j] ≠ 0.
	for i := k; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j].Sign() == 0 {
				continue
			}
			for t := 0; t < n; t++ {
				m.data[i*n+t].Add(m.data[i*n+t], m.data[j*n+t])
			}
			for t := 0; t < n; t++ {
				m.data[t*n+i].Add(m.data[t*n+i], m.data[t*n+j])
			}
			if i != k {
				m.swapSym(k, i)
			}

			return true
		}
	}

	return false
}

// swapSym exchanges rows a,b and columns a,b (a congruence by a permutation).
func (m *Dense) swapSym(a, b int) {
	n := m.r
	for t := 0; t < n; t++ {
		m.data[a*n+t], m.data[b*n+t] = m.data[b*n+t], m.data[a*n+t]
	}
	for t := 0; t < n; t++ {
		m.data[t*n+a], m.data[t*n+b] = m.data[t*n+b], m.data[t*n+a]
	}
}
