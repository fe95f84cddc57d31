// Package chow: assembly of the pairing forms as exact rational matrices.

package chow

import (
	"math/big"

	"github.com/arithgeo/hodgeriemann/ratmat"
)

// assembleFromIndices realizes an index matrix as a dense rational matrix
// by looking every entry up in the degree table.
func assembleFromIndices(idx IndexMatrix, degrees DegreeTable) (*ratmat.Dense, error) {
	rows := len(idx)
	if rows == 0 {
		return nil, nil
	}
	cols := len(idx[0])
	out, err := ratmat.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			k := idx[i][j]
			if k < 0 || k >= len(degrees) {
				return nil, ErrPoolIndex
			}
			if err := out.Set(i, j, degrees[k]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// AssembleGeometric realizes every graded pairing form of gp as a dense
// symmetric matrix of exact geometric degrees. Matrices[p] corresponds to
// gp.Grades[p]; empty grades yield nil entries.
func AssembleGeometric(gp *GeometricPairings) ([]*ratmat.Dense, error) {
	degrees, err := GeometricDegreeTable(gp.Pool, nil)
	if err != nil {
		return nil, err
	}

	out := make([]*ratmat.Dense, len(gp.Grades))
	for p, idx := range gp.Grades {
		m, err := assembleFromIndices(idx, degrees)
		if err != nil {
			return nil, err
		}
		out[p] = m
	}

	return out, nil
}

// AssembleArithmetic realizes every graded pairing form of the extended
// ring. Grade p pairs the extended basis B[p] ∪ ω·B[p−1] against itself;
// in that ordering the form is the 2×2 block matrix
//
//	(−1)^p · [ A     G/2 ]
//	         [ Gᵀ/2  0   ]
//
// where A is the arithmetic self-pairing of B[p] and G the geometric
// cross-pairing of B[p] against B[p−1]. Grade 0 has no ω block and
// degenerates to (−1)^0·A = A alone.
//
// The global sign (−1)^p folds the alternating orientation of the
// pairing into the matrix so expected signatures stay in one convention.
func AssembleArithmetic(ap *ArithmeticPairings, aux *Aux) ([]*ratmat.Dense, error) {
	selfDeg, err := ArithmeticDegreeTable(ap.SelfPool, aux)
	if err != nil {
		return nil, err
	}
	crossDeg, err := GeometricDegreeTable(ap.CrossPool, nil)
	if err != nil {
		return nil, err
	}

	half := big.NewRat(1, 2)
	out := make([]*ratmat.Dense, len(ap.Self))
	for p := range ap.Self {
		a, err := assembleFromIndices(ap.Self[p], selfDeg)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}

		var full *ratmat.Dense
		if p == 0 || ap.Cross[p] == nil {
			full = a
		} else {
			raw, err := assembleFromIndices(ap.Cross[p], crossDeg)
			if err != nil {
				return nil, err
			}
			g, err := raw.Scale(half)
			if err != nil {
				return nil, err
			}
			gt, err := g.Transpose()
			if err != nil {
				return nil, err
			}
			zero, err := ratmat.NewDense(gt.Rows(), g.Cols())
			if err != nil {
				return nil, err
			}
			full, err = ratmat.Block2x2(a, g, gt, zero)
			if err != nil {
				return nil, err
			}
		}

		if p%2 == 1 {
			flipped, err := full.Scale(big.NewRat(-1, 1))
			if err != nil {
				return nil, err
			}
			full = flipped
		}
		out[p] = full
	}

	return out, nil
}
