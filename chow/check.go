// Package chow: end-to-end checkers. A run either produces a Report
// (pass or fail, with evidence) or an error when a structural
// precondition is violated. A failing relation is an outcome, not an
// error: the Report carries the offending grade and matrix.

package chow

import (
	"github.com/arithgeo/hodgeriemann/ratmat"
)

// Report is the outcome of one checker run over all (or capped) grades.
type Report struct {
	// M, N are the bounds the run was built for.
	M, N int

	// OK is true when every checked grade is non-singular with the
	// expected signature.
	OK bool

	// FailedGrade is the first grade that failed, -1 when OK.
	FailedGrade int

	// Singular is true when the failure was a degenerate form rather
	// than a signature mismatch.
	Singular bool

	// Dimensions is the graded dimension sequence of the ring.
	Dimensions []int

	// Expected and Actual are the signature sequences over the checked
	// grades; Actual stops at the failed grade on failure.
	Expected []int
	Actual   []int

	// Matrices holds the assembled pairing form per checked grade, kept
	// for diagnostics and for rendering failure evidence.
	Matrices []*ratmat.Dense
}

// checkForms runs the signature test over assembled forms against the
// expected sequence, fail-fast. Shared by both checkers.
func (r *Report) checkForms(forms []*ratmat.Dense, expected []int) error {
	r.OK = true
	r.FailedGrade = -1
	r.Matrices = forms
	r.Expected = expected

	for p, form := range forms {
		if form == nil {
			// Empty grade: nothing to pair, vacuously fine.
			r.Actual = append(r.Actual, 0)

			continue
		}
		sig, rank, err := ratmat.SignatureRank(form)
		if err != nil {
			return err
		}
		if rank < form.Rows() {
			r.OK = false
			r.FailedGrade = p
			r.Singular = true

			return nil
		}
		r.Actual = append(r.Actual, sig)
		if p < len(expected) && sig != expected[p] {
			r.OK = false
			r.FailedGrade = p

			return nil
		}
	}

	return nil
}

// CheckGeometric verifies the Hodge–Riemann signature pattern of the
// geometric ring with bounds (m, n): for every grade p ≤ ⌊mn/2⌋ the
// top-degree pairing form must be non-singular with signature
// Σ_{q≤p} (−1)^q (d_q − d_{q−1}).
//
// Implementation stages:
//  1. Enumerate the graded basis and build the pairing index tables.
//  2. Evaluate each distinct combined vector's degree once (pooled).
//  3. Assemble each grade's form as an exact rational matrix.
//  4. Diagonalize by congruence and compare signatures, fail-fast.
//
// Returns a Report describing pass or failure; returns an error only when
// a structural invariant breaks (a precondition violation upstream).
// Determinism: fixed enumeration and pivot orders make repeated runs
// byte-identical. Complexity is dominated by the Kostka evaluations.
func CheckGeometric(m, n int, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	r := &Report{M: m, N: n, FailedGrade: -1, OK: true}

	gp, err := BuildGeometricPairings(m, n)
	if err != nil {
		return nil, err
	}
	dims, err := GeometricDimensions(m, n)
	if err != nil {
		return nil, err
	}
	r.Dimensions = dims

	forms, err := AssembleGeometric(gp)
	if err != nil {
		return nil, err
	}
	if o.MaxGrade != DefaultMaxGrade && o.MaxGrade+1 < len(forms) {
		forms = forms[:o.MaxGrade+1]
	}

	expected := ExpectedSignatures(dims, len(forms))
	if err := r.checkForms(forms, expected); err != nil {
		return nil, err
	}

	return r, nil
}

// CheckArithmetic verifies the signature pattern of the extended ring:
// for every grade p ≤ ⌊(mn+1)/2⌋ the assembled block form (arithmetic
// self-pairing plus geometric cross-pairing, oriented by (−1)^p) must be
// non-singular with the signature derived from the (1+t)-extended
// dimension sequence.
//
// The aux tables are built once per run unless supplied via WithAux.
func CheckArithmetic(m, n int, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	r := &Report{M: m, N: n, FailedGrade: -1, OK: true}

	ap, err := BuildArithmeticPairings(m, n)
	if err != nil {
		return nil, err
	}
	dims, err := ArithmeticDimensions(m, n)
	if err != nil {
		return nil, err
	}
	r.Dimensions = dims

	aux := o.Aux
	if aux == nil {
		aux, err = NewAux(m, n)
		if err != nil {
			return nil, err
		}
	} else if aux.M != m || aux.N != n {
		return nil, ErrAuxMismatch
	}

	forms, err := AssembleArithmetic(ap, aux)
	if err != nil {
		return nil, err
	}
	if o.MaxGrade != DefaultMaxGrade && o.MaxGrade+1 < len(forms) {
		forms = forms[:o.MaxGrade+1]
	}

	expected := ExpectedSignatures(dims, len(forms))
	if err := r.checkForms(forms, expected); err != nil {
		return nil, err
	}

	return r, nil
}
