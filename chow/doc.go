// Package chow implements the Hodge–Riemann conjecture checker for Chow
// rings of Grassmannians G(m,n), in both the geometric and the arithmetic
// (extended) grading.
//
// 🚀 The pipeline:
//
//  1. Basis enumeration: exponent vectors with coordinate sum ≤ m,
//     partitioned by weight Σ i·v_i (EnumerateBasis).
//  2. Pairing-index construction: per weight grade, the symmetric table of
//     pool indices for v_i + v_j + offset·e₁ against a deduplicated vector
//     pool (BuildGeometricPairings, BuildArithmeticPairings).
//  3. Degree evaluation: geometric degrees are Kostka numbers of a
//     rectangle; arithmetic degrees follow Tamvakis's signed
//     harmonic/Kostka sum (GeometricDegree, ArithmeticDegree). The pool
//     guarantees each degree is computed exactly once.
//  4. Bilinear-form assembly: pool indices are replaced by degrees; the
//     arithmetic case builds the (−1)^p-signed symmetric 2×2 block
//     (AssembleGeometric, AssembleArithmetic).
//  5. Signature check: exact signatures of the assembled forms are
//     compared against the sequence predicted by the ring's Hilbert series
//     (CheckGeometric, CheckArithmetic).
//
// ✨ Guarantees:
//   - deterministic: fixed enumeration order, reproducible pools and
//     matrices for identical (m, n)
//   - exact: all degrees and signatures are big.Rat / big.Int computations
//   - inspectable: every assembled matrix is returned in the Report
//
// ⚙️ Usage:
//
//	rep, err := chow.CheckGeometric(2, 2)
//	if err != nil {
//	    // programmer error (grading bookkeeping), not a failed conjecture
//	}
//	if !rep.OK {
//	    fmt.Println("failing grade:", rep.FailedGrade)
//	}
//
// A singular bilinear form is a reportable outcome (Report.OK=false with
// the offending matrix attached), never an error. Errors are reserved for
// grading preconditions, which indicate bugs upstream.
package chow
