// SPDX-License-Identifier: MIT

// Package ratmat provides exact dense linear algebra over big.Rat for the
// bilinear-form stage of the Hodge–Riemann checker.
//
// 🚀 Why exact?
//
//	The conjecture check compares integer signatures of symmetric matrices
//	whose entries are exact rational degrees. Floating-point eigenvalue
//	routines can misclassify a tiny eigenvalue near zero; congruence
//	elimination over big.Rat cannot. Signature and rank are computed by
//	Sylvester's law of inertia: a symmetric matrix is congruent to a
//	diagonal one, and the signs of the diagonal are invariant.
//
// ✨ Key features:
//   - row-major Dense storage of *big.Rat (flat backing slice)
//   - exact signature + rank via symmetric congruence elimination
//   - deterministic pivot scan (fixed order, no data-dependent tie-breaks)
//   - symmetric 2×2 block assembly for the arithmetic form
//   - sentinel errors, errors.Is-friendly, no panics on user input
//
// ⚙️ Usage:
//
//	m, _ := ratmat.NewDense(2, 2)
//	_ = m.Set(0, 0, big.NewRat(1, 1))
//	_ = m.Set(1, 1, big.NewRat(-1, 2))
//	sig, rank, err := ratmat.SignatureRank(m)
//	// sig = 0, rank = 2
//
// Complexity: SignatureRank is O(n³) big.Rat operations, O(n²) memory.
package ratmat
