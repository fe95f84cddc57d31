// Package tableaux provides the combinatorial backend for degree
// computations on Grassmannian Chow rings: integer partitions, Kostka
// numbers, harmonic numbers and binomial counts, all in exact arithmetic.
//
// 🚀 What is a Kostka number?
//
//	K(λ, μ) counts the semistandard Young tableaux of shape λ and content μ:
//	fillings of the Young diagram of λ with entry j appearing μ_j times,
//	weakly increasing along rows and strictly increasing down columns.
//	Kostka numbers are the degrees of monomials in special Schubert classes,
//	which is exactly how the checker in package chow consumes them.
//
// ✨ Key features:
//   - exact big.Int counting, no overflow at any (m, n)
//   - memoized horizontal-strip recursion (one cache per evaluation)
//   - exact big.Rat harmonic numbers H_0..H_k
//   - strict validation with package-level sentinel errors
//
// ⚙️ Usage:
//
//	import "github.com/arithgeo/hodgeriemann/tableaux"
//
//	shape := tableaux.Partition{2, 2}        // 2×2 square
//	k, err := tableaux.Kostka(shape, []int{2, 2})
//	// k = 1: the unique filling is row i ≡ i
//
// Complexity: the recursion visits one state per (sub-shape, content prefix)
// pair; memory is bounded by the memo table. All routines are
// single-threaded and allocation-light.
package tableaux
