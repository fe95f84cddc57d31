// Package hodgeriemann is an exact-arithmetic toolkit for checking the
// Hodge–Riemann bilinear relations on Chow rings of Grassmannians: both the
// geometric ring of G(m,n) and its arithmetic (extended) counterpart.
//
// 🚀 What does it do?
//
//	Given bounds (m, n), the pipeline enumerates the monomial basis of the
//	graded ring, builds the per-grade pairing tables against a deduplicated
//	vector pool, evaluates geometric degrees (Kostka numbers) and arithmetic
//	degrees (Tamvakis-style harmonic/Kostka sums), assembles the bilinear-form
//	matrices, and compares their exact signatures against the sequence
//	predicted by the ring's Hilbert series.
//
// ✨ Why this library?
//
//   - Exact everywhere – big.Rat entries, congruence-based inertia, no floats
//   - Deterministic – fixed enumeration and pivot orders, reproducible pools
//   - Pure Go – no cgo, no CAS dependency
//   - Inspectable – every assembled matrix is returned for post-mortem
//
// Everything is organized under three subpackages plus a CLI:
//
//	tableaux/ - partitions, Kostka numbers, harmonic numbers
//	ratmat/   - exact dense rational matrices, signature & rank
//	chow/     - basis enumeration, pairings, degrees, the conjecture checker
//	cmd/      - the hodgeriemann command (checks + HTML charts)
//
// Quick start:
//
//	rep, err := chow.CheckGeometric(2, 2)
//	if err != nil { ... }
//	fmt.Println("Hodge–Riemann holds:", rep.OK)
//
//	go get github.com/arithgeo/hodgeriemann
package hodgeriemann
