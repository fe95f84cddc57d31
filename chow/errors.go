// Package chow: sentinel error set.
// All public functions return these sentinels and tests check them via
// errors.Is. Panics are reserved for nonsensical option constructor
// arguments (programmer error), mirroring the options policy in ratmat.

package chow

import "errors"

var (
	// ErrWeightNotMultiple is returned by GeometricDegree when the vector's
	// weight is not a multiple of its length. The grading bookkeeping
	// upstream is broken; the computation must abort.
	ErrWeightNotMultiple = errors.New("chow: weight is not a multiple of the vector length")

	// ErrWeightNotCongruent is returned by ArithmeticDegree when the
	// vector's weight is not ≡ 1 modulo its length.
	ErrWeightNotCongruent = errors.New("chow: weight is not congruent to 1 modulo the vector length")

	// ErrLengthMismatch is returned when two vectors of different lengths
	// are combined.
	ErrLengthMismatch = errors.New("chow: vector length mismatch")

	// ErrEmptyVector is returned when a degree is requested for a
	// zero-length vector of non-zero weight bookkeeping (n = 0 rings have a
	// single trivial class).
	ErrEmptyVector = errors.New("chow: empty vector")

	// ErrPoolIndex is returned when a pool lookup uses an index that was
	// never issued.
	ErrPoolIndex = errors.New("chow: pool index out of range")

	// ErrAuxMismatch is returned when a precomputed Aux table is used with
	// bounds it was not built for.
	ErrAuxMismatch = errors.New("chow: aux tables built for different bounds")
)
