// SPDX-License-Identifier: MIT
// Package ratmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package ratmat

import "errors"

// Every message is prefixed with "ratmat: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("Op: %w", ErrX) at the
// facade when context is essential; callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("ratmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("ratmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. block assembly with misaligned borders.
	ErrDimensionMismatch = errors.New("ratmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("ratmat: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	// Equality is exact; there is no epsilon policy over big.Rat.
	ErrAsymmetry = errors.New("ratmat: matrix is not symmetric")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("ratmat: nil matrix")

	// ErrNilEntry indicates that a nil *big.Rat value was supplied to Set.
	ErrNilEntry = errors.New("ratmat: nil entry")
)
