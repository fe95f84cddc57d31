// Package tableaux: sentinel error set.
// All public functions return these sentinels and tests check them via
// errors.Is. No routine panics on user-triggered conditions.

package tableaux

import "errors"

var (
	// ErrBadPartition is returned when a shape has a negative part or its
	// parts are not weakly decreasing.
	ErrBadPartition = errors.New("tableaux: invalid partition")

	// ErrNegativeContent is returned when a content vector carries a
	// negative multiplicity.
	ErrNegativeContent = errors.New("tableaux: negative content multiplicity")

	// ErrContentMismatch is returned when the total content does not equal
	// the size of the shape; no tableau can exist and the request indicates
	// a bookkeeping bug upstream.
	ErrContentMismatch = errors.New("tableaux: content size does not match shape size")

	// ErrBadBound is returned when a non-negative bound was required
	// (harmonic or binomial index) but a negative one was supplied.
	ErrBadBound = errors.New("tableaux: bound must be non-negative")
)
