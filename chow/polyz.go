// Package chow: minimal integer-polynomial arithmetic backing the
// Hilbert-series computation. Coefficients are plain ints in ascending
// power order; all products and quotients stay exact.

package chow

import "errors"

// ErrInexactDivision is returned by exactDiv when the divisor does not
// divide the dividend without remainder. The Hilbert-series quotients are
// exact by construction, so hitting this sentinel means a caller bug.
var ErrInexactDivision = errors.New("chow: polynomial division has a remainder")

// intPoly is a dense integer polynomial, coefficient of t^i at index i.
// The zero-length slice is the zero polynomial.
//
// Coefficients are machine ints: the largest value ever held is the central
// Gaussian-binomial coefficient, which stays below 2^63 for total degree
// m·n up to roughly 70. Degree evaluation is combinatorially infeasible
// long before that bound, so int is safe for every reachable input.
type intPoly []int

// polyOne returns the constant polynomial 1.
func polyOne() intPoly { return intPoly{1} }

// oneMinusT returns 1 − t^k.
func oneMinusT(k int) intPoly {
	p := make(intPoly, k+1)
	p[0] = 1
	p[k] = -1

	return p
}

// mul returns the product p·q.
func (p intPoly) mul(q intPoly) intPoly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make(intPoly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}

	return out
}

// exactDiv returns the quotient p/q, requiring a zero remainder and a
// divisor with leading coefficient ±1. Long division from the top degree.
func (p intPoly) exactDiv(q intPoly) (intPoly, error) {
	for len(q) > 0 && q[len(q)-1] == 0 {
		q = q[:len(q)-1]
	}
	if len(q) == 0 {
		return nil, ErrInexactDivision
	}
	lead := q[len(q)-1]
	if lead != 1 && lead != -1 {
		return nil, ErrInexactDivision
	}

	rem := make(intPoly, len(p))
	copy(rem, p)
	if len(rem) < len(q) {
		for _, c := range rem {
			if c != 0 {
				return nil, ErrInexactDivision
			}
		}

		return nil, nil
	}

	quot := make(intPoly, len(rem)-len(q)+1)
	for d := len(rem) - 1; d >= len(q)-1; d-- {
		c := rem[d]
		if c == 0 {
			continue
		}
		f := c / lead
		quot[d-len(q)+1] = f
		for j, b := range q {
			rem[d-len(q)+1+j] -= f * b
		}
	}
	for _, c := range rem {
		if c != 0 {
			return nil, ErrInexactDivision
		}
	}

	return quot, nil
}

// coeff returns the coefficient of t^d, zero beyond the stored degree.
func (p intPoly) coeff(d int) int {
	if d < 0 || d >= len(p) {
		return 0
	}

	return p[d]
}
