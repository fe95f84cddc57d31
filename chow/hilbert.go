// Package chow: Hilbert series of the graded ring and the expected
// signature sequence derived from it.

package chow

// GeometricDimensions returns the graded dimensions d_0..d_{mn} of the
// geometric ring, the coefficients of the Gaussian binomial
//
//	∏_{i=1..n} (1 − t^{m+i}) / (1 − t^i).
//
// The product telescopes to an exact integer polynomial; the quotient is
// taken factor by factor so intermediate results stay polynomial.
// The total Σ d_p equals C(m+n, n). Degenerate bounds yield nil.
func GeometricDimensions(m, n int) ([]int, error) {
	if m < 0 || n < 0 {
		return nil, nil
	}

	num := polyOne()
	for i := 1; i <= n; i++ {
		num = num.mul(oneMinusT(m + i))
	}
	for i := 1; i <= n; i++ {
		q, err := num.exactDiv(oneMinusT(i))
		if err != nil {
			return nil, err
		}
		num = q
	}

	dims := make([]int, m*n+1)
	for p := range dims {
		dims[p] = num.coeff(p)
	}

	return dims, nil
}

// ArithmeticDimensions returns the graded dimensions of the extended ring,
// the geometric series multiplied by (1 + t): each arithmetic grade is the
// sum of two consecutive geometric grades. The sequence has mn+2 entries.
func ArithmeticDimensions(m, n int) ([]int, error) {
	geo, err := GeometricDimensions(m, n)
	if err != nil || geo == nil {
		return nil, err
	}

	dims := make([]int, len(geo)+1)
	for p := range dims {
		if p < len(geo) {
			dims[p] += geo[p]
		}
		if p > 0 {
			dims[p] += geo[p-1]
		}
	}

	return dims, nil
}

// ExpectedSignatures converts a graded dimension sequence into the
// signature each primitive-decomposition pairing form must have:
//
//	s_p = Σ_{q=0..p} (−1)^q (d_q − d_{q−1}),  d_{−1} = 0.
//
// The sequence covers grades 0..⌊len(dims)−1⌋/2 in the unimodal range,
// but it is returned for every requested grade so callers slice what the
// pairing family actually covers. s_0 is always d_0.
func ExpectedSignatures(dims []int, grades int) []int {
	out := make([]int, grades)
	prev := 0
	acc := 0
	for p := 0; p < grades; p++ {
		d := 0
		if p < len(dims) {
			d = dims[p]
		}
		delta := d - prev
		if p%2 == 0 {
			acc += delta
		} else {
			acc -= delta
		}
		out[p] = acc
		prev = d
	}

	return out
}
