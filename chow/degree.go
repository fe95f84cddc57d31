// Package chow: degree functions. The geometric degree of a monomial is a
// Kostka number; the arithmetic degree follows Tamvakis's formula, a signed
// sum of Kostka numbers weighted by harmonic-number differences.

package chow

import (
	"math/big"
	"sort"

	"github.com/arithgeo/hodgeriemann/tableaux"
)

// Triple indexes one term of the arithmetic-degree sum: row pivot H with
// harmonic bounds I < J.
type Triple struct {
	I, J, H int
}

// Aux carries the per-(m,n) tables shared across many degree evaluations:
// the exact harmonic numbers and the finite triple index set of the
// arithmetic formula. Building Aux once per invocation and passing it to
// every degree call avoids recomputing both tables per vector.
type Aux struct {
	M, N int

	// Harmonics holds H_0..H_{m+n} as exact rationals.
	Harmonics []*big.Rat

	// Triples is the index set {(i,j,h) : 0 ≤ i < j ≤ n, 1 ≤ h ≤ m} in a
	// fixed (i, j, h) lexicographic order.
	Triples []Triple
}

// NewAux precomputes the auxiliary tables for bounds (m, n).
// Degenerate bounds yield empty tables, matching the enumerator's policy.
func NewAux(m, n int) (*Aux, error) {
	aux := &Aux{M: m, N: n}
	if m < 0 || n < 0 {
		aux.Harmonics = []*big.Rat{new(big.Rat)}

		return aux, nil
	}

	hs, err := tableaux.Harmonics(m + n)
	if err != nil {
		return nil, err
	}
	aux.Harmonics = hs

	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			for h := 1; h <= m; h++ {
				aux.Triples = append(aux.Triples, Triple{I: i, J: j, H: h})
			}
		}
	}

	return aux, nil
}

// content converts v into the multiplicity vector of its partition
// μ(v) = (i repeated v_i times, largest first): entry j of a tableau
// occurs content[j-1] = μ_j times, and Σ content = weight(v).
func content(v Vector) []int {
	var parts []int
	for i := len(v); i >= 1; i-- {
		for c := 0; c < v[i-1]; c++ {
			parts = append(parts, i)
		}
	}

	return parts
}

// GeometricDegree evaluates the geometric degree of the monomial x^v: the
// Kostka number of the n-column rectangle with weight(v)/n rows against
// content μ(v). By the Pieri rule this counts the ways to build the
// rectangle from horizontal strips of the sizes prescribed by v, which is
// the intersection number of the corresponding special classes.
//
// Errors:
//   - ErrWeightNotMultiple when weight(v) is not divisible by len(v):
//     the caller's grading bookkeeping is broken.
//
// The aux parameter may be nil; it is accepted for signature symmetry with
// ArithmeticDegree and future shared caching.
func GeometricDegree(v Vector, aux *Aux) (*big.Rat, error) {
	n := len(v)
	if n == 0 {
		// The n = 0 ring has a single class of degree 1.
		return big.NewRat(1, 1), nil
	}
	_ = aux
	w := v.Weight()
	if w%n != 0 {
		return nil, ErrWeightNotMultiple
	}

	shape := tableaux.Rectangle(w/n, n)
	k, err := tableaux.Kostka(shape, content(v))
	if err != nil {
		return nil, err
	}

	return new(big.Rat).SetInt(k), nil
}

// ArithmeticDegree evaluates the arithmetic degree of x^v in the extended
// ring, per Tamvakis's formula: one distinguished rectangle-plus-box
// Kostka term plus a signed sum over the precomputed triple set of Kostka
// numbers weighted by harmonic differences H_j − H_i, all divided by 2.
//
// Preconditions: weight(v) ≡ 1 (mod len(v)), else ErrWeightNotCongruent.
// aux must be built for matching bounds when provided; a nil aux is
// computed on the fly (callers on the hot path should precompute).
func ArithmeticDegree(v Vector, aux *Aux) (*big.Rat, error) {
	n := len(v)
	if n == 0 {
		return nil, ErrEmptyVector
	}
	w := v.Weight()
	if (w-1)%n != 0 {
		return nil, ErrWeightNotCongruent
	}

	rows := (w - 1) / n
	if aux == nil {
		fresh, err := NewAux(rows, n)
		if err != nil {
			return nil, err
		}
		aux = fresh
	} else if aux.N != n || aux.M != rows {
		// The triple set is sized by M, so a smaller aux would silently
		// truncate the sum rather than fail.
		return nil, ErrAuxMismatch
	}

	mu := content(v)

	// Distinguished term: the rectangle-plus-box shape.
	base, err := tableaux.Kostka(arithShape(rows, n, 0), mu)
	if err != nil {
		return nil, err
	}

	total := new(big.Rat).SetInt(base)
	term := new(big.Rat)
	diff := new(big.Rat)
	for _, t := range aux.Triples {
		shape := arithShape(rows, n, t.J-t.I)
		k, err := tableaux.Kostka(shape, mu)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 {
			continue
		}
		if t.J >= len(aux.Harmonics) {
			return nil, ErrAuxMismatch
		}
		diff.Sub(aux.Harmonics[t.J], aux.Harmonics[t.I])
		term.SetInt(k)
		term.Mul(term, diff)
		// Sign alternates with the row pivot h, positive first.
		if t.H%2 == 0 {
			total.Sub(total, term)
		} else {
			total.Add(total, term)
		}
	}

	return total.Quo(total, big.NewRat(2, 1)), nil
}

// arithShape builds the partition attached to a term of the arithmetic
// sum: the rectangle-plus-box shape (n^rows, 1) with a strip of d boxes
// moved from the last full row to the first. d = 0 is the distinguished
// shape itself. Rows with fewer than two full rows cannot donate a strip
// and fall back to the distinguished shape.
func arithShape(rows, n, d int) tableaux.Partition {
	if d <= 0 || rows < 2 || d > n {
		parts := make([]int, 0, rows+1)
		for r := 0; r < rows; r++ {
			parts = append(parts, n)
		}
		parts = append(parts, 1)

		return tableaux.Partition(parts)
	}

	parts := make([]int, 0, rows+1)
	parts = append(parts, n+d)
	for r := 0; r < rows-2; r++ {
		parts = append(parts, n)
	}
	if n-d > 0 {
		parts = append(parts, n-d)
	}
	parts = append(parts, 1)
	sort.Sort(sort.Reverse(sort.IntSlice(parts)))

	return tableaux.Partition(parts)
}

// GeometricDegreeTable evaluates the geometric degree of every pooled
// vector, in pool order. Each pooled vector is evaluated exactly once;
// this table is the memoization layer the pool exists for.
func GeometricDegreeTable(pool *Pool, aux *Aux) (DegreeTable, error) {
	table := make(DegreeTable, pool.Len())
	for i := range table {
		v, err := pool.Vector(i)
		if err != nil {
			return nil, err
		}
		d, err := GeometricDegree(v, aux)
		if err != nil {
			return nil, err
		}
		table[i] = d
	}

	return table, nil
}

// ArithmeticDegreeTable evaluates the arithmetic degree of every pooled
// vector, in pool order.
func ArithmeticDegreeTable(pool *Pool, aux *Aux) (DegreeTable, error) {
	table := make(DegreeTable, pool.Len())
	for i := range table {
		v, err := pool.Vector(i)
		if err != nil {
			return nil, err
		}
		d, err := ArithmeticDegree(v, aux)
		if err != nil {
			return nil, err
		}
		table[i] = d
	}

	return table, nil
}
