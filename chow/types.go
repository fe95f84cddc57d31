// Package chow: core data model. Weight-graded vectors, the deduplicated
// vector pool, and the index/degree tables built over it; the graded ring
// itself is described in doc.go.

package chow

import (
	"math/big"
	"strconv"
	"strings"
)

// Vector is a fixed-length sequence of non-negative integers, the exponent
// vector of a monomial in the special classes x_1..x_n. Vectors are
// immutable by convention once produced; Combine and Clone always allocate.
type Vector []int

// Weight returns the graded weight Σ i·v_i (1-based positions).
func (v Vector) Weight() int {
	w := 0
	for i, e := range v {
		w += (i + 1) * e
	}

	return w
}

// Sum returns the coordinate sum Σ v_i (the total degree bound).
func (v Vector) Sum() int {
	s := 0
	for _, e := range v {
		s += e
	}

	return s
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Combine returns v + w + k·e₁ as a fresh vector. Both operands must have
// the same length; k is the multiplicity of the unit vector in the first
// coordinate (the hyperplane-power offset of the pairing).
func (v Vector) Combine(w Vector, k int) (Vector, error) {
	if len(v) != len(w) {
		return nil, ErrLengthMismatch
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	if len(out) > 0 {
		out[0] += k
	}

	return out, nil
}

// Key returns a canonical string identity for map lookups in the pool.
func (v Vector) Key() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}

	return b.String()
}

// Pool is an append-only, deduplicated list of vectors. A vector's identity
// is its first-seen index; the pool never stores the same value twice.
// The pool exists so that each expensive degree evaluation is shared across
// every matrix entry that references the same combined vector.
type Pool struct {
	vectors []Vector
	index   map[string]int
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{index: make(map[string]int)}
}

// Add returns the pool index of v, appending a clone on first sight.
func (p *Pool) Add(v Vector) int {
	key := v.Key()
	if idx, ok := p.index[key]; ok {
		return idx
	}
	idx := len(p.vectors)
	p.vectors = append(p.vectors, v.Clone())
	p.index[key] = idx

	return idx
}

// Len returns the number of distinct vectors seen so far.
func (p *Pool) Len() int { return len(p.vectors) }

// Vector returns the pooled vector at index i.
func (p *Pool) Vector(i int) (Vector, error) {
	if i < 0 || i >= len(p.vectors) {
		return nil, ErrPoolIndex
	}

	return p.vectors[i], nil
}

// IndexMatrix is a rectangular table of pool indices: entry (i,j) names the
// pooled vector produced by combining basis elements i and j of the grade.
type IndexMatrix [][]int

// DegreeTable maps pool indices to exact rational degrees, parallel to the
// pool's vector list.
type DegreeTable []*big.Rat
