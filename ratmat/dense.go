// SPDX-License-Identifier: MIT
// Package ratmat: Dense is a concrete, row-major matrix of *big.Rat values,
// storing entries in a flat slice for cache friendliness. Entries are
// defensively copied on Set and At so no caller can alias internal state.

package ratmat

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c non-nil *big.Rat entries in
// row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, entries non-nil
}

// NewDense creates an r×c Dense matrix initialized to exact zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice of fresh zero Rats.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// The returned Rat is independent of internal storage; mutating it does not
// change the matrix.
// Complexity: O(1) plus one Rat copy.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	if m == nil {
		return nil, denseErrorf("At", row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
// Stage 1 (Validate): non-nil receiver and entry, bounds check.
// Stage 2 (Execute): copy v into backing storage.
// Complexity: O(1) plus one Rat copy.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if m == nil {
		return denseErrorf("Set", row, col, ErrNilMatrix)
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy. Complexity: O(r*c) Rat copies.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports exact entry-wise equality of two matrices of the same shape.
// Matrices of different shapes are unequal; two nil matrices are equal.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(other.data[i]) != 0 {
			return false
		}
	}

	return true
}

// Transpose returns a freshly allocated mᵀ. The receiver is not mutated.
// Determinism: fixed i→j copy order. Complexity: O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i].Set(m.data[base+j])
		}
	}

	return out, nil
}

// Scale returns a freshly allocated alpha*m. The receiver is not mutated.
// A nil alpha is rejected with ErrNilEntry. Complexity: O(r*c).
func (m *Dense) Scale(alpha *big.Rat) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	if alpha == nil {
		return nil, fmt.Errorf("Scale: %w", ErrNilEntry)
	}
	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	for i := range m.data {
		out.data[i].Mul(m.data[i], alpha)
	}

	return out, nil
}

// String implements fmt.Stringer for debugging and failure reports.
// Entries render via Rat.RatString (e.g. "3/2", "1").
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].RatString())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
