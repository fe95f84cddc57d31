// SPDX-License-Identifier: MIT
// Package ratmat: symmetric 2×2 block assembly.

package ratmat

import "fmt"

const opBlock = "Block2x2"

// Block2x2 assembles [[a, b], [bt, d]] into one Dense matrix.
//
// Border shapes must align: a(p×p'), b(p×q'), bt(q×p'), d(q×q'). The caller
// is responsible for bt being the transpose of b when a symmetric result is
// required; Block2x2 itself only enforces shapes.
//
// Errors:
//   - ErrNilMatrix when any quadrant is nil.
//   - ErrDimensionMismatch when borders misalign.
//
// Determinism: fixed quadrant copy order (a, b, bt, d).
// Complexity: O((p+q)·(p'+q')) Rat copies.
func Block2x2(a, b, bt, d *Dense) (*Dense, error) {
	for _, q := range []*Dense{a, b, bt, d} {
		if err := ValidateNotNil(q); err != nil {
			return nil, fmt.Errorf("%s: %w", opBlock, err)
		}
	}
	if a.r != b.r || bt.r != d.r || a.c != bt.c || b.c != d.c {
		return nil, fmt.Errorf("%s: %w", opBlock, ErrDimensionMismatch)
	}

	rows, cols := a.r+bt.r, a.c+b.c
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBlock, err)
	}

	copyQuadrant := func(src *Dense, rowOff, colOff int) {
		for i := 0; i < src.r; i++ {
			for j := 0; j < src.c; j++ {
				out.data[(rowOff+i)*cols+(colOff+j)].Set(src.data[i*src.c+j])
			}
		}
	}
	copyQuadrant(a, 0, 0)
	copyQuadrant(b, 0, a.c)
	copyQuadrant(bt, a.r, 0)
	copyQuadrant(d, a.r, a.c)

	return out, nil
}
