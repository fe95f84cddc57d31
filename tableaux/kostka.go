package tableaux

import (
	"math/big"
	"strconv"
	"strings"
)

// Kostka returns the Kostka number K(shape, content): the count of
// semistandard Young tableaux of the given shape in which entry j occurs
// content[j-1] times.
//
// Implementation:
//   - Stage 1: validate shape and content; mismatched totals are a
//     bookkeeping error upstream and return ErrContentMismatch.
//   - Stage 2: peel the largest entry as a horizontal strip. The cells
//     holding the maximal value of any SSYT form a horizontal strip at the
//     rim, so K(λ, c_1..c_k) = Σ_ν K(ν, c_1..c_{k-1}) over all ν ⊆ λ with
//     λ/ν a horizontal strip of size c_k. States are memoized on
//     (sub-shape, remaining content length).
//
// Inputs:
//   - shape: a valid Partition (trailing zeros allowed).
//   - content: multiplicities of entries 1..len(content); zeros allowed.
//
// Returns:
//   - *big.Int: the exact count (0 is a legitimate value).
//
// Errors:
//   - ErrBadPartition, ErrNegativeContent, ErrContentMismatch.
//
// Determinism:
//   - Fixed row-by-row strip enumeration; identical inputs produce
//     identical memo traversal.
//
// Complexity:
//   - One memo state per (reachable sub-shape, content prefix); each state
//     enumerates horizontal strips row by row.
func Kostka(shape Partition, content []int) (*big.Int, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	total := 0
	for _, c := range content {
		if c < 0 {
			return nil, ErrNegativeContent
		}
		total += c
	}
	if total != shape.Size() {
		return nil, ErrContentMismatch
	}

	ev := &kostkaEvaluator{
		content: content,
		memo:    make(map[string]*big.Int),
	}

	return ev.count(shape.Normalize(), len(content)), nil
}

// kostkaEvaluator holds one evaluation's memo table. A fresh evaluator per
// call keeps the package free of global state; callers that need cross-call
// sharing hold the pooled degrees upstream (see package chow).
type kostkaEvaluator struct {
	content []int
	memo    map[string]*big.Int
}

// count returns K(shape, content[:k]) with memoization.
func (e *kostkaEvaluator) count(shape Partition, k int) *big.Int {
	// Skip trailing zero multiplicities: they contribute nothing.
	for k > 0 && e.content[k-1] == 0 {
		k--
	}
	if k == 0 {
		if shape.Size() == 0 {
			return big.NewInt(1)
		}

		return big.NewInt(0)
	}

	key := stateKey(shape, k)
	if v, ok := e.memo[key]; ok {
		return v
	}

	strip := e.content[k-1]
	sum := big.NewInt(0)
	// Enumerate all ν ⊆ shape with shape/ν a horizontal strip of size
	// `strip`: row i of ν ranges over [max(shape[i+1], shape[i]-budget),
	// shape[i]], visited top row first.
	e.strips(shape, 0, strip, shape.Clone(), func(inner Partition) {
		sum.Add(sum, e.count(inner.Normalize(), k-1))
	})

	e.memo[key] = sum

	return sum
}

// strips enumerates the inner shapes row by row. `row` is the row being
// decided, `budget` the number of boxes still to remove, and `acc` the
// partially built inner shape (mutated in place, restored on backtrack).
func (e *kostkaEvaluator) strips(shape Partition, row, budget int, acc Partition, emit func(Partition)) {
	if row == len(shape) {
		if budget == 0 {
			emit(acc)
		}

		return
	}

	// Horizontal strip condition: ν_i ≥ λ_{i+1}; at most λ_i − λ_{i+1}
	// boxes may leave row i.
	lower := 0
	if row+1 < len(shape) {
		lower = shape[row+1]
	}
	maxRemove := shape[row] - lower
	if maxRemove > budget {
		maxRemove = budget
	}
	for remove := 0; remove <= maxRemove; remove++ {
		acc[row] = shape[row] - remove
		e.strips(shape, row+1, budget-remove, acc, emit)
	}
	acc[row] = shape[row]
}

// stateKey serializes a memo state. Shapes stay small (≤ m·n rows), so a
// string key keeps the table simple and collision-free.
func stateKey(shape Partition, k int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(k))
	for _, part := range shape {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(part))
	}

	return b.String()
}
