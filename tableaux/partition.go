package tableaux

// Partition is a weakly decreasing sequence of non-negative integers.
// Trailing zeros are permitted and ignored by all routines; Normalize
// returns a copy with them stripped.
//
// The zero value (nil) is the empty partition.
type Partition []int

// Validate reports whether p is a well-formed partition.
//
// Returns:
//   - nil when every part is ≥ 0 and parts are weakly decreasing.
//   - ErrBadPartition otherwise.
//
// Complexity: Time O(len(p)), Space O(1).
func (p Partition) Validate() error {
	for i, part := range p {
		if part < 0 {
			return ErrBadPartition
		}
		if i > 0 && p[i-1] < part {
			return ErrBadPartition
		}
	}

	return nil
}

// Size returns the number of boxes |p| = Σ p_i.
func (p Partition) Size() int {
	total := 0
	for _, part := range p {
		total += part
	}

	return total
}

// Len returns the number of non-zero parts.
func (p Partition) Len() int {
	n := 0
	for _, part := range p {
		if part > 0 {
			n++
		}
	}

	return n
}

// Normalize returns a copy of p with trailing zero parts removed.
// The receiver is never mutated.
func (p Partition) Normalize() Partition {
	end := len(p)
	for end > 0 && p[end-1] == 0 {
		end--
	}
	out := make(Partition, end)
	copy(out, p[:end])

	return out
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	copy(out, p)

	return out
}

// Rectangle returns the partition with `rows` parts, each equal to `cols`.
// Both bounds must be ≥ 0; a zero bound yields the empty partition.
func Rectangle(rows, cols int) Partition {
	if rows <= 0 || cols <= 0 {
		return Partition{}
	}
	out := make(Partition, rows)
	for i := range out {
		out[i] = cols
	}

	return out
}

// Conjugate returns the transposed diagram p'.
// p'_j counts the parts of p that are ≥ j+1. The receiver is not mutated.
//
// Complexity: Time O(|p| rows), Space O(p_1).
func (p Partition) Conjugate() Partition {
	q := p.Normalize()
	if len(q) == 0 {
		return Partition{}
	}
	out := make(Partition, q[0])
	for j := range out {
		count := 0
		for _, part := range q {
			if part >= j+1 {
				count++
			}
		}
		out[j] = count
	}

	return out
}

// Dominates reports whether p ≥ q in dominance order: both must have the
// same size and every prefix sum of p must be ≥ the matching prefix sum
// of q. Kostka(λ, μ) for partition content μ is non-zero exactly when λ
// dominates μ.
func (p Partition) Dominates(q Partition) bool {
	if p.Size() != q.Size() {
		return false
	}
	var sumP, sumQ int
	limit := len(p)
	if len(q) > limit {
		limit = len(q)
	}
	for i := 0; i < limit; i++ {
		if i < len(p) {
			sumP += p[i]
		}
		if i < len(q) {
			sumQ += q[i]
		}
		if sumP < sumQ {
			return false
		}
	}

	return true
}
