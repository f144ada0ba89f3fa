// SPDX-License-Identifier: MIT

// Package matrix - row occupancy.
//
// Bases are stored in fixed-capacity matrices whose unused rows stay zero.
// NonZeroRows records which rows carry data and SelectRows materialises
// exactly those rows, preserving their order.
package matrix

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"
)

// NonZeroRows returns the set of row indices of m holding at least one
// non-zero entry.
// Complexity: O(r*c).
func NonZeroRows(m mat.Matrix) *bitset.BitSet {
	r, c := m.Dims()
	set := bitset.New(uint(r))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				set.Set(uint(i))
				break
			}
		}
	}

	return set
}

// SelectRows copies the rows of m listed in rows, in increasing index order,
// into a new len(rows)×c matrix. It returns (nil, nil) when rows is empty,
// since gonum cannot represent a matrix without rows.
//
// Errors:
//   - ErrOutOfRange when rows references an index ≥ r.
func SelectRows(m mat.Matrix, rows *bitset.BitSet) (*mat.Dense, error) {
	r, c := m.Dims()
	count := int(rows.Count())
	if count == 0 {
		return nil, nil
	}
	out := mat.NewDense(count, c, nil)
	k := 0
	for i, ok := rows.NextSet(0); ok; i, ok = rows.NextSet(i + 1) {
		if int(i) >= r {
			return nil, fmt.Errorf("SelectRows(%d): %w", i, ErrOutOfRange)
		}
		for j := 0; j < c; j++ {
			out.Set(k, j, m.At(int(i), j))
		}
		k++
	}

	return out, nil
}

// EnsureFinite returns ErrNaNInf if any entry of v is NaN or ±Inf.
func EnsureFinite(v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("entry %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}
