// SPDX-License-Identifier: MIT

// Package matrix - incremental row basis.
//
// RowBasis grows a set of linearly independent rows inside a fixed-capacity
// matrix. A candidate is written into the next free row and kept only if the
// numerical rank strictly increases; otherwise the row is cleared again.
//
// Invariant: rank(first Len() rows) == Len(). Rows at index ≥ Len() are zero.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RowBasis is an append-only set of independent rows of fixed width.
type RowBasis struct {
	m    *mat.Dense // capacity×cols storage; rows ≥ n are zero
	n    int        // accepted rows
	eps  float64    // rank tolerance
	cols int
}

// NewRowBasis allocates an empty basis able to hold capacity rows of width cols.
//
// Errors:
//   - ErrBadShape when capacity or cols is not positive.
func NewRowBasis(capacity, cols int, eps float64) (*RowBasis, error) {
	if capacity <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewRowBasis(%d,%d): %w", capacity, cols, ErrBadShape)
	}

	return &RowBasis{
		m:    mat.NewDense(capacity, cols, nil),
		eps:  eps,
		cols: cols,
	}, nil
}

// Len returns the number of accepted rows.
func (b *RowBasis) Len() int { return b.n }

// Full reports whether no further row can be accepted.
func (b *RowBasis) Full() bool {
	r, _ := b.m.Dims()

	return b.n >= r || b.n >= b.cols
}

// TryAdd writes row into the next free slot and keeps it iff the rank of the
// accepted rows grows. The returned flag tells whether row was kept.
//
// Implementation:
//   - Stage 1: validate width and finiteness.
//   - Stage 2: write row at index Len(), rank the (Len()+1)-row window.
//   - Stage 3: commit on rank increase, else zero the slot.
//
// Errors:
//   - ErrDimensionMismatch when len(row) != cols.
//   - ErrNaNInf for non-finite entries.
//   - ErrFactorization propagated from Rank.
//
// Complexity:
//   - Time O(k*cols*min(k,cols)) for k = Len()+1.
func (b *RowBasis) TryAdd(row []float64) (bool, error) {
	if len(row) != b.cols {
		return false, fmt.Errorf("TryAdd: width %d, want %d: %w", len(row), b.cols, ErrDimensionMismatch)
	}
	if err := EnsureFinite(row); err != nil {
		return false, fmt.Errorf("TryAdd: %w", err)
	}
	if b.Full() {
		return false, nil
	}

	b.m.SetRow(b.n, row)
	window := b.m.Slice(0, b.n+1, 0, b.cols)
	rank, err := Rank(window, b.eps)
	if err != nil {
		b.clearRow(b.n)
		return false, fmt.Errorf("TryAdd: %w", err)
	}
	if rank <= b.n {
		b.clearRow(b.n)
		return false, nil
	}
	b.n++

	return true, nil
}

// Row returns a copy of accepted row i.
func (b *RowBasis) Row(i int) ([]float64, error) {
	if i < 0 || i >= b.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	return mat.Row(nil, i, b.m), nil
}

// Matrix returns a copy of the full capacity×cols storage; rows past Len()
// are zero.
func (b *RowBasis) Matrix() *mat.Dense {
	return mat.DenseCopyOf(b.m)
}

// Basis returns a copy of the accepted rows as a Len()×cols matrix, or nil
// when the basis is empty.
func (b *RowBasis) Basis() *mat.Dense {
	if b.n == 0 {
		return nil
	}

	return mat.DenseCopyOf(b.m.Slice(0, b.n, 0, b.cols))
}

func (b *RowBasis) clearRow(i int) {
	for j := 0; j < b.cols; j++ {
		b.m.Set(i, j, 0)
	}
}
