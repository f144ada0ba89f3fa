// SPDX-License-Identifier: MIT
package saturate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wta/matrix"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch indicates a seed or transform incompatible with the target.
	ErrDimensionMismatch = errors.New("saturate: dimension mismatch")

	// ErrTargetNotEmpty indicates that the target matrix already holds data.
	ErrTargetNotEmpty = errors.New("saturate: target matrix must be zero")
)

// Saturate fills the columns of b, left to right, with a maximal independent
// set of vectors from the closure of seed under transforms. It returns the
// number of filled columns, which equals rank(b) on return.
//
// Contract:
//   - b is n×c and entirely zero on entry; it is mutated in place.
//   - seed has length n; every transform is n×n.
//   - eps is the numerical rank tolerance shared with the caller.
//
// Implementation:
//   - Stage 1: validate every shape and require a zero target.
//   - Stage 2: pop the oldest candidate, write it into the next free column
//     and keep it iff the rank of the filled prefix grows.
//   - Stage 3: push M·v for every transform M and every kept v; rejected
//     candidates are cleared and never expanded.
//   - Stop once the frontier is empty or min(n, c) columns are filled.
//
// Errors:
//   - ErrDimensionMismatch, ErrTargetNotEmpty on contract violations.
//   - matrix.ErrFactorization propagated from the rank kernel.
//
// Complexity:
//   - At most min(n, c)·|transforms| + 1 candidates, each costing one SVD
//     of an n×(filled+1) prefix and one n×n product: O(|T|·n^4) overall.
func Saturate(seed mat.Vector, b *mat.Dense, transforms []mat.Matrix, eps float64) (int, error) {
	rows, cols := b.Dims()
	if seed.Len() != rows {
		return 0, fmt.Errorf("seed length %d for %d rows: %w", seed.Len(), rows, ErrDimensionMismatch)
	}
	for i, m := range transforms {
		r, c := m.Dims()
		if r != rows || c != rows {
			return 0, fmt.Errorf("transform %d is %dx%d, want %dx%d: %w", i, r, c, rows, rows, ErrDimensionMismatch)
		}
	}
	if !matrix.IsZero(b) {
		return 0, ErrTargetNotEmpty
	}

	limit := min(rows, cols)
	frontier := [][]float64{mat.Col(nil, 0, seed)}
	filled := 0

	for len(frontier) > 0 && filled < limit {
		candidate := frontier[0]
		frontier = frontier[1:]

		b.SetCol(filled, candidate)
		rank, err := matrix.Rank(b.Slice(0, rows, 0, filled+1), eps)
		if err != nil {
			return filled, fmt.Errorf("column %d: %w", filled, err)
		}
		if rank <= filled {
			b.SetCol(filled, make([]float64, rows))
			continue
		}
		filled++

		accepted := mat.NewVecDense(rows, candidate)
		for _, m := range transforms {
			var next mat.VecDense
			next.MulVec(m, accepted)
			frontier = append(frontier, mat.Col(nil, 0, &next))
		}
	}

	return filled, nil
}
