// SPDX-License-Identifier: MIT

// Package matrix - numerical rank.
//
// Purpose:
//   - Replace exact (symbolic) rank by the count of singular values strictly
//     greater than an absolute tolerance eps.
//   - Keep the decision in one kernel so every caller ranks matrices the same way.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opRank = "Rank"

// Rank returns the numerical rank of m: the number of singular values of m
// that exceed eps. Empty matrices have rank 0.
//
// Implementation:
//   - Stage 1: reject a nil operand; empty shapes short-circuit to 0.
//   - Stage 2: factorize with mat.SVDNone (singular values only).
//   - Stage 3: count the descending singular values above eps.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrFactorization when the SVD does not converge.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Rank(m mat.Matrix, eps float64) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", opRank, ErrNilMatrix)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDNone); !ok {
		return 0, fmt.Errorf("%s(%dx%d): %w", opRank, r, c, ErrFactorization)
	}

	// Values are sorted in decreasing order, so stop at the first small one.
	rank := 0
	for _, s := range svd.Values(nil) {
		if s <= eps {
			break
		}
		rank++
	}

	return rank, nil
}

// IsZero reports whether every entry of m is exactly zero.
// Exact comparison is intended: unset cells are zero by construction.
// Complexity: O(r*c).
func IsZero(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id, nil
}

// IsIdentity reports whether m is square and equal to the identity.
func IsIdentity(m mat.Matrix) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if m.At(i, j) != want {
				return false
			}
		}
	}

	return true
}
