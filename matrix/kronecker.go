// SPDX-License-Identifier: MIT

// Package matrix - Kronecker products.
//
// The Kronecker product of row vectors x (1×n) and y (1×n) is the 1×n² row
// whose entry (i·n + j) is x_i·y_j, i.e. the first factor is the most
// significant digit. This is exactly the mixed-radix row order used by the
// automaton transition matrices, so a chain of children rows can be fed
// straight into a transition matrix.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opKron       = "Kron"
	opKronChain  = "KronChain"
	opKronPowers = "KronPowers"
)

// Kron returns a ⊗ b as a newly allocated dense matrix.
// Complexity: O(ra*ca*rb*cb).
func Kron(a, b mat.Matrix) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opKron, ErrNilMatrix)
	}
	if isEmpty(a) || isEmpty(b) {
		return nil, fmt.Errorf("%s: %w", opKron, ErrBadShape)
	}
	var out mat.Dense
	out.Kronecker(a, b)

	return &out, nil
}

// KronChain folds factors left to right starting from the 1×1 matrix [1]:
// KronChain() = [1], KronChain(a) = a, KronChain(a, b, c) = a ⊗ b ⊗ c.
//
// The empty chain is the neutral element, which lets nullary symbols share
// the code path of k-ary ones: [1]·μ_σ = μ_σ.
func KronChain(factors ...mat.Matrix) (*mat.Dense, error) {
	acc := mat.NewDense(1, 1, []float64{1})
	for i, f := range factors {
		next, err := Kron(acc, f)
		if err != nil {
			return nil, fmt.Errorf("%s: factor %d: %w", opKronChain, i, err)
		}
		acc = next
	}

	return acc, nil
}

// KronPowers returns the k-fold Kronecker powers of m for k = 0..maxK.
// powers[0] is the 1×1 identity and powers[k] = powers[k-1] ⊗ m.
//
// Complexity: dominated by the last power, O((r*c)^maxK).
func KronPowers(m mat.Matrix, maxK int) ([]*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opKronPowers, ErrNilMatrix)
	}
	if maxK < 0 {
		return nil, fmt.Errorf("%s(k=%d): %w", opKronPowers, maxK, ErrBadShape)
	}
	powers := make([]*mat.Dense, maxK+1)
	powers[0] = mat.NewDense(1, 1, []float64{1})
	for k := 1; k <= maxK; k++ {
		next, err := Kron(powers[k-1], m)
		if err != nil {
			return nil, fmt.Errorf("%s(k=%d): %w", opKronPowers, k, err)
		}
		powers[k] = next
	}

	return powers, nil
}

// RowVector wraps a copy of v as a 1×len(v) dense matrix.
func RowVector(v []float64) (*mat.Dense, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("RowVector: %w", ErrBadShape)
	}
	data := make([]float64, len(v))
	copy(data, v)

	return mat.NewDense(1, len(v), data), nil
}

func isEmpty(m mat.Matrix) bool {
	r, c := m.Dims()

	return r == 0 || c == 0
}
