// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels (optionally wrapped with fmt.Errorf and %w);
// callers and tests match them via errors.Is. Kernels do not panic on
// user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrBadShape is returned when a requested shape is invalid (e.g., r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., a candidate row whose length differs from the basis width.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrFactorization indicates that a singular value decomposition failed.
	ErrFactorization = errors.New("matrix: SVD factorization failed")
)
