// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// The tolerance is never read from package state by the kernels: every kernel
// receives eps as an argument. DefaultEpsilon documents the value the
// automaton packages resolve their options against.
package matrix

import "math"

// DefaultEpsilon is the tolerance below which singular values count as zero.
// Forward, backward and projection steps must agree on it, so it is defined
// exactly once.
const DefaultEpsilon = 1e-5

const panicEpsilonInvalid = "matrix: eps must be finite and positive"

// ValidateEpsilon reports whether eps is usable as a rank tolerance.
// Complexity: O(1).
func ValidateEpsilon(eps float64) bool {
	return !math.IsNaN(eps) && !math.IsInf(eps, 0) && eps > 0
}

// MustEpsilon returns eps or panics with a stable message when eps is not a
// finite positive number. Option constructors use it; invalid tolerances are
// programmer errors.
func MustEpsilon(eps float64) float64 {
	if !ValidateEpsilon(eps) {
		panic(panicEpsilonInvalid)
	}

	return eps
}
