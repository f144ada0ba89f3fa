// SPDX-License-Identifier: MIT

// Package tuple enumerates fixed-length index tuples over a bounded alphabet.
//
// A tuple of length k is read as a k-digit odometer with digits in [1, bound]:
// the rightmost digit turns fastest, and when a digit overflows it resets to 1
// while its left neighbour advances.
//
//	[1 1] → [1 2] → [2 1] → [2 2] → done      (k=2, bound=2)
//
// With requireBound set, tuples that do not contain the digit bound are
// skipped. The forward step of the minimisation uses this to visit each
// combination of basis rows exactly once: at depth i only tuples that touch
// the newest row i are new.
//
// Usage:
//
//	for x := range tuple.All(2, 3, true) {
//		// x ∈ {[1 3] [2 3] [3 1] [3 2] [3 3]}
//	}
//
// Complexity: Next is O(k) amortised; All yields at most bound^k tuples.
package tuple
