// SPDX-License-Identifier: MIT
package tuple

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDigitRange is returned by Validate when a digit lies outside [1, bound].
var ErrDigitRange = errors.New("tuple: digit out of range")

// Next returns the odometer successor of x over digits [1, bound], or
// (nil, false) once [bound … bound] has been passed. x is not modified.
//
// When requireBound is true, successors without any digit equal to bound are
// skipped. The empty tuple has no successor.
//
// A tuple with a digit outside [1, bound] has no successor either.
func Next(x []int, bound int, requireBound bool) ([]int, bool) {
	if len(x) == 0 || Validate(x, bound) != nil {
		return nil, false
	}
	next := slices.Clone(x)
	for {
		if !advance(next, bound) {
			return nil, false
		}
		if !requireBound || slices.Contains(next, bound) {
			return next, true
		}
	}
}

// advance increments x in place. It reports false when x was already maximal.
func advance(x []int, bound int) bool {
	j := len(x) - 1
	for j >= 0 && x[j] == bound {
		j--
	}
	if j < 0 {
		return false
	}
	x[j]++
	for l := j + 1; l < len(x); l++ {
		x[l] = 1
	}

	return true
}

// All yields every tuple of length k over [1, bound] in odometer order,
// starting at [1 … 1]. With requireBound only tuples containing bound are
// yielded.
//
// k = 0 yields the single empty tuple (the empty combination) unless
// requireBound is set, because the empty tuple contains no digit at all.
// bound ≤ 0 with k > 0 yields nothing.
//
// Each yielded slice is fresh; callers may retain it.
func All(k, bound int, requireBound bool) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 {
			return
		}
		if k == 0 {
			if !requireBound {
				yield([]int{})
			}
			return
		}
		if bound <= 0 {
			return
		}
		x := make([]int, k)
		for i := range x {
			x[i] = 1
		}
		if requireBound && !slices.Contains(x, bound) {
			var ok bool
			if x, ok = Next(x, bound, true); !ok {
				return
			}
		}
		for {
			if !yield(slices.Clone(x)) {
				return
			}
			var ok bool
			if x, ok = Next(x, bound, requireBound); !ok {
				return
			}
		}
	}
}

// Count returns how many tuples All(k, bound, requireBound) yields:
// bound^k, minus (bound-1)^k when requireBound is set.
func Count(k, bound int, requireBound bool) int {
	if k < 0 {
		return 0
	}
	if k == 0 {
		if requireBound {
			return 0
		}
		return 1
	}
	if bound <= 0 {
		return 0
	}
	total := pow(bound, k)
	if requireBound {
		total -= pow(bound-1, k)
	}

	return total
}

// Validate checks that every digit of x lies in [1, bound].
func Validate(x []int, bound int) error {
	for i, d := range x {
		if d < 1 || d > bound {
			return fmt.Errorf("position %d: digit %d not in [1,%d]: %w", i, d, bound, ErrDigitRange)
		}
	}

	return nil
}

func pow(b, e int) int {
	r := 1
	for ; e > 0; e-- {
		r *= b
	}

	return r
}
