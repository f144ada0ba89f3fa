// SPDX-License-Identifier: MIT
package automaton

import (
	"fmt"
	"sort"
	"strconv"
)

// StateIndex is a fixed bijection between state names and [0, n).
// Every matrix built for one automaton is indexed through the same table.
type StateIndex struct {
	names []string
	pos   map[string]int
}

// SortedStates builds the index from names sorted alphanumerically, duplicates dropped.
func SortedStates(names []string) StateIndex {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	uniq := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			uniq = append(uniq, s)
		}
	}

	return newStateIndex(uniq)
}

// NumberedStates builds the index q0, q1, …, q{n-1} in that order.
func NumberedStates(n int) StateIndex {
	names := make([]string, n)
	for i := range names {
		names[i] = "q" + strconv.Itoa(i)
	}

	return newStateIndex(names)
}

func newStateIndex(names []string) StateIndex {
	pos := make(map[string]int, len(names))
	for i, s := range names {
		pos[s] = i
	}

	return StateIndex{names: names, pos: pos}
}

// Len returns n.
func (s StateIndex) Len() int { return len(s.names) }

// Index returns the position of name.
func (s StateIndex) Index(name string) (int, bool) {
	i, ok := s.pos[name]

	return i, ok
}

// Name returns the state at position i.
func (s StateIndex) Name(i int) string { return s.names[i] }

// Names returns a copy of the names in index order.
func (s StateIndex) Names() []string { return append([]string(nil), s.names...) }

// Row returns the mixed-radix row of the child tuple states, first child most significant.
// The empty tuple maps to row 0.
func (s StateIndex) Row(states []string) (int, error) {
	n := len(s.names)
	row := 0
	for _, name := range states {
		i, ok := s.pos[name]
		if !ok {
			return 0, fmt.Errorf("%q: %w", name, ErrUnknownState)
		}
		row = row*n + i
	}

	return row, nil
}

// Tuple is the inverse of Row for a tuple of length k.
func (s StateIndex) Tuple(row, k int) []string {
	n := len(s.names)
	out := make([]string, k)
	for r := k - 1; r >= 0; r-- {
		out[r] = s.names[row%n]
		row /= n
	}

	return out
}

// rows returns n^k, or false when it does not fit an int.
func rows(n, k int) (int, bool) {
	r := 1
	for i := 0; i < k; i++ {
		if n != 0 && r > (1<<31)/n {
			return 0, false
		}
		r *= n
	}

	return r, true
}
