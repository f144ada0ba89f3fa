// SPDX-License-Identifier: MIT
package automaton

import (
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"
)

// Convert builds the matrix form of a bottom-up rule list.
//
// Implementation:
//   - Stage 1: sort the distinct state names into a StateIndex.
//   - Stage 2: for each symbol σ of rank k allocate a zero (n^k)×n matrix.
//   - Stage 3: write each production's cost at (row(left states), idx(right state));
//     "!" rules fill γ instead.
//
// A cell written twice keeps the later cost; the overwrite is logged at Warn.
// Symbols present in the alphabet without productions get a zero matrix.
//
// Errors:
//   - ErrUnsupportedKind for top-down lists.
//   - ErrNoStates for a nil or state-free list.
//   - ErrMalformedProduction, ErrUnknownState for inconsistent productions.
//   - ErrDimensionMismatch when n^k overflows.
//
// Complexity:
//   - Time O(|P| + Σσ n^k·n) including the zero fill, Space O(Σσ n^k·n).
func Convert(rl *RuleList, opts ...Option) (*Automaton, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if rl == nil {
		return nil, ErrNoStates
	}
	if rl.Kind != BottomUp {
		return nil, fmt.Errorf("%s: %w", rl.Kind, ErrUnsupportedKind)
	}
	log := o.logger.With(slog.String("component", "automaton"))

	states := SortedStates(rl.States())
	n := states.Len()
	if n == 0 {
		return nil, ErrNoStates
	}
	if rl.NumStates != 0 && rl.NumStates != n {
		log.Debug("rule list state count differs from distinct states",
			slog.Int("declared", rl.NumStates), slog.Int("distinct", n))
	}

	alphabet := make(RankedAlphabet)
	transitions := make(map[string]*mat.Dense)
	final := make([]float64, n)
	finalSet := bitset.New(uint(n))

	for _, sym := range rl.symbols() {
		if sym == FinalSymbol {
			for _, p := range rl.Productions[sym] {
				if err := p.validate(BottomUp); err != nil {
					return nil, err
				}
				if p.Root != sym {
					return nil, fmt.Errorf("production %q listed under %q: %w", p, sym, ErrMalformedProduction)
				}
				q, ok := states.Index(p.Left[0])
				if !ok {
					return nil, fmt.Errorf("%q: %w", p.Left[0], ErrUnknownState)
				}
				if finalSet.Test(uint(q)) {
					log.Warn("final weight overwritten",
						slog.String("state", p.Left[0]),
						slog.Float64("old", final[q]), slog.Float64("new", p.Cost))
				}
				finalSet.Set(uint(q))
				final[q] = p.Cost
			}
			continue
		}

		k, declared := rl.Alphabet[sym]
		if !declared {
			if ps := rl.Productions[sym]; len(ps) > 0 {
				k = len(ps[0].Left)
			}
		}
		r, fits := rows(n, k)
		if !fits {
			return nil, fmt.Errorf("%s: %d^%d rows: %w", sym, n, k, ErrDimensionMismatch)
		}
		mu := mat.NewDense(r, n, nil)
		written := bitset.New(uint(r * n))

		for _, p := range rl.Productions[sym] {
			if err := p.validate(BottomUp); err != nil {
				return nil, err
			}
			if p.Root != sym {
				return nil, fmt.Errorf("production %q listed under %q: %w", p, sym, ErrMalformedProduction)
			}
			if len(p.Left) != k {
				return nil, fmt.Errorf("%q has %d children, %s has rank %d: %w", p, len(p.Left), sym, k, ErrMalformedProduction)
			}
			row, err := states.Row(p.Left)
			if err != nil {
				return nil, err
			}
			col, ok := states.Index(p.Right[0])
			if !ok {
				return nil, fmt.Errorf("%q: %w", p.Right[0], ErrUnknownState)
			}
			cell := uint(row*n + col)
			if written.Test(cell) {
				log.Warn("transition cell overwritten",
					slog.String("symbol", sym), slog.Int("row", row), slog.Int("col", col),
					slog.Float64("old", mu.At(row, col)), slog.Float64("new", p.Cost))
			}
			written.Set(cell)
			mu.Set(row, col, p.Cost)
		}

		alphabet[sym] = k
		transitions[sym] = mu
		log.Debug("transition matrix built",
			slog.String("symbol", sym), slog.Int("rank", k), slog.Uint64("cells", uint64(written.Count())))
	}

	return New(states, alphabet, transitions, final)
}
