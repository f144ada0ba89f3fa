// SPDX-License-Identifier: MIT
package minimize

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/matrix"
	"github.com/katalvlaran/wta/tuple"
	"gonum.org/v1/gonum/mat"
)

// Forward returns the forward basis of a: an n×n matrix whose first
// rank rows are linearly independent state vectors reachable by trees and
// whose remaining rows are zero.
//
// Implementation:
//   - Stage 1: offer μ_c of every nullary symbol c, in sorted order.
//   - Stage 2: round i offers (f_{d₁} ⊗ … ⊗ f_{d_k})·μ_σ for every symbol σ
//     of rank k ≥ 1 and every digit tuple over [1, i] containing i, so each
//     tuple of basis rows is tried exactly once.
//   - Rounds continue while i ≤ rank and the basis is not full.
//
// Errors:
//   - matrix.ErrFactorization propagated from a rank decision.
//
// Complexity:
//   - O(Σσ n^kσ) candidates, each costing a 1×n^k Kronecker row, one
//     product with μ_σ and one SVD of at most n×n.
func Forward(a *automaton.Automaton, opts ...Option) (*mat.Dense, error) {
	basis, err := forward(a, resolve(opts))
	if err != nil {
		return nil, err
	}

	return basis.Matrix(), nil
}

func forward(a *automaton.Automaton, o Options) (*matrix.RowBasis, error) {
	n := a.NumStates()
	basis, err := matrix.NewRowBasis(n, n, o.Epsilon)
	if err != nil {
		return nil, err
	}

	type rule struct {
		sym  string
		rank int
		mu   *mat.Dense
	}
	var leaves, inner []rule
	for _, sym := range a.Symbols() {
		k, _ := a.Rank(sym)
		mu, _ := a.Transition(sym)
		if k == 0 {
			leaves = append(leaves, rule{sym, k, mu})
		} else {
			inner = append(inner, rule{sym, k, mu})
		}
	}

	for _, r := range leaves {
		if _, err := basis.TryAdd(mat.Row(nil, 0, r.mu)); err != nil {
			return nil, fmt.Errorf("forward: %s: %w", r.sym, err)
		}
		if basis.Full() {
			break
		}
	}

	factors := make([]mat.Matrix, 0, a.MaxRank())
	for i := 1; i <= basis.Len() && !basis.Full(); i++ {
		for _, r := range inner {
			for x := range tuple.All(r.rank, i, i > 1) {
				factors = factors[:0]
				for _, d := range x {
					row, err := basis.Row(d - 1)
					if err != nil {
						return nil, fmt.Errorf("forward: %w", err)
					}
					v, err := matrix.RowVector(row)
					if err != nil {
						return nil, fmt.Errorf("forward: %w", err)
					}
					factors = append(factors, v)
				}
				kron, err := matrix.KronChain(factors...)
				if err != nil {
					return nil, fmt.Errorf("forward: %s: %w", r.sym, err)
				}
				var cand mat.Dense
				cand.Mul(kron, r.mu)
				if _, err := basis.TryAdd(cand.RawRowView(0)); err != nil {
					return nil, fmt.Errorf("forward: %s: %w", r.sym, err)
				}
				if basis.Full() {
					break
				}
			}
			if basis.Full() {
				break
			}
		}
	}

	o.Logger.Debug("forward basis", slog.Int("states", n), slog.Int("rank", basis.Len()))

	return basis, nil
}
