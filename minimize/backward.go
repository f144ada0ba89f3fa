// SPDX-License-Identifier: MIT
package minimize

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/matrix"
	"github.com/katalvlaran/wta/saturate"
	"github.com/katalvlaran/wta/tuple"
	"gonum.org/v1/gonum/mat"
)

// Backward returns the backward basis of a given its forward basis f: an
// n×n matrix whose first rank columns span the smallest space containing γ
// and closed under every context matrix; the remaining columns are zero.
//
// Implementation:
//   - Stage 1: drop the zero rows of f.
//   - Stage 2: for every symbol σ of rank k ≥ 1 and hole position p, build
//     C = (f_{d₁} ⊗ … ⊗ I ⊗ … ⊗ f_{d_{k-1}})·μ_σ for every digit tuple over
//     the remaining rows; zero, identity and repeated matrices are skipped.
//   - Stage 3: saturate γ under the collected matrices.
//
// Errors:
//   - automaton.ErrDimensionMismatch when f is not r×n with r ≤ n.
//   - matrix.ErrFactorization propagated from a rank decision.
//
// Complexity:
//   - Σσ kσ·r^(kσ-1) context matrices of n×n, each built from an
//     n×n^k Kronecker factor; saturation as in package saturate.
func Backward(a *automaton.Automaton, f mat.Matrix, opts ...Option) (*mat.Dense, error) {
	b, _, err := backward(a, f, resolve(opts))

	return b, err
}

// backward also reports the number of context matrices collected.
func backward(a *automaton.Automaton, f mat.Matrix, o Options) (*mat.Dense, int, error) {
	n := a.NumStates()
	if r, c := f.Dims(); c != n || r > n {
		return nil, 0, fmt.Errorf("backward: forward basis is %dx%d for %d states: %w", r, c, n, automaton.ErrDimensionMismatch)
	}

	clean, err := matrix.SelectRows(f, matrix.NonZeroRows(f))
	if err != nil {
		return nil, 0, fmt.Errorf("backward: %w", err)
	}
	contexts, err := contextMatrices(a, clean)
	if err != nil {
		return nil, 0, err
	}
	o.Logger.Debug("context matrices", slog.Int("count", len(contexts)))

	b := mat.NewDense(n, n, nil)
	filled, err := saturate.Saturate(a.FinalWeights(), b, contexts, o.Epsilon)
	if err != nil {
		return nil, 0, fmt.Errorf("backward: %w", err)
	}
	o.Logger.Debug("backward basis", slog.Int("states", n), slog.Int("rank", filled))

	return b, len(contexts), nil
}

// contextMatrices builds every distinct non-trivial context matrix
// (f₁ ⊗ … ⊗ I ⊗ … ⊗ f_k)·μ_σ with fᵢ drawn from the rows of clean.
// clean may be nil when the forward space is trivial.
func contextMatrices(a *automaton.Automaton, clean *mat.Dense) ([]mat.Matrix, error) {
	n := a.NumStates()
	var rows []*mat.Dense
	if clean != nil {
		r, _ := clean.Dims()
		rows = make([]*mat.Dense, r)
		for i := range rows {
			v, err := matrix.RowVector(mat.Row(nil, i, clean))
			if err != nil {
				return nil, fmt.Errorf("backward: %w", err)
			}
			rows[i] = v
		}
	}
	id, err := matrix.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("backward: %w", err)
	}

	candidates := 0
	for _, sym := range a.Symbols() {
		if k, _ := a.Rank(sym); k > 0 {
			candidates += k * tuple.Count(k-1, len(rows), false)
		}
	}
	out := make([]mat.Matrix, 0, candidates)
	for _, sym := range a.Symbols() {
		k, _ := a.Rank(sym)
		if k == 0 {
			continue
		}
		mu, _ := a.Transition(sym)
		factors := make([]mat.Matrix, k)
		for p := 0; p < k; p++ {
			for x := range tuple.All(k-1, len(rows), false) {
				for pos, d := 0, 0; pos < k; pos++ {
					if pos == p {
						factors[pos] = id
						continue
					}
					factors[pos] = rows[x[d]-1]
					d++
				}
				kron, err := matrix.KronChain(factors...)
				if err != nil {
					return nil, fmt.Errorf("backward: %s: %w", sym, err)
				}
				c := mat.NewDense(n, n, nil)
				c.Mul(kron, mu)
				if matrix.IsZero(c) || matrix.IsIdentity(c) || containsMatrix(out, c) {
					continue
				}
				out = append(out, c)
			}
		}
	}

	return out, nil
}

func containsMatrix(ms []mat.Matrix, m mat.Matrix) bool {
	for _, x := range ms {
		if mat.Equal(x, m) {
			return true
		}
	}

	return false
}
