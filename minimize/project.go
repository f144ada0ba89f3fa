// SPDX-License-Identifier: MIT
package minimize

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/matrix"
	"gonum.org/v1/gonum/mat"
)

// Project builds the minimal automaton from a and its forward and backward
// bases. Both bases are n×n.
//
// Implementation:
//   - Stage 1: F_S keeps the rows of F whose image under B raises rank;
//     F̃ = F_S·B is r×n. r = 0 yields the one-state zero automaton.
//   - Stage 2: γ' = F_S·γ.
//   - Stage 3: μ'_σ solves F̃ᵀ·X = (F_S^{⊗k}·μ_σ·B)ᵀ in the least-squares
//     sense, using one thin SVD of F̃ᵀ for every symbol; μ'_σ = Xᵀ.
//
// Errors:
//   - automaton.ErrDimensionMismatch when a basis is not n×n.
//   - ErrUnsolvableProjection when a residual exceeds ε·max(1, ‖rhs‖).
//   - matrix.ErrFactorization when the SVD does not converge.
//
// Complexity:
//   - One SVD of n×r plus, per symbol, products of size r^k×n^k×n.
func Project(a *automaton.Automaton, f, b mat.Matrix, opts ...Option) (*automaton.Automaton, error) {
	return project(a, f, b, resolve(opts))
}

func project(a *automaton.Automaton, f, b mat.Matrix, o Options) (*automaton.Automaton, error) {
	n := a.NumStates()
	for _, m := range []mat.Matrix{f, b} {
		if r, c := m.Dims(); r != n || c != n {
			return nil, fmt.Errorf("project: basis is %dx%d for %d states: %w", r, c, n, automaton.ErrDimensionMismatch)
		}
	}

	// Stage 1: keep the rows of F whose image under B raises rank.
	var fb mat.Dense
	fb.Mul(f, b)
	tilde, err := matrix.NewRowBasis(n, n, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	kept := bitset.New(uint(n))
	for i := 0; i < n && !tilde.Full(); i++ {
		ok, err := tilde.TryAdd(fb.RawRowView(i))
		if err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
		if ok {
			kept.Set(uint(i))
		}
	}
	size := tilde.Len()
	o.Logger.Debug("projected state space", slog.Int("from", n), slog.Int("to", size))
	if size == 0 {
		return zeroAutomaton(a)
	}

	fs, err := matrix.SelectRows(f, kept)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	ft := tilde.Basis()

	// Stage 2: new final weights γ' = F_S·γ.
	var gamma mat.VecDense
	gamma.MulVec(fs, a.FinalWeights())

	// Stage 3: one SVD of F̃ᵀ serves every symbol.
	var svd mat.SVD
	if !svd.Factorize(ft.T(), mat.SVDThin) {
		return nil, fmt.Errorf("project: %w", matrix.ErrFactorization)
	}
	rank := 0
	for _, s := range svd.Values(nil) {
		if s > o.Epsilon {
			rank++
		}
	}
	if rank == 0 {
		return nil, fmt.Errorf("project: F·B has no singular value above %g: %w", o.Epsilon, ErrUnsolvableProjection)
	}

	powers, err := matrix.KronPowers(fs, a.MaxRank())
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	alphabet := make(automaton.RankedAlphabet)
	transitions := make(map[string]*mat.Dense)
	for _, sym := range a.Symbols() {
		k, _ := a.Rank(sym)
		mu, _ := a.Transition(sym)

		var image, right mat.Dense
		image.Mul(powers[k], mu)
		right.Mul(&image, b)

		var x mat.Dense
		svd.SolveTo(&x, right.T(), rank)

		var res mat.Dense
		res.Mul(ft.T(), &x)
		res.Sub(&res, right.T())
		if r, scale := mat.Norm(&res, 2), math.Max(1, mat.Norm(&right, 2)); r > o.Epsilon*scale {
			return nil, fmt.Errorf("project: %s: residual %g: %w", sym, r, ErrUnsolvableProjection)
		}

		alphabet[sym] = k
		transitions[sym] = mat.DenseCopyOf(x.T())
	}

	return automaton.New(automaton.NumberedStates(size), alphabet, transitions, gamma.RawVector().Data)
}

// zeroAutomaton is the one-state automaton of the zero series over a's alphabet.
func zeroAutomaton(a *automaton.Automaton) (*automaton.Automaton, error) {
	alphabet := make(automaton.RankedAlphabet)
	transitions := make(map[string]*mat.Dense)
	for _, sym := range a.Symbols() {
		k, _ := a.Rank(sym)
		alphabet[sym] = k
		transitions[sym] = mat.NewDense(1, 1, nil)
	}

	return automaton.New(automaton.NumberedStates(1), alphabet, transitions, []float64{0})
}
