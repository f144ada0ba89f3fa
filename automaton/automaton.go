// SPDX-License-Identifier: MIT
package automaton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wta/matrix"
	"gonum.org/v1/gonum/mat"
)

// Automaton is the matrix form of a bottom-up weighted tree automaton.
type Automaton struct {
	states   StateIndex
	alphabet RankedAlphabet
	mu       map[string]*mat.Dense
	gamma    *mat.VecDense
}

// New assembles an Automaton from its parts, copying every input.
//
// Contract:
//   - states is non-empty.
//   - alphabet names every regular symbol with its rank; a FinalSymbol
//     entry is ignored and replaced by states.Len().
//   - transitions holds exactly one (n^k)×n matrix per regular symbol.
//   - final has length n.
//
// Errors:
//   - ErrNoStates for an empty index.
//   - ErrDimensionMismatch for a misshapen matrix, a negative rank or an
//     undeclared symbol.
//   - ErrMissingTransition for a declared symbol without a matrix.
//   - matrix.ErrNaNInf for NaN or ±Inf entries.
func New(states StateIndex, alphabet RankedAlphabet, transitions map[string]*mat.Dense, final []float64) (*Automaton, error) {
	n := states.Len()
	if n == 0 {
		return nil, ErrNoStates
	}
	if len(final) != n {
		return nil, fmt.Errorf("final weights of length %d for %d states: %w", len(final), n, ErrDimensionMismatch)
	}
	if err := matrix.EnsureFinite(final); err != nil {
		return nil, fmt.Errorf("final weights: %w", err)
	}

	a := &Automaton{
		states:   states,
		alphabet: make(RankedAlphabet, len(alphabet)+1),
		mu:       make(map[string]*mat.Dense, len(transitions)),
		gamma:    mat.NewVecDense(n, append([]float64(nil), final...)),
	}
	for sym := range transitions {
		if _, ok := alphabet[sym]; !ok || sym == FinalSymbol {
			return nil, fmt.Errorf("transition for %q has no declared rank: %w", sym, ErrDimensionMismatch)
		}
	}
	for _, sym := range alphabet.Symbols() {
		k := alphabet[sym]
		if k < 0 {
			return nil, fmt.Errorf("%s: negative rank %d: %w", sym, k, ErrDimensionMismatch)
		}
		m, ok := transitions[sym]
		if !ok || m == nil {
			return nil, fmt.Errorf("%s: %w", sym, ErrMissingTransition)
		}
		want, fits := rows(n, k)
		r, c := m.Dims()
		if !fits || r != want || c != n {
			return nil, fmt.Errorf("%s: %dx%d matrix for rank %d over %d states: %w", sym, r, c, k, n, ErrDimensionMismatch)
		}
		cp := mat.DenseCopyOf(m)
		if err := matrix.EnsureFinite(cp.RawMatrix().Data); err != nil {
			return nil, fmt.Errorf("%s: %w", sym, err)
		}
		a.alphabet[sym] = k
		a.mu[sym] = cp
	}
	a.alphabet[FinalSymbol] = n

	return a, nil
}

// NumStates returns n.
func (a *Automaton) NumStates() int { return a.states.Len() }

// States returns the state index shared by every matrix of a.
func (a *Automaton) States() StateIndex { return a.states }

// Alphabet returns a copy of the ranked alphabet, FinalSymbol included.
func (a *Automaton) Alphabet() RankedAlphabet { return a.alphabet.Clone() }

// Rank returns the rank of sym.
func (a *Automaton) Rank(sym string) (int, bool) {
	k, ok := a.alphabet[sym]

	return k, ok
}

// Symbols returns the regular symbols in sorted order.
func (a *Automaton) Symbols() []string { return a.alphabet.Symbols() }

// MaxRank returns the largest rank among regular symbols.
func (a *Automaton) MaxRank() int { return a.alphabet.MaxRank() }

// Transition returns a copy of μ_sym. For FinalSymbol it returns γ as an n×1 matrix.
func (a *Automaton) Transition(sym string) (*mat.Dense, bool) {
	if sym == FinalSymbol {
		return mat.DenseCopyOf(a.gamma), true
	}
	m, ok := a.mu[sym]
	if !ok {
		return nil, false
	}

	return mat.DenseCopyOf(m), true
}

// FinalWeights returns a copy of γ.
func (a *Automaton) FinalWeights() *mat.VecDense {
	return mat.VecDenseCopyOf(a.gamma)
}

func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Number of States: %d\n", a.NumStates())
	fmt.Fprintf(&sb, "States: %s\n", strings.Join(a.states.names, " "))
	fmt.Fprintf(&sb, "Ranked Alphabet: %s\n", a.alphabet)
	sb.WriteString("Transition Matrices:\n")
	for _, sym := range a.Symbols() {
		fmt.Fprintf(&sb, "%s:\n%v\n", sym, mat.Formatted(a.mu[sym], mat.Squeeze()))
	}
	fmt.Fprintf(&sb, "%s:\n%v\n", FinalSymbol, mat.Formatted(a.gamma, mat.Squeeze()))

	return sb.String()
}
