// SPDX-License-Identifier: MIT
package automaton

import (
	"fmt"

	"github.com/katalvlaran/wta/matrix"
	"github.com/katalvlaran/wta/tree"
	"gonum.org/v1/gonum/mat"
)

// Evaluate returns the weight a assigns to t: v(t)·γ, where
// v(σ(t₁…t_k)) = (v(t₁) ⊗ … ⊗ v(t_k))·μ_σ and v(c) = μ_c for leaves.
//
// Errors:
//   - ErrMissingTransition if a label has no transition matrix (FinalSymbol included).
//   - ErrDimensionMismatch if a node's branching disagrees with its label's rank.
//
// Complexity:
//   - O(Σ_nodes n^(k+1)) time; the Kronecker product of a node is the
//     dominant allocation.
func (a *Automaton) Evaluate(t tree.Tree) (float64, error) {
	v, err := a.Vector(t)
	if err != nil {
		return 0, err
	}

	return mat.Dot(v, a.gamma), nil
}

// Vector returns the 1×n state vector v(t) as a length-n vector.
func (a *Automaton) Vector(t tree.Tree) (*mat.VecDense, error) {
	row, err := a.vector(t)
	if err != nil {
		return nil, err
	}

	return mat.NewVecDense(a.NumStates(), row.RawRowView(0)), nil
}

func (a *Automaton) vector(t tree.Tree) (*mat.Dense, error) {
	switch node := t.(type) {
	case tree.Leaf:
		mu, err := a.lookup(node.Label, 0)
		if err != nil {
			return nil, err
		}
		return mat.DenseCopyOf(mu), nil

	case tree.Node:
		mu, err := a.lookup(node.Label, len(node.Children))
		if err != nil {
			return nil, err
		}
		if len(node.Children) == 0 {
			return mat.DenseCopyOf(mu), nil
		}
		children := make([]mat.Matrix, len(node.Children))
		for i, c := range node.Children {
			v, err := a.vector(c)
			if err != nil {
				return nil, err
			}
			children[i] = v
		}
		in := children[0]
		if len(children) > 1 {
			prod, err := matrix.KronChain(children...)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", node.Label, err)
			}
			in = prod
		}
		var out mat.Dense
		out.Mul(in, mu)

		return &out, nil

	default:
		return nil, fmt.Errorf("unsupported tree %T: %w", t, ErrDimensionMismatch)
	}
}

// lookup returns μ_sym after checking that sym is used at its rank.
func (a *Automaton) lookup(sym string, arity int) (*mat.Dense, error) {
	mu, ok := a.mu[sym]
	if !ok {
		return nil, fmt.Errorf("%q: %w", sym, ErrMissingTransition)
	}
	if k := a.alphabet[sym]; k != arity {
		return nil, fmt.Errorf("%s has rank %d, used with %d children: %w", sym, k, arity, ErrDimensionMismatch)
	}

	return mu, nil
}
