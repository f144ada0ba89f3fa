// SPDX-License-Identifier: MIT

// Package automaton holds the two representations of a weighted tree
// automaton over the reals and the mapping between them.
//
// A RuleList is the flat form produced by a grammar reader: a ranked
// alphabet plus, per symbol, the ordered productions
//
//	σ q₁ … q_k -> q   cost     (bottom-up transition)
//	! q               cost     (final weight of q)
//
// An Automaton is the matrix form. With n states sorted by name, every symbol
// σ of rank k owns a dense (n^k)×n matrix μ_σ whose column is the resulting
// state and whose row encodes the child states with the mixed-radix
// formula
//
//	row(q₁,…,q_k) = Σ idx(q_r)·n^(k-r)      (first child most significant)
//
// so that the Kronecker product of the children's row vectors, taken left to
// right, lines up with the rows of μ_σ. The final-weight pseudo-symbol "!"
// is an n×1 column γ indexed directly by state.
//
// Semantics (Evaluate):
//
//	v(c)            = μ_c                          (1×n)
//	v(σ t₁ … t_k)   = (v(t₁) ⊗ … ⊗ v(t_k)) · μ_σ    (1×n)
//	weight(t)       = v(t) · γ
//
// Cells not set by any production are zero. When two productions hit the
// same cell the later one wins and Convert logs a warning.
//
// Automaton values are immutable: accessors return copies.
package automaton
