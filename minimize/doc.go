// SPDX-License-Identifier: MIT

// Package minimize computes a weight-equivalent weighted tree automaton with
// the fewest states, following the three-step forward/backward construction.
//
// Notation: n states, μ_σ the (n^k)×n transition of a rank-k symbol, γ the
// final weights, v(t) the 1×n state vector of a tree t (package automaton).
//
// Step I, Forward:
//
//	F spans {v(t) : t a tree}. Rows are discovered in order; the i-th round
//	combines row i with rows 1..i through every symbol, so every tuple of
//	basis rows is tried exactly once. A candidate is kept only if it raises
//	the numerical rank. F is n×n with unused rows zero.
//
// Step II, Backward:
//
//	For every symbol σ of rank k, hole position p and choice of forward rows
//	for the other k-1 positions, the context matrix
//	    C = (f₁ ⊗ … ⊗ I ⊗ … ⊗ f_k) · μ_σ            (n×n)
//	maps the hole's vector v to v·C. B spans the smallest C-invariant column
//	space containing γ, found by saturate.Saturate.
//
// Step III, Project:
//
//	F_S = rows of F whose image under B raises rank, F̃ = F_S·B (n'×n).
//	    γ'         = F_S·γ
//	    μ'_σ  solves F̃ᵀ·μ'_σᵀ = (F_S^{⊗k}·μ_σ·B)ᵀ    (least squares via SVD)
//	A relative residual above ε is ErrUnsolvableProjection.
//	When n' = 0 the series is identically zero and the result is the
//	one-state zero automaton.
//
// All steps read one tolerance ε (matrix.DefaultEpsilon unless WithEpsilon
// is given) and visit symbols in sorted order, so the result is a
// deterministic function of the input.
//
// Minimize chains the three steps; MinimizeContext additionally opens an
// OpenTelemetry span per step.
package minimize
