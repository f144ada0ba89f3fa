// SPDX-License-Identifier: MIT

// Package grammar reads weighted tree automata from line-oriented text.
//
// Bottom-up format, one rule per line:
//
//	σ q₁ … q_k -> q cost     transition of a rank-k symbol
//	! q cost                 final weight of q
//
// Blank lines and lines starting with '#' are skipped. The number of states
// before "->" fixes the rank of σ; using σ with two ranks is an error.
//
// Top-down format (Berkeley parser grammar and lexicon):
//
//	grammar:  A_i -> B_j C_k cost       root symbol is the prefix "A"
//	lexicon:  A word [c₀, c₁, …]        rules A_0 → word, A_1 → word, … with costs cᵢ
//
// Top-down rule lists are produced for inspection only; automaton.Convert
// rejects them.
package grammar
