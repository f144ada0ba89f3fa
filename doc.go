// Package wta minimizes weighted tree automata over the real numbers.
//
// 🚀 What is wta?
//
//	A small library and CLI that take a bottom-up weighted tree automaton
//	and return an equivalent one with the fewest states:
//		• Representation: rule lists and their (n^k)×n matrix form
//		• Semantics: bottom-up evaluation of ranked trees
//		• Minimization: forward space, backward space, projection
//		• Readers: bottom-up grammars, Berkeley top-down grammars
//
// ✨ Why choose wta?
//
//   - Deterministic – symbols and states are always visited in sorted order
//   - One tolerance – every rank and SVD decision reads the same ε
//   - Checked – every minimization is verifiable by evaluating both automata
//
// Under the hood, everything is organized in small packages:
//
//	automaton/  — rule lists, state index, matrix automaton, Evaluate
//	grammar/    — text readers for rule lists
//	matrix/     — numerical rank, Kronecker products, row bases
//	minimize/   — Forward, Backward, Project, Minimize
//	saturate/   — Tzeng's rank-saturation search
//	tree/       — ranked trees and their s-expression syntax
//	tuple/      — odometer enumeration of index tuples
//	examples/   — bundled demo automata with reference weights
//	cmd/wtamin  — command-line front end
//
// Quick example:
//
//	c -> q0 1          (a (a c))  ↦  2
//	a q0 -> q0 1
//	a q0 -> q1 1       counts the a-nodes above the leaf
//	a q1 -> q1 1
//	! q1 1
//
//	go install github.com/katalvlaran/wta/cmd/wtamin@latest
package wta
