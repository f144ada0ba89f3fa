// SPDX-License-Identifier: MIT

// Package saturate implements Tzeng's rank-saturation search: breadth-first
// extension of a column basis under a fixed set of linear maps.
//
// 🚀 What does it compute?
//
//	Given a seed column v and square matrices M₁…M_k, the smallest subspace
//	containing v and closed under every Mᵢ is spanned by the words
//	Mᵢ₁⋯Mᵢₗ·v. Saturate explores those words level by level and records a
//	maximal linearly independent subset as the columns of a target matrix.
//
// Algorithm Outline:
//  1. Push v onto a FIFO frontier.
//  2. Pop the head, write it into the next free column of B.
//  3. If rank(B) grew, keep it and push Mᵢ·column for every i; otherwise
//     clear the column.
//  4. Stop when B reaches full rank or the frontier is empty.
//
// Termination: at most min(rows, cols) columns are ever accepted and each
// acceptance pushes k candidates, so the frontier is finite.
//
// The order of the transforms changes which basis is found, never its span.
//
// Complexity:
//
//	Time   = O(r·k·SVD(n×r)) for r accepted columns
//	Memory = O(n·r·k) frontier
package saturate
