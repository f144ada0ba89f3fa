// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric kernels shared by the weighted
// tree automaton packages.
//
// The matrix package provides:
//
//   - Rank: numerical rank as the count of singular values above a tolerance.
//   - Kron, KronChain, KronPowers: Kronecker products over gonum dense matrices,
//     including the memoised k-fold powers used by the projection step.
//   - NonZeroRows, SelectRows: row-occupancy bookkeeping backed by a bitset.
//   - RowBasis: an incremental basis that accepts a row only when it strictly
//     increases the numerical rank.
//
// All kernels take the tolerance explicitly; DefaultEpsilon is the single
// documented default that callers thread through their options.
//
// See the examples in this package for usage patterns.
package matrix
