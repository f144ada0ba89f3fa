// SPDX-License-Identifier: MIT

// Package tree defines ranked trees over a string alphabet and a compact
// s-expression syntax for them.
//
// A Tree is either a Leaf carrying a nullary symbol or a Node carrying a
// symbol and an ordered, non-empty list of children. The arity of a symbol
// is the number of children at the node that uses it.
//
// Syntax:
//
//	tree  = label | "(" label tree { tree } ")"
//	label = any run of characters other than space, "(" and ")"
//
// Examples: "c", "(a c)", "(b c (a c))". A parenthesised label without
// children, "(c)", is accepted and read as the leaf c.
package tree
