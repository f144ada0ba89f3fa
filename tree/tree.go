// SPDX-License-Identifier: MIT
package tree

import "strings"

// Tree is a finite ranked tree. The interface is sealed: Leaf and Node are
// its only implementations.
type Tree interface {
	// Symbol returns the label at the root.
	Symbol() string
	// Arity returns the number of children at the root.
	Arity() int
	String() string
	sealed()
}

// Leaf is a nullary symbol.
type Leaf struct {
	Label string
}

// Node is a symbol applied to one or more subtrees.
type Node struct {
	Label    string
	Children []Tree
}

func (l Leaf) Symbol() string { return l.Label }
func (l Leaf) Arity() int     { return 0 }
func (l Leaf) String() string { return l.Label }
func (Leaf) sealed()          {}

func (n Node) Symbol() string { return n.Label }
func (n Node) Arity() int     { return len(n.Children) }
func (Node) sealed()          {}

// String renders n in the syntax accepted by Parse.
func (n Node) String() string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

func (n Node) write(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(n.Label)
	for _, c := range n.Children {
		sb.WriteByte(' ')
		if child, ok := c.(Node); ok {
			child.write(sb)
			continue
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
}

// New builds a Leaf when children is empty and a Node otherwise.
func New(label string, children ...Tree) Tree {
	if len(children) == 0 {
		return Leaf{Label: label}
	}

	return Node{Label: label, Children: children}
}

// Size returns the number of symbols in t.
func Size(t Tree) int {
	n, ok := t.(Node)
	if !ok {
		return 1
	}
	total := 1
	for _, c := range n.Children {
		total += Size(c)
	}

	return total
}

// Depth returns the length of the longest root-to-leaf path; a leaf has depth 0.
func Depth(t Tree) int {
	n, ok := t.(Node)
	if !ok {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		deepest = max(deepest, Depth(c))
	}

	return deepest + 1
}

// Symbols reports every label of t with the arity it is used at.
// A label used at two different arities keeps the first one seen in pre-order.
func Symbols(t Tree) map[string]int {
	out := make(map[string]int)
	var walk func(Tree)
	walk = func(t Tree) {
		if _, seen := out[t.Symbol()]; !seen {
			out[t.Symbol()] = t.Arity()
		}
		if n, ok := t.(Node); ok {
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(t)

	return out
}
