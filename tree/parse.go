// SPDX-License-Identifier: MIT
package tree

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrSyntax indicates malformed tree text.
var ErrSyntax = errors.New("tree: syntax error")

type tokenKind int

const (
	tokOpen tokenKind = iota
	tokClose
	tokLabel
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// Parse reads a single tree from s.
func Parse(s string) (Tree, error) {
	toks := tokenize(s)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrSyntax)
	}
	p := parser{toks: toks}
	t, err := p.tree()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.toks) {
		return nil, fmt.Errorf("trailing input at offset %d: %w", p.toks[p.i].pos, ErrSyntax)
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(s string) Tree {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

func tokenize(s string) []token {
	var toks []token
	start := -1
	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, token{kind: tokLabel, text: s[start:end], pos: start})
			start = -1
		}
	}
	for i, r := range s {
		switch {
		case r == '(':
			flush(i)
			toks = append(toks, token{kind: tokOpen, pos: i})
		case r == ')':
			flush(i)
			toks = append(toks, token{kind: tokClose, pos: i})
		case unicode.IsSpace(r):
			flush(i)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(s))

	return toks
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) tree() (Tree, error) {
	if p.i >= len(p.toks) {
		return nil, fmt.Errorf("unexpected end of input: %w", ErrSyntax)
	}
	tok := p.toks[p.i]
	p.i++
	switch tok.kind {
	case tokLabel:
		return Leaf{Label: tok.text}, nil
	case tokClose:
		return nil, fmt.Errorf("unexpected ')' at offset %d: %w", tok.pos, ErrSyntax)
	}

	if p.i >= len(p.toks) || p.toks[p.i].kind != tokLabel {
		return nil, fmt.Errorf("expected label after '(' at offset %d: %w", tok.pos, ErrSyntax)
	}
	label := p.toks[p.i].text
	p.i++

	var children []Tree
	for {
		if p.i >= len(p.toks) {
			return nil, fmt.Errorf("unclosed '(' at offset %d: %w", tok.pos, ErrSyntax)
		}
		if p.toks[p.i].kind == tokClose {
			p.i++
			break
		}
		child, err := p.tree()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return New(label, children...), nil
}

// ParseAll reads every non-blank, non-comment line of text as a tree.
// Lines starting with '#' are comments.
func ParseAll(text string) ([]Tree, error) {
	var out []Tree
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, t)
	}

	return out, nil
}
