// SPDX-License-Identifier: MIT
package automaton

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RuleList is the flat form of an automaton as produced by a reader.
// NumStates counts the distinct state names of all productions.
type RuleList struct {
	NumStates   int
	Kind        Kind
	Alphabet    RankedAlphabet
	Productions map[string][]Production

	seen map[string]struct{}
}

// NewRuleList returns an empty rule list of kind k.
func NewRuleList(k Kind) *RuleList {
	return &RuleList{
		Kind:        k,
		Alphabet:    make(RankedAlphabet),
		Productions: make(map[string][]Production),
	}
}

// Add appends p to the productions of its root symbol and records the
// symbol's rank. In a bottom-up list a rank that disagrees with an earlier
// production of the same symbol is rejected; a top-down list keeps the
// latest rank, since one nonterminal may expand to different widths.
func (rl *RuleList) Add(p Production) error {
	if err := p.validate(rl.Kind); err != nil {
		return err
	}
	if rl.Alphabet == nil {
		rl.Alphabet = make(RankedAlphabet)
	}
	if rl.Productions == nil {
		rl.Productions = make(map[string][]Production)
	}
	if !p.IsFinal() {
		rank := p.rank(rl.Kind)
		if prev, ok := rl.Alphabet[p.Root]; ok && prev != rank && rl.Kind == BottomUp {
			return fmt.Errorf("%s used with rank %d and %d: %w", p.Root, prev, rank, ErrMalformedProduction)
		}
		rl.Alphabet[p.Root] = rank
	}

	p.Left = append([]string(nil), p.Left...)
	p.Right = append([]string(nil), p.Right...)
	rl.Productions[p.Root] = append(rl.Productions[p.Root], p)

	if rl.seen == nil {
		rl.seen = make(map[string]struct{})
		for _, s := range rl.States() {
			rl.seen[s] = struct{}{}
		}
	}
	for _, s := range p.Left {
		rl.seen[s] = struct{}{}
	}
	for _, s := range p.Right {
		rl.seen[s] = struct{}{}
	}
	rl.NumStates = len(rl.seen)
	if _, ok := rl.Productions[FinalSymbol]; ok {
		rl.Alphabet[FinalSymbol] = rl.NumStates
	}

	return nil
}

// States returns the sorted distinct state names used by any production.
func (rl *RuleList) States() []string {
	set := make(map[string]struct{})
	for _, ps := range rl.Productions {
		for _, p := range ps {
			for _, s := range p.Left {
				set[s] = struct{}{}
			}
			for _, s := range p.Right {
				set[s] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// symbols returns every symbol named by the alphabet or the productions, sorted.
func (rl *RuleList) symbols() []string {
	set := make(map[string]struct{}, len(rl.Alphabet)+len(rl.Productions))
	for s := range rl.Alphabet {
		set[s] = struct{}{}
	}
	for s := range rl.Productions {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

func (rl *RuleList) String() string {
	var sb strings.Builder
	sb.WriteString("Number of States: " + strconv.Itoa(rl.NumStates) + "\n")
	sb.WriteString("Grammar Type: " + rl.Kind.String() + "\n")
	sb.WriteString("Ranked Alphabet: " + rl.Alphabet.String() + "\n")
	sb.WriteString("Productions:\n")
	for _, sym := range rl.symbols() {
		for _, p := range rl.Productions[sym] {
			sb.WriteString("  " + p.Format(rl.Kind) + "\n")
		}
	}

	return sb.String()
}
