// SPDX-License-Identifier: MIT
package automaton

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FinalSymbol is the reserved pseudo-symbol carrying final weights.
// Its rank is defined as the number of states.
const FinalSymbol = "!"

// Kind selects the direction a rule list was written in.
type Kind int

const (
	// BottomUp rules read children states to a parent state.
	BottomUp Kind = iota
	// TopDown rules expand a parent state into children states.
	TopDown
)

func (k Kind) String() string {
	switch k {
	case BottomUp:
		return "bottom-up"
	case TopDown:
		return "top-down"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel errors.
var (
	// ErrMissingTransition indicates a symbol with no registered transition matrix.
	ErrMissingTransition = errors.New("automaton: missing transition")

	// ErrDimensionMismatch indicates a shape disagreement between a tree,
	// a declared rank and a transition matrix.
	ErrDimensionMismatch = errors.New("automaton: dimension mismatch")

	// ErrMalformedProduction indicates a production that violates its symbol's rank
	// or its own shape.
	ErrMalformedProduction = errors.New("automaton: malformed production")

	// ErrUnknownState indicates a state name outside the state index.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrUnsupportedKind indicates a rule list that cannot be converted.
	ErrUnsupportedKind = errors.New("automaton: unsupported grammar kind")

	// ErrNoStates indicates a rule list that mentions no state at all.
	ErrNoStates = errors.New("automaton: no states")
)

// RankedAlphabet maps each symbol to its rank.
type RankedAlphabet map[string]int

// Symbols returns the symbols in sorted order, FinalSymbol excluded.
func (ra RankedAlphabet) Symbols() []string {
	out := make([]string, 0, len(ra))
	for s := range ra {
		if s != FinalSymbol {
			out = append(out, s)
		}
	}
	sort.Strings(out)

	return out
}

// MaxRank returns the largest rank of a regular symbol, or 0.
func (ra RankedAlphabet) MaxRank() int {
	m := 0
	for s, r := range ra {
		if s != FinalSymbol && r > m {
			m = r
		}
	}

	return m
}

// Clone returns an independent copy.
func (ra RankedAlphabet) Clone() RankedAlphabet {
	out := make(RankedAlphabet, len(ra))
	for s, r := range ra {
		out[s] = r
	}

	return out
}

func (ra RankedAlphabet) String() string {
	keys := make([]string, 0, len(ra))
	for s := range ra {
		keys = append(keys, s)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, s := range keys {
		parts[i] = s + ": " + strconv.Itoa(ra[s])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Production is a single weighted rule. For a final-weight rule Root is
// FinalSymbol, Left holds the one state and Right is empty. For a top-down
// rule Left holds the parent state and Right the children.
type Production struct {
	Root  string
	Left  []string
	Right []string
	Cost  float64
}

// IsFinal reports whether p assigns a final weight.
func (p Production) IsFinal() bool { return p.Root == FinalSymbol }

// rank returns the number of child states p implies under kind k.
func (p Production) rank(k Kind) int {
	if k == TopDown {
		return len(p.Right)
	}

	return len(p.Left)
}

// validate checks p's own shape.
func (p Production) validate(k Kind) error {
	if p.Root == "" {
		return fmt.Errorf("empty root symbol: %w", ErrMalformedProduction)
	}
	if math.IsNaN(p.Cost) || math.IsInf(p.Cost, 0) {
		return fmt.Errorf("%s: non-finite cost: %w", p.Root, ErrMalformedProduction)
	}
	for _, s := range p.Left {
		if s == "" {
			return fmt.Errorf("%s: empty state name: %w", p.Root, ErrMalformedProduction)
		}
	}
	for _, s := range p.Right {
		if s == "" {
			return fmt.Errorf("%s: empty state name: %w", p.Root, ErrMalformedProduction)
		}
	}
	switch {
	case p.IsFinal():
		if len(p.Left) != 1 || len(p.Right) != 0 {
			return fmt.Errorf("final rule needs exactly one state: %w", ErrMalformedProduction)
		}
	case k == BottomUp:
		if len(p.Right) != 1 {
			return fmt.Errorf("%s: need exactly one result state, got %d: %w", p.Root, len(p.Right), ErrMalformedProduction)
		}
	case k == TopDown:
		if len(p.Left) != 1 {
			return fmt.Errorf("%s: need exactly one parent state, got %d: %w", p.Root, len(p.Left), ErrMalformedProduction)
		}
	}

	return nil
}

// Format renders p in the line syntax of kind k.
func (p Production) Format(k Kind) string {
	cost := strconv.FormatFloat(p.Cost, 'g', -1, 64)
	if p.IsFinal() {
		return FinalSymbol + " " + strings.Join(p.Left, " ") + " " + cost
	}
	if k == TopDown {
		if len(p.Right) == 0 {
			return strings.Join(p.Left, " ") + " " + p.Root + " " + cost
		}
		return strings.Join(p.Left, " ") + " -> " + strings.Join(p.Right, " ") + " " + cost
	}
	fields := append([]string{p.Root}, p.Left...)

	return strings.Join(fields, " ") + " -> " + strings.Join(p.Right, " ") + " " + cost
}

func (p Production) String() string { return p.Format(BottomUp) }

// Option configures Convert.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.Default()}
}

// WithLogger routes conversion diagnostics to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("automaton: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
