// SPDX-License-Identifier: MIT
package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wta/automaton"
)

// ErrMalformedProduction is the error every rejected line wraps.
var ErrMalformedProduction = automaton.ErrMalformedProduction

const arrow = "->"

// LineError locates a rejected line.
type LineError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *LineError) Error() string {
	src := e.Source
	if src == "" {
		src = "grammar"
	}

	return fmt.Sprintf("%s:%d: %q: %v", src, e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ReadBottomUp parses a bottom-up grammar.
func ReadBottomUp(r io.Reader) (*automaton.RuleList, error) {
	rl := automaton.NewRuleList(automaton.BottomUp)
	err := scan(r, func(fields []string) error {
		p, err := parseBottomUp(fields)
		if err != nil {
			return err
		}
		return rl.Add(p)
	})
	if err != nil {
		return nil, err
	}

	return rl, nil
}

// ReadBottomUpFile parses the bottom-up grammar stored at path.
func ReadBottomUpFile(path string) (*automaton.RuleList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rl, err := ReadBottomUp(f)
	var le *LineError
	if errors.As(err, &le) {
		le.Source = path
	}

	return rl, err
}

func parseBottomUp(fields []string) (automaton.Production, error) {
	if fields[0] == automaton.FinalSymbol {
		if len(fields) != 3 {
			return automaton.Production{}, fmt.Errorf("want \"! state cost\": %w", ErrMalformedProduction)
		}
		cost, err := parseCost(fields[2])
		if err != nil {
			return automaton.Production{}, err
		}
		return automaton.Production{Root: automaton.FinalSymbol, Left: []string{fields[1]}, Cost: cost}, nil
	}

	at := -1
	for i, f := range fields {
		if f == arrow {
			at = i
			break
		}
	}
	if at < 1 {
		return automaton.Production{}, fmt.Errorf("missing %q: %w", arrow, ErrMalformedProduction)
	}
	if len(fields)-at != 3 {
		return automaton.Production{}, fmt.Errorf("want exactly \"state cost\" after %q: %w", arrow, ErrMalformedProduction)
	}
	cost, err := parseCost(fields[at+2])
	if err != nil {
		return automaton.Production{}, err
	}
	return automaton.Production{
		Root:  fields[0],
		Left:  fields[1:at],
		Right: []string{fields[at+1]},
		Cost:  cost,
	}, nil
}

// ReadTopDown parses a Berkeley grammar and its lexicon into one rule list.
func ReadTopDown(grammar, lexicon io.Reader) (*automaton.RuleList, error) {
	rl := automaton.NewRuleList(automaton.TopDown)

	err := scan(grammar, func(fields []string) error {
		fields = dropArrow(fields)
		if len(fields) < 3 {
			return fmt.Errorf("want \"A_i -> B_j … cost\": %w", ErrMalformedProduction)
		}
		cost, err := parseCost(fields[len(fields)-1])
		if err != nil {
			return err
		}
		left := fields[0]
		root, _, _ := strings.Cut(left, "_")
		return rl.Add(automaton.Production{
			Root:  root,
			Left:  []string{left},
			Right: fields[1 : len(fields)-1],
			Cost:  cost,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}

	err = scan(lexicon, func(fields []string) error {
		if len(fields) < 3 {
			return fmt.Errorf("want \"A word [c0, …]\": %w", ErrMalformedProduction)
		}
		costs, err := parseCostList(strings.Join(fields[2:], " "))
		if err != nil {
			return err
		}
		for i, c := range costs {
			err := rl.Add(automaton.Production{
				Root: fields[1],
				Left: []string{fields[0] + "_" + strconv.Itoa(i)},
				Cost: c,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	return rl, nil
}

// ReadTopDownFiles opens both files and calls ReadTopDown.
func ReadTopDownFiles(grammarPath, lexiconPath string) (*automaton.RuleList, error) {
	g, err := os.Open(grammarPath)
	if err != nil {
		return nil, err
	}
	defer g.Close()
	l, err := os.Open(lexiconPath)
	if err != nil {
		return nil, err
	}
	defer l.Close()

	return ReadTopDown(g, l)
}

// scan feeds the whitespace-split fields of each significant line to fn.
func scan(r io.Reader, fn func(fields []string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := fn(strings.Fields(trimmed)); err != nil {
			return &LineError{Line: n, Text: trimmed, Err: err}
		}
	}

	return sc.Err()
}

func dropArrow(fields []string) []string {
	out := fields[:0:0]
	for _, f := range fields {
		if f != arrow {
			out = append(out, f)
		}
	}

	return out
}

func parseCost(s string) (float64, error) {
	c, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cost %q: %w", s, ErrMalformedProduction)
	}

	return c, nil
}

func parseCostList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("cost list %q: %w", s, ErrMalformedProduction)
	}
	var out []float64
	for _, part := range strings.Split(s[1:len(s)-1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := parseCost(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty cost list: %w", ErrMalformedProduction)
	}

	return out, nil
}
