// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/examples"
	"github.com/katalvlaran/wta/tree"
	"github.com/olekukonko/tablewriter"
)

// noWant marks a case without a reference weight.
var noWant = math.NaN()

// num prints x with at most four decimals, trailing zeros dropped.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 4, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}

	return s
}

// renderAutomaton prints one table per symbol: a row per child tuple, a column per result state.
func renderAutomaton(w io.Writer, title string, a *automaton.Automaton) error {
	states := a.States()
	fmt.Fprintf(w, "-- %s: %d states, alphabet %s\n", title, a.NumStates(), a.Alphabet())

	header := append([]string{"children"}, states.Names()...)
	for _, sym := range a.Symbols() {
		k, _ := a.Rank(sym)
		mu, _ := a.Transition(sym)
		fmt.Fprintf(w, "%s (rank %d)\n", sym, k)

		table := tablewriter.NewWriter(w)
		table.Header(header)
		rows, _ := mu.Dims()
		for r := 0; r < rows; r++ {
			line := []string{"(" + strings.Join(states.Tuple(r, k), " ") + ")"}
			for c := 0; c < a.NumStates(); c++ {
				line = append(line, num(mu.At(r, c)))
			}
			if err := table.Append(line); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%s (final weights)\n", automaton.FinalSymbol)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"state", "weight"})
	gamma := a.FinalWeights()
	for i := 0; i < gamma.Len(); i++ {
		if err := table.Append([]string{states.Name(i), num(gamma.AtVec(i))}); err != nil {
			return err
		}
	}

	return table.Render()
}

// renderReport evaluates every case on both automata.
func renderReport(w io.Writer, original, minimized *automaton.Automaton, cases []examples.Case, eps float64) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"tree", "expected", "original", "minimized", "ok"})
	for _, c := range cases {
		t, err := tree.Parse(c.Tree)
		if err != nil {
			return err
		}
		wo, err := original.Evaluate(t)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Tree, err)
		}
		wm, err := minimized.Evaluate(t)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Tree, err)
		}
		expected, ok := "-", within(wo, wm, eps)
		if !math.IsNaN(c.Want) {
			expected = num(c.Want)
			ok = ok && within(c.Want, wo, eps)
		}
		if err := table.Append([]string{c.Tree, expected, num(wo), num(wm), strconv.FormatBool(ok)}); err != nil {
			return err
		}
	}

	return table.Render()
}

func within(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps*math.Max(1, math.Abs(want))
}
