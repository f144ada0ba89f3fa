// SPDX-License-Identifier: MIT
package automaton_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wta/automaton"
	"github.com/stretchr/testify/require"
)

// rule builds a bottom-up production sym left... -> right cost.
func rule(sym string, right string, cost float64, left ...string) automaton.Production {
	return automaton.Production{Root: sym, Left: left, Right: []string{right}, Cost: cost}
}

// final builds a "!" production.
func final(state string, cost float64) automaton.Production {
	return automaton.Production{Root: automaton.FinalSymbol, Left: []string{state}, Cost: cost}
}

// counterRules counts the a-nodes on the path to the single c leaf, summed over b branches.
func counterRules(t testing.TB) *automaton.RuleList {
	t.Helper()
	rl := automaton.NewRuleList(automaton.BottomUp)
	for _, p := range []automaton.Production{
		rule("c", "q0", 1),
		rule("a", "q0", 1, "q0"),
		rule("a", "q1", 1, "q0"),
		rule("a", "q1", 1, "q1"),
		rule("b", "q0", 1, "q0", "q0"),
		rule("b", "q1", 1, "q0", "q1"),
		rule("b", "q1", 1, "q1", "q0"),
		final("q1", 1),
	} {
		require.NoError(t, rl.Add(p))
	}
	return rl
}

func counter(t testing.TB) *automaton.Automaton {
	t.Helper()
	a, err := automaton.Convert(counterRules(t))
	require.NoError(t, err)
	return a
}

func near(want, got float64) bool {
	return math.Abs(want-got) <= 1e-9*math.Max(1, math.Abs(want))
}
