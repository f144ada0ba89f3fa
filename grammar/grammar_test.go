// SPDX-License-Identifier: MIT
package grammar_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/grammar"
	"github.com/katalvlaran/wta/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterText = `
# counts a-nodes
c -> q0 1
a q0 -> q0 1
a q0 -> q1 1
a q1 -> q1 1
b q0 q0 -> q0 1
b q0 q1 -> q1 1
b q1 q0 -> q1 1

! q1 1
`

// TestReadBottomUp_Counter reads a grammar and evaluates through it.
func TestReadBottomUp_Counter(t *testing.T) {
	rl, err := grammar.ReadBottomUp(strings.NewReader(counterText))
	require.NoError(t, err)

	assert.Equal(t, automaton.BottomUp, rl.Kind)
	assert.Equal(t, 2, rl.NumStates)
	assert.Equal(t, automaton.RankedAlphabet{"a": 1, "b": 2, "c": 0, "!": 2}, rl.Alphabet)
	require.Len(t, rl.Productions["b"], 3)
	assert.Equal(t, automaton.Production{Root: "b", Left: []string{"q0", "q1"}, Right: []string{"q1"}, Cost: 1}, rl.Productions["b"][1])

	a, err := automaton.Convert(rl)
	require.NoError(t, err)
	w, err := a.Evaluate(tree.MustParse("(a (b c (a c)))"))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)
}

// TestReadBottomUp_CountsResultOnlyStates includes states that never appear as children.
func TestReadBottomUp_CountsResultOnlyStates(t *testing.T) {
	rl, err := grammar.ReadBottomUp(strings.NewReader("c -> p 1\nc -> q 2\n! q 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, rl.NumStates)
	assert.Equal(t, 2, rl.Alphabet[automaton.FinalSymbol])
}

// TestReadBottomUp_Malformed reports the offending line.
func TestReadBottomUp_Malformed(t *testing.T) {
	cases := map[string]string{
		"no arrow":      "a q0 q0 1",
		"no cost":       "a q0 -> q0",
		"extra field":   "a q0 -> q0 1 2",
		"bad cost":      "a q0 -> q0 one",
		"nan cost":      "a q0 -> q0 NaN",
		"final arity":   "! q0 q1 1",
		"arrow first":   "-> q0 1",
		"rank conflict": "a q0 -> q0 1\na q0 q0 -> q0 1",
	}
	for name, text := range cases {
		_, err := grammar.ReadBottomUp(strings.NewReader(text))
		require.Error(t, err, name)
		assert.ErrorIs(t, err, grammar.ErrMalformedProduction, name)
		assert.ErrorIs(t, err, automaton.ErrMalformedProduction, name)

		var le *grammar.LineError
		require.True(t, errors.As(err, &le), name)
		assert.Equal(t, len(strings.Split(text, "\n")), le.Line, name)
	}
}

// TestReadBottomUpFile_NamesSource prefixes errors with the path.
func TestReadBottomUpFile_NamesSource(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "counter.txt")
	require.NoError(t, os.WriteFile(good, []byte(counterText), 0o600))
	rl, err := grammar.ReadBottomUpFile(good)
	require.NoError(t, err)
	assert.Equal(t, 2, rl.NumStates)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("c -> q 1\nc q\n"), 0o600))
	_, err = grammar.ReadBottomUpFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt:2")

	_, err = grammar.ReadBottomUpFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestReadTopDown_Berkeley reads a tiny grammar and lexicon.
func TestReadTopDown_Berkeley(t *testing.T) {
	g := "S_0 -> NP_0 VP_1 1.0\nNP_0 -> DT_0 NN_1 0.5\nNP_0 -> NN_0 0.5\n"
	l := "DT the [1.0]\nNN dog [0.25, 0.75]\n"

	rl, err := grammar.ReadTopDown(strings.NewReader(g), strings.NewReader(l))
	require.NoError(t, err)

	assert.Equal(t, automaton.TopDown, rl.Kind)
	assert.Equal(t, 2, rl.Alphabet["S"])
	assert.Equal(t, 1, rl.Alphabet["NP"])
	assert.Equal(t, 0, rl.Alphabet["dog"])
	require.Len(t, rl.Productions["dog"], 2)
	assert.Equal(t, []string{"NN_1"}, rl.Productions["dog"][1].Left)
	assert.Equal(t, 0.75, rl.Productions["dog"][1].Cost)
	assert.Equal(t, []string{"DT_0", "NN_0", "NN_1", "NP_0", "S_0", "VP_1"}, rl.States())
	assert.Equal(t, 6, rl.NumStates)
	assert.Contains(t, rl.String(), "NP_0 -> DT_0 NN_1 0.5")
	assert.Contains(t, rl.String(), "Grammar Type: top-down")

	_, err = automaton.Convert(rl)
	assert.ErrorIs(t, err, automaton.ErrUnsupportedKind)
}

// TestReadTopDown_Malformed rejects short lines in either file.
func TestReadTopDown_Malformed(t *testing.T) {
	_, err := grammar.ReadTopDown(strings.NewReader("S_0 1.0\n"), strings.NewReader(""))
	assert.ErrorIs(t, err, grammar.ErrMalformedProduction)

	_, err = grammar.ReadTopDown(strings.NewReader(""), strings.NewReader("NN dog 0.5\n"))
	assert.ErrorIs(t, err, grammar.ErrMalformedProduction)

	_, err = grammar.ReadTopDown(strings.NewReader(""), strings.NewReader("NN dog [x]\n"))
	assert.ErrorIs(t, err, grammar.ErrMalformedProduction)
}
