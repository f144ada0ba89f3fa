// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Demo minimizes one bundled automaton and reports its cases.
func TestRun_Demo(t *testing.T) {
	var out, errb bytes.Buffer
	code := run([]string{"-automaton", "counter-redundant", "-tree", "(a (a (a c)))", "-log-level", "warn"}, &out, &errb)
	require.Equal(t, exitOK, code, errb.String())

	text := out.String()
	assert.Contains(t, text, "== counter-redundant: 3 states -> 2 states")
	assert.Contains(t, text, "(a (a (a c)))")
	assert.NotContains(t, text, "false")
}

// TestRun_AllDemos is the default when nothing is selected.
func TestRun_AllDemos(t *testing.T) {
	var out, errb bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-log-level", "error"}, &out, &errb), errb.String())
	for _, name := range []string{"computation", "counter", "counter-redundant", "rgb", "signed-counter", "signed-counter-double"} {
		assert.Contains(t, out.String(), "== "+name+":")
	}
}

// TestRun_GrammarFileAndPrint reads a grammar from disk and dumps both automata.
func TestRun_GrammarFileAndPrint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaf.txt")
	require.NoError(t, os.WriteFile(path, []byte("c -> p 2\nc -> q 3\n! p 1\n! q 1\n"), 0o600))

	var out, errb bytes.Buffer
	code := run([]string{"-grammar", path, "-print", "-tree", "c", "-log-level", "error"}, &out, &errb)
	require.Equal(t, exitOK, code, errb.String())

	text := out.String()
	assert.Contains(t, text, "2 states -> 1 states")
	assert.Contains(t, text, "-- original: 2 states")
	assert.Contains(t, text, "-- minimized: 1 states")
	assert.Contains(t, text, "(final weights)")
}

// TestRun_Config applies a YAML file and lets flags override it.
func TestRun_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wtamin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo: rgb\nlog_level: error\ntrees: [\"(+ R B)\"]\n"), 0o600))

	var out, errb bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-config", path}, &out, &errb), errb.String())
	assert.Contains(t, out.String(), "== rgb: 4 states -> 2 states")
	assert.Contains(t, out.String(), "(+ R B)")

	out.Reset()
	require.Equal(t, exitOK, run([]string{"-config", path, "-automaton", "computation"}, &out, &errb), errb.String())
	assert.Contains(t, out.String(), "== computation:")
	assert.NotContains(t, out.String(), "== rgb:")
	assert.NotContains(t, out.String(), "(+ R B)")

	out.Reset()
	require.Equal(t, exitOK, run([]string{"-config", path, "-automaton", "counter", "-tree", "(a c)"}, &out, &errb), errb.String())
	assert.Contains(t, out.String(), "(a c)")
	assert.NotContains(t, out.String(), "(+ R B)")
}

// TestRun_AllDemosSkipForeignTrees evaluates an extra tree only where its symbols exist.
func TestRun_AllDemosSkipForeignTrees(t *testing.T) {
	var out, errb bytes.Buffer
	code := run([]string{"-tree", "(+ R (+ G B))", "-log-level", "debug"}, &out, &errb)
	require.Equal(t, exitOK, code, errb.String())

	assert.Contains(t, out.String(), "(+ R (+ G B))")
	assert.Contains(t, out.String(), "== counter:")
	assert.Contains(t, errb.String(), "tree skipped")
	assert.Contains(t, errb.String(), "demo=counter")
	assert.Contains(t, errb.String(), "depth=2")
}

// TestRun_Failures maps errors to exit codes.
func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"stray argument", []string{"extra"}, exitUsage},
		{"exclusive sources", []string{"-automaton", "rgb", "-grammar", "g.txt"}, exitUsage},
		{"bad epsilon", []string{"-eps", "-1"}, exitUsage},
		{"unknown demo", []string{"-automaton", "nope"}, exitError},
		{"missing grammar", []string{"-grammar", filepath.Join(t.TempDir(), "none.txt")}, exitError},
		{"bad tree", []string{"-automaton", "counter", "-tree", "(a"}, exitError},
		{"foreign symbol", []string{"-automaton", "counter", "-tree", "(z c)"}, exitError},
		{"wrong arity", []string{"-automaton", "counter", "-tree", "(a c c)"}, exitError},
		{"no demo reads tree", []string{"-tree", "(z c)"}, exitError},
		{"interactive with many", []string{"-interactive"}, exitError},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, exitError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errb bytes.Buffer
			assert.Equal(t, tc.code, run(tc.args, &out, &errb))
		})
	}
}

// TestNum trims float noise.
func TestNum(t *testing.T) {
	assert.Equal(t, "2", num(2.0000000000004))
	assert.Equal(t, "128064064", num(128064064))
	assert.Equal(t, "0.5", num(0.5))
	assert.Equal(t, "0", num(-1e-12))
}
