// SPDX-License-Identifier: MIT

// Command wtamin minimizes weighted tree automata and compares the weights
// of the original and minimized automaton on a set of trees.
//
// Usage:
//
//	wtamin [-automaton NAME|all] [-grammar FILE] [-tree EXPR]... [flags]
//
// Without -automaton or -grammar every bundled demo is run.
//
// Flags:
//
//	-automaton    bundled demo (see package examples) or all
//	-grammar      bottom-up grammar file
//	-tree         tree to evaluate, e.g. "(a (b c c))"; repeatable
//	-eps          numerical rank tolerance
//	-config       YAML configuration file
//	-log-level    debug, info, warn or error
//	-print        print the transition matrices of both automata
//	-interactive  read trees from a prompt after the report
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/examples"
	"github.com/katalvlaran/wta/grammar"
	"github.com/katalvlaran/wta/internal/config"
	"github.com/katalvlaran/wta/minimize"
	"github.com/katalvlaran/wta/tree"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type treeList []string

func (l *treeList) String() string     { return strings.Join(*l, "; ") }
func (l *treeList) Set(s string) error { *l = append(*l, s); return nil }

// job is one automaton to minimize with the trees to evaluate on it.
type job struct {
	name  string
	a     *automaton.Automaton
	cases []examples.Case
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wtamin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		demo        = fs.String("automaton", "", "bundled demo: "+strings.Join(examples.Names(), ", ")+" or all")
		grammarPath = fs.String("grammar", "", "bottom-up grammar file")
		eps         = fs.Float64("eps", 0, "numerical rank tolerance (default from config, else 1e-5)")
		configPath  = fs.String("config", "", "YAML configuration file")
		logLevel    = fs.String("log-level", "", "debug, info, warn or error")
		printMats   = fs.Bool("print", false, "print the transition matrices of both automata")
		interactive = fs.Bool("interactive", false, "read trees from a prompt after the report")
		trees       treeList
	)
	fs.Var(&trees, "tree", "tree to evaluate; repeatable")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "wtamin: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(stderr, "wtamin: %v\n", err)
			return exitError
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "automaton":
			cfg.Demo, cfg.Grammar, cfg.Trees = *demo, "", nil
		case "grammar":
			cfg.Grammar, cfg.Demo, cfg.Trees = *grammarPath, "", nil
		case "eps":
			cfg.Epsilon = *eps
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	cfg.Trees = append(cfg.Trees, trees...)
	if *demo != "" && *grammarPath != "" {
		fmt.Fprintln(stderr, "wtamin: -automaton and -grammar are exclusive")
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "wtamin: %v\n", err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	if err := execute(cfg, logger, stdout, *printMats, *interactive); err != nil {
		logger.Error("wtamin failed", slog.String("error", err.Error()))
		return exitError
	}

	return exitOK
}

func execute(cfg config.Config, logger *slog.Logger, stdout io.Writer, printMats, interactive bool) error {
	jobs, err := collect(cfg, logger)
	if err != nil {
		return err
	}
	if interactive && len(jobs) != 1 {
		return fmt.Errorf("-interactive needs a single automaton, got %d", len(jobs))
	}

	opts := []minimize.Option{minimize.WithEpsilon(cfg.Epsilon), minimize.WithLogger(logger)}
	for _, j := range jobs {
		m, err := minimize.MinimizeContext(context.Background(), j.a, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", j.name, err)
		}
		fmt.Fprintf(stdout, "== %s: %d states -> %d states\n", j.name, j.a.NumStates(), m.NumStates())
		if printMats {
			if err := renderAutomaton(stdout, "original", j.a); err != nil {
				return err
			}
			if err := renderAutomaton(stdout, "minimized", m); err != nil {
				return err
			}
		}
		if err := renderReport(stdout, j.a, m, j.cases, cfg.Epsilon); err != nil {
			return fmt.Errorf("%s: %w", j.name, err)
		}
		if interactive {
			return prompt(stdout, j.a, m)
		}
	}

	return nil
}

// collect resolves the automata selected by cfg.
//
// Extra trees must fit a single selected automaton. When several demos run,
// each demo only receives the extra trees its alphabet can read.
func collect(cfg config.Config, logger *slog.Logger) ([]job, error) {
	extra := make([]tree.Tree, 0, len(cfg.Trees))
	for _, s := range cfg.Trees {
		t, err := tree.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("-tree %q: %w", s, err)
		}
		extra = append(extra, t)
	}

	if cfg.Grammar != "" {
		rl, err := grammar.ReadBottomUpFile(cfg.Grammar)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Convert(rl, automaton.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Grammar, err)
		}
		cases, err := extraCases(a, extra, true, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Grammar, err)
		}
		return []job{{name: cfg.Grammar, a: a, cases: cases}}, nil
	}

	demos := examples.All()
	single := cfg.Demo != "" && cfg.Demo != "all"
	if single {
		d, err := examples.Lookup(cfg.Demo)
		if err != nil {
			return nil, err
		}
		demos = []examples.Demo{d}
	}
	jobs := make([]job, 0, len(demos))
	attached := 0
	for _, d := range demos {
		a, err := d.Load(automaton.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		more, err := extraCases(a, extra, single, logger.With(slog.String("demo", d.Name)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		attached += len(more)
		cases := append(append([]examples.Case(nil), d.Cases...), more...)
		jobs = append(jobs, job{name: d.Name, a: a, cases: cases})
	}
	if len(extra) > 0 && attached == 0 {
		return nil, fmt.Errorf("no bundled automaton reads the given trees: %w", automaton.ErrMissingTransition)
	}

	return jobs, nil
}

// extraCases keeps the trees whose symbols and arities a declares. With
// strict set, the first foreign tree is an error instead of being skipped.
func extraCases(a *automaton.Automaton, trees []tree.Tree, strict bool, logger *slog.Logger) ([]examples.Case, error) {
	out := make([]examples.Case, 0, len(trees))
	for _, t := range trees {
		if err := readable(a, t); err != nil {
			if strict {
				return nil, fmt.Errorf("-tree %q: %w", t, err)
			}
			logger.Debug("tree skipped",
				slog.String("tree", t.String()),
				slog.Int("size", tree.Size(t)),
				slog.Int("depth", tree.Depth(t)),
				slog.String("reason", err.Error()))
			continue
		}
		out = append(out, examples.Case{Tree: t.String(), Want: noWant})
	}

	return out, nil
}

// readable reports the first symbol of t that a has no transition for.
func readable(a *automaton.Automaton, t tree.Tree) error {
	used := tree.Symbols(t)
	syms := make([]string, 0, len(used))
	for sym := range used {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	for _, sym := range syms {
		k, ok := a.Rank(sym)
		if !ok || sym == automaton.FinalSymbol {
			return fmt.Errorf("%q: %w", sym, automaton.ErrMissingTransition)
		}
		if k != used[sym] {
			return fmt.Errorf("%q has rank %d, used with %d children: %w", sym, k, used[sym], automaton.ErrDimensionMismatch)
		}
	}

	return nil
}
