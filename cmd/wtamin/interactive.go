// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wta/automaton"
	"github.com/katalvlaran/wta/tree"
	"github.com/manifoldco/promptui"
)

// prompt reads trees until "exit", EOF or interrupt and prints both weights.
func prompt(w io.Writer, original, minimized *automaton.Automaton) error {
	for {
		p := promptui.Prompt{
			Label: "Tree to evaluate (or 'exit' to quit)",
			Validate: func(s string) error {
				s = strings.TrimSpace(s)
				if s == "exit" || s == "" {
					return nil
				}
				_, err := tree.Parse(s)
				return err
			},
		}
		input, err := p.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "exit" {
			return nil
		}
		if input == "" {
			continue
		}

		t, err := tree.Parse(input)
		if err != nil {
			fmt.Fprintln(w, promptui.Styler(promptui.FGRed)(err.Error()))
			continue
		}
		wo, errO := original.Evaluate(t)
		wm, errM := minimized.Evaluate(t)
		if err := errors.Join(errO, errM); err != nil {
			fmt.Fprintln(w, promptui.Styler(promptui.FGRed)(err.Error()))
			continue
		}
		fmt.Fprintln(w, promptui.Styler(promptui.FGCyan)("original:  "+num(wo)))
		fmt.Fprintln(w, promptui.Styler(promptui.FGGreen)("minimized: "+num(wm)))
		fmt.Fprintln(w, promptui.Styler(promptui.FGMagenta)(strings.Repeat("-", 30)))
	}
}
