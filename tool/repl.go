// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/treeviz/bst/viz"
)

type replT struct {
	Root *cobra.Command

	width   int
	speed   float64
	noAnim  bool
	compact bool
}

func newRepl() *replT {
	r := &replT{}
	r.Root = &cobra.Command{
		Use:   "repl",
		Short: "interactive tree visualizer",
		Long: `
Start an interactive session: type operations (insert, delete, search, ...)
and watch the tree redraw after each one. Type "help" for the command list.
`,
		Args: cobra.NoArgs,
		Run:  r.runRepl,
	}
	r.Root.Flags().IntVar(&r.width, "width", 0, "canvas width in columns")
	r.Root.Flags().Float64Var(&r.speed, "speed", 1.0, "animation speed multiplier (0.1 to 4.0)")
	r.Root.Flags().BoolVar(&r.noAnim, "no-anim", false, "disable per-step animation")
	r.Root.Flags().BoolVar(&r.compact, "compact", false, "draw trees as indented listings")
	return r
}

func (r *replT) runRepl(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	s := viz.NewSession(out, &viz.SessionOptions{
		Render:    viz.RenderOptions{Width: r.width, Compact: r.compact},
		Animation: !r.noAnim,
		Speed:     r.speed,
	})
	fmt.Fprintln(out, `binary search tree visualizer; type "help" for commands`)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		quit, err := s.HandleLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return
		}
		fmt.Fprint(out, "> ")
	}
}
