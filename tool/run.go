// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/treeviz/bst/viz"
)

type runT struct {
	Root *cobra.Command

	width   int
	steps   bool
	compact bool
	seed    uint64
}

func newRun() *runT {
	r := &runT{}
	r.Root = &cobra.Command{
		Use:   "run <script>",
		Short: "apply a script of tree operations",
		Long: `
Apply a script of operations (one per line, same commands as the repl) and
print the resulting output. Blank lines and lines starting with # are
skipped. The script stops at the first failing line.
`,
		Args: cobra.ExactArgs(1),
		RunE: r.runScript,
	}
	r.Root.Flags().BoolVar(&r.steps, "steps", false, "print every animation frame")
	r.Root.Flags().IntVar(&r.width, "width", 0, "canvas width in columns")
	r.Root.Flags().BoolVar(&r.compact, "compact", false, "draw trees as indented listings")
	r.Root.Flags().Uint64Var(&r.seed, "seed", 0, "seed for random fills (0 means fixed default)")
	return r
}

func (r *runT) runScript(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	s := viz.NewSession(out, &viz.SessionOptions{
		Render:        viz.RenderOptions{Width: r.width, Compact: r.compact},
		Animation:     r.steps,
		DisablePacing: true,
		Seed:          r.seed,
	})
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fmt.Fprintf(out, "# %s\n", line)
		quit, err := s.HandleLine(line)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", args[0], lineNum)
		}
		if quit {
			break
		}
	}
	return scanner.Err()
}
