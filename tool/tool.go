// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the visualizer's commands: the interactive session,
// script runner, demo, and benchmark.
package tool

import (
	"github.com/spf13/cobra"
)

// T is the container for all of the visualizer commands.
type T struct {
	Commands []*cobra.Command
	repl     *replT
	run      *runT
	demo     *demoT
	bench    *benchT
}

// New creates the visualizer command set.
func New() *T {
	t := &T{}
	t.repl = newRepl()
	t.run = newRun()
	t.demo = newDemo()
	t.bench = newBench()
	t.Commands = []*cobra.Command{
		t.repl.Root,
		t.run.Root,
		t.demo.Root,
		t.bench.Root,
	}
	return t
}
