// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command bstviz visualizes binary search tree operations in the terminal.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/treeviz/bst/tool"
)

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:   "bstviz [command] (flags)",
		Short: "binary search tree visualizer",
		Long: `
bstviz draws binary search trees and animates insertions, deletions, and
searches. Run with no arguments for an interactive session.
`,
	}

	cobra.EnableCommandSorting = false
	t := tool.New()
	rootCmd.AddCommand(t.Commands...)

	// No subcommand starts the interactive session.
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"repl"}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
