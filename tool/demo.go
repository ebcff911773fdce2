// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"github.com/spf13/cobra"
	"github.com/treeviz/bst/viz"
)

type demoT struct {
	Root *cobra.Command

	width int
	speed float64
}

// demoKeys is the showcase sequence: a reasonably bushy tree whose
// deletions exercise the one-child and two-child cases.
var demoKeys = []int64{8, 3, 10, 1, 6, 14, 4, 7, 13}

func newDemo() *demoT {
	d := &demoT{}
	d.Root = &cobra.Command{
		Use:   "demo",
		Short: "animated demonstration",
		Long: `
Build a small tree step by step, search for a key, and delete an interior
node, animating every step.
`,
		Args: cobra.NoArgs,
		RunE: d.runDemo,
	}
	d.Root.Flags().IntVar(&d.width, "width", 0, "canvas width in columns")
	d.Root.Flags().Float64Var(&d.speed, "speed", 1.0, "animation speed multiplier (0.1 to 4.0)")
	return d
}

func (d *demoT) runDemo(cmd *cobra.Command, args []string) error {
	s := viz.NewSession(cmd.OutOrStdout(), &viz.SessionOptions{
		Render:    viz.RenderOptions{Width: d.width},
		Animation: true,
		Speed:     d.speed,
	})
	if err := s.Insert(demoKeys...); err != nil {
		return err
	}
	s.Search(7)
	if err := s.Delete(3); err != nil {
		return err
	}
	s.Stats()
	return nil
}
