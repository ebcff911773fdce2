// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package viz is the view/controller layer of the visualizer: it renders
// tree snapshots as ASCII diagrams and drives animated, interactive sessions
// over a Tree.
package viz

import (
	"strings"

	"github.com/treeviz/bst"
	"github.com/treeviz/bst/internal/ascii"
	"github.com/treeviz/bst/internal/layout"
	"github.com/xlab/treeprint"
)

// RenderOptions controls how snapshots are drawn.
type RenderOptions struct {
	// Width is the target canvas width in columns; zero means
	// layout.DefaultWidth.
	Width int
	// Compact draws an indented branch listing instead of the
	// two-dimensional canvas.
	Compact bool
}

// Renderer draws tree snapshots. A Renderer is reused across frames; it is
// not safe for concurrent use.
type Renderer struct {
	opts  RenderOptions
	board ascii.Board
}

// NewRenderer returns a Renderer with the given options.
func NewRenderer(opts RenderOptions) *Renderer {
	if opts.Width <= 0 {
		opts.Width = layout.DefaultWidth
	}
	return &Renderer{
		opts:  opts,
		board: ascii.Make(opts.Width, 8),
	}
}

// Render draws the snapshot. Nodes whose IDs appear in highlight are drawn
// in brackets (the canvas analog of the original's node flash). The result
// has no trailing newline.
func (r *Renderer) Render(s bst.Snapshot, highlight map[int]bool) string {
	if s.Empty() {
		return "(empty tree)"
	}
	if r.opts.Compact {
		return renderCompact(s, highlight)
	}
	plan := layout.Compute(s, layout.Options{Width: r.opts.Width})
	r.board.Reset(plan.Cols)
	for _, pl := range plan.Nodes {
		label := pl.Label
		if highlight[pl.ID] {
			label = "[" + label + "]"
		}
		r.board.WriteCentered(pl.Row, pl.Col, label)
	}
	for i := range s.Nodes {
		sn := &s.Nodes[i]
		if sn.ParentID < 0 {
			continue
		}
		pp, _ := plan.Get(sn.ParentID)
		pl, _ := plan.Get(sn.ID)
		r.board.Edge(pp.Row, pp.Col, pl.Row, pl.Col)
	}
	return r.board.String()
}

// renderCompact produces an indented branch listing via treeprint. Children
// are prefixed with L: and R: so that single-child nodes stay unambiguous.
func renderCompact(s bst.Snapshot, highlight map[int]bool) string {
	type childPair struct {
		left, right *bst.SnapshotNode
	}
	children := make(map[int]*childPair, len(s.Nodes))
	var root *bst.SnapshotNode
	for i := range s.Nodes {
		sn := &s.Nodes[i]
		if sn.ParentID < 0 {
			root = sn
			continue
		}
		cp := children[sn.ParentID]
		if cp == nil {
			cp = &childPair{}
			children[sn.ParentID] = cp
		}
		if sn.IsLeft {
			cp.left = sn
		} else {
			cp.right = sn
		}
	}

	label := func(sn *bst.SnapshotNode, prefix string) string {
		if highlight[sn.ID] {
			return prefix + "[" + sn.Label + "]"
		}
		return prefix + sn.Label
	}

	var add func(tp treeprint.Tree, sn *bst.SnapshotNode)
	add = func(tp treeprint.Tree, sn *bst.SnapshotNode) {
		cp := children[sn.ID]
		if cp == nil {
			return
		}
		if cp.left != nil {
			add(tp.AddBranch(label(cp.left, "L: ")), cp.left)
		}
		if cp.right != nil {
			add(tp.AddBranch(label(cp.right, "R: ")), cp.right)
		}
	}

	tp := treeprint.NewWithRoot(label(root, ""))
	add(tp, root)
	return strings.TrimRight(tp.String(), "\n")
}
