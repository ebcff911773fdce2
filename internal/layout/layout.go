// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package layout assigns grid positions to the nodes of a tree snapshot:
// each node's column is derived from its in-order index and its row from its
// depth, with the horizontal slot width scaled to fit the target canvas and
// clamped so labels never overlap.
package layout

import (
	"github.com/treeviz/bst"
)

// Options controls the layout geometry.
type Options struct {
	// Width is the target canvas width in columns. When the tree does not
	// fit, slots shrink down to their minimum and the canvas overflows
	// Width. Zero means DefaultWidth.
	Width int
	// Margin is the number of blank columns on each side. Zero means
	// DefaultMargin.
	Margin int
}

const (
	// DefaultWidth is the canvas width used when Options.Width is zero.
	DefaultWidth = 80
	// DefaultMargin is the side margin used when Options.Margin is zero.
	DefaultMargin = 1

	// rowsPerLevel is the vertical distance between consecutive tree levels:
	// a node row followed by two connector rows.
	rowsPerLevel = 3
)

// Placement is the grid position assigned to one node. Col is the center
// column of the label.
type Placement struct {
	ID    int
	Label string
	Row   int
	Col   int
}

// Plan is the computed layout for a snapshot.
type Plan struct {
	// Nodes holds one placement per snapshot node, in in-order sequence.
	Nodes []Placement
	// Rows and Cols bound the area the plan occupies.
	Rows, Cols int

	byID map[int]int
}

// Get returns the placement for the node with the given ID.
func (p *Plan) Get(id int) (Placement, bool) {
	i, ok := p.byID[id]
	if !ok {
		return Placement{}, false
	}
	return p.Nodes[i], true
}

// Compute lays out the snapshot per the options.
func Compute(s bst.Snapshot, opts Options) Plan {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Margin <= 0 {
		opts.Margin = DefaultMargin
	}
	if s.Empty() {
		return Plan{}
	}

	maxLabel := 0
	for i := range s.Nodes {
		maxLabel = max(maxLabel, len(s.Nodes[i].Label))
	}
	n := len(s.Nodes)

	// Scale the slot width to fit the available columns, clamped so that
	// adjacent labels keep at least one blank column between them.
	baseSlot := maxLabel + 3
	minSlot := maxLabel + 1
	avail := opts.Width - 2*opts.Margin
	slot := baseSlot
	if n*slot > avail {
		slot = avail / n
	}
	slot = max(slot, minSlot)

	// Center the tree horizontally, as the original canvas does.
	left := opts.Margin
	if extra := avail - n*slot; extra > 0 {
		left += extra / 2
	}

	p := Plan{
		Nodes: make([]Placement, n),
		byID:  make(map[int]int, n),
	}
	for i := range s.Nodes {
		sn := &s.Nodes[i]
		pl := Placement{
			ID:    sn.ID,
			Label: sn.Label,
			Row:   sn.Depth * rowsPerLevel,
			Col:   left + sn.Order*slot + slot/2,
		}
		p.Nodes[i] = pl
		p.byID[sn.ID] = i
		p.Rows = max(p.Rows, pl.Row+1)
		p.Cols = max(p.Cols, pl.Col+(len(pl.Label)+1)/2+1)
	}
	return p
}
