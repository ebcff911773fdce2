// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import "github.com/cockroachdb/redact"

// Metrics holds counters describing the tree and the operations applied to
// it since creation.
type Metrics struct {
	// Nodes is the current number of nodes.
	Nodes int64
	// Height is the current height (see Tree.Height).
	Height int64
	// Inserts is the number of successful insertions.
	Inserts int64
	// Duplicates is the number of insertions rejected or ignored because the
	// key was already present.
	Duplicates int64
	// Deletes is the number of successful deletions.
	Deletes int64
	// Searches is the number of Search calls.
	Searches int64
	// Misses is the number of searches and deletions that did not find their
	// key.
	Misses int64
	// Comparisons is the cumulative number of key comparisons performed
	// while descending the tree.
	Comparisons int64
}

// Metrics returns the current metrics.
func (t *Tree[K]) Metrics() Metrics {
	m := t.metrics
	m.Nodes = int64(t.length)
	m.Height = int64(t.Height())
	return m
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("nodes: %d  height: %d\n", m.Nodes, m.Height)
	w.Printf("inserts: %d (%d dup)  deletes: %d  searches: %d (%d miss)\n",
		m.Inserts, m.Duplicates, m.Deletes, m.Searches, m.Misses)
	w.Printf("comparisons: %d", m.Comparisons)
}
