// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import "fmt"

// StepKind identifies the fine-grained action described by a Step.
type StepKind int8

const (
	// StepVisit is emitted for every node examined while descending the tree.
	StepVisit StepKind = iota
	// StepLink is emitted when a new node is attached to the tree.
	StepLink
	// StepTransplant is emitted when a subtree replaces another during
	// deletion.
	StepTransplant
	// StepUnlink is emitted when a node has been removed from the tree.
	StepUnlink
	// StepFound is emitted when a search locates the key.
	StepFound
	// StepNotFound is emitted when a search exhausts the tree.
	StepNotFound
	// StepDuplicate is emitted when an insert encounters an existing key.
	StepDuplicate
	// StepReset is emitted when the tree is emptied.
	StepReset
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepVisit:
		return "visit"
	case StepLink:
		return "link"
	case StepTransplant:
		return "transplant"
	case StepUnlink:
		return "unlink"
	case StepFound:
		return "found"
	case StepNotFound:
		return "not-found"
	case StepDuplicate:
		return "duplicate"
	case StepReset:
		return "reset"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Mutating reports whether the step describes a structural change. The tree
// is guaranteed to be in a consistent state when a mutating step is emitted,
// so the receiver may take a fresh Snapshot.
func (k StepKind) Mutating() bool {
	switch k {
	case StepLink, StepUnlink, StepReset:
		return true
	default:
		return false
	}
}

// Step describes one fine-grained action taken by a tree operation.
type Step struct {
	Kind StepKind
	// NodeID identifies the node the action concerns; it matches the IDs in
	// Snapshot. -1 when no node applies (e.g. a reset, or a miss in an empty
	// tree).
	NodeID int
	// Desc is a human-readable description of the action.
	Desc string
}

// StepRecorder receives the steps emitted by tree operations.
//
// The recorder must not call back into the tree from RecordStep except to
// take a Snapshot, and then only for mutating steps.
type StepRecorder interface {
	RecordStep(Step)
}

// recording reports whether steps should be emitted. Checked before any
// formatting so that the non-recording path does no allocation.
func (t *Tree[K]) recording() bool {
	return t.opts.Recorder != nil
}

func (t *Tree[K]) record(kind StepKind, nodeID int, format string, args ...any) {
	if !t.recording() {
		return
	}
	t.opts.Recorder.RecordStep(Step{
		Kind:   kind,
		NodeID: nodeID,
		Desc:   fmt.Sprintf(format, args...),
	})
}
