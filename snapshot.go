// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import "fmt"

// SnapshotNode is the positional description of one node, detached from the
// tree that produced it.
type SnapshotNode struct {
	// ID is the node's stable identifier (see Node.ID).
	ID int
	// Label is the key rendered as text.
	Label string
	// Depth is the distance from the root; the root has depth 0.
	Depth int
	// Order is the node's in-order index, starting at 0.
	Order int
	// ParentID is the parent's ID, or -1 for the root.
	ParentID int
	// IsLeft reports whether the node is its parent's left child.
	IsLeft bool
}

// Snapshot is an immutable positional description of a tree, sufficient for
// layout and rendering. Nodes appear in in-order sequence.
type Snapshot struct {
	Nodes  []SnapshotNode
	Height int
}

// Empty reports whether the snapshot describes an empty tree.
func (s Snapshot) Empty() bool { return len(s.Nodes) == 0 }

// Snapshot captures the current shape of the tree. The result does not alias
// the tree and remains valid across later mutations.
func (t *Tree[K]) Snapshot() Snapshot {
	s := Snapshot{Height: t.Height()}
	if t.length > 0 {
		s.Nodes = make([]SnapshotNode, 0, t.length)
	}
	order := 0
	var walk func(n *Node[K], depth int)
	walk = func(n *Node[K], depth int) {
		if n == nil {
			return
		}
		walk(n.left, depth+1)
		sn := SnapshotNode{
			ID:       n.id,
			Label:    fmt.Sprint(n.key),
			Depth:    depth,
			Order:    order,
			ParentID: -1,
		}
		if n.parent != nil {
			sn.ParentID = n.parent.id
			sn.IsLeft = n.isLeftChild()
		}
		order++
		s.Nodes = append(s.Nodes, sn)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)
	return s
}
