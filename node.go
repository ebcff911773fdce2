// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import "golang.org/x/exp/constraints"

// Node is a node in a Tree. Nodes are owned by the tree that created them; a
// node returned by Delete is detached and keeps only its key.
type Node[K constraints.Ordered] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	parent *Node[K]
	// id is assigned at insertion and stable for the life of the node. It
	// identifies the node in Snapshots and Steps.
	id int
}

// Key returns the node's key.
func (n *Node[K]) Key() K { return n.key }

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Parent returns the parent node, or nil for the root.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// ID returns the node's stable identifier.
func (n *Node[K]) ID() int { return n.id }

func (n *Node[K]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// min returns the leftmost node of the subtree rooted at n.
func (n *Node[K]) min() *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *Node[K]) max() *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *Node[K]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
