// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// TraversalOrder selects the order in which an Iterator yields keys.
type TraversalOrder int8

const (
	// InOrder yields keys in sorted order.
	InOrder TraversalOrder = iota
	// PreOrder yields each node before its subtrees.
	PreOrder
	// PostOrder yields each node after its subtrees.
	PostOrder
	// LevelOrder yields nodes level by level, left to right.
	LevelOrder
)

// String implements fmt.Stringer.
func (o TraversalOrder) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	default:
		return fmt.Sprintf("unknown(%d)", o)
	}
}

// ParseTraversalOrder parses the string form produced by String.
func ParseTraversalOrder(s string) (TraversalOrder, error) {
	switch s {
	case "inorder", "in":
		return InOrder, nil
	case "preorder", "pre":
		return PreOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	case "levelorder", "level":
		return LevelOrder, nil
	default:
		return 0, errors.Newf("unknown traversal order %q", s)
	}
}

// Iterator walks the tree in a fixed traversal order:
//
//	it := t.NewIter(bst.InOrder)
//	for it.First(); it.Valid(); it.Next() {
//	    fmt.Println(it.Key())
//	}
//
// First restarts the iterator, so a single Iterator may be replayed any
// number of times. The tree must not be mutated while an iterator is
// positioned; there is no invalidation tracking.
type Iterator[K constraints.Ordered] struct {
	t     *Tree[K]
	order TraversalOrder
	cur   *Node[K]
	// queue backs LevelOrder traversal. It is rebuilt lazily on First and
	// retained across restarts to avoid reallocation.
	queue []*Node[K]
	qpos  int
}

// NewIter returns a new iterator over the tree in the given order.
func (t *Tree[K]) NewIter(order TraversalOrder) *Iterator[K] {
	return &Iterator[K]{t: t, order: order}
}

// First moves the iterator to the first node in the traversal order and
// reports whether such a node exists.
func (it *Iterator[K]) First() bool {
	root := it.t.root
	if root == nil {
		it.cur = nil
		return false
	}
	switch it.order {
	case InOrder:
		it.cur = root.min()
	case PreOrder:
		it.cur = root
	case PostOrder:
		it.cur = deepestFirst(root)
	case LevelOrder:
		it.queue = append(it.queue[:0], root)
		it.qpos = 0
		it.cur = root
	}
	return true
}

// Next moves the iterator to the next node and reports whether such a node
// exists. Calling Next on an exhausted iterator is a no-op.
func (it *Iterator[K]) Next() bool {
	if it.cur == nil {
		return false
	}
	switch it.order {
	case InOrder:
		it.cur = inOrderNext(it.cur)
	case PreOrder:
		it.cur = preOrderNext(it.cur)
	case PostOrder:
		it.cur = postOrderNext(it.cur)
	case LevelOrder:
		n := it.queue[it.qpos]
		if n.left != nil {
			it.queue = append(it.queue, n.left)
		}
		if n.right != nil {
			it.queue = append(it.queue, n.right)
		}
		it.qpos++
		if it.qpos < len(it.queue) {
			it.cur = it.queue[it.qpos]
		} else {
			it.cur = nil
		}
	}
	return it.cur != nil
}

// Valid reports whether the iterator is positioned on a node.
func (it *Iterator[K]) Valid() bool { return it.cur != nil }

// Key returns the key at the current position. It must not be called on an
// invalid iterator.
func (it *Iterator[K]) Key() K { return it.cur.key }

// Node returns the node at the current position, or nil.
func (it *Iterator[K]) Node() *Node[K] { return it.cur }

// Close releases the iterator. It exists for symmetry with other iterator
// APIs and always returns nil.
func (it *Iterator[K]) Close() error {
	it.cur = nil
	it.queue = nil
	return nil
}

func inOrderNext[K constraints.Ordered](n *Node[K]) *Node[K] {
	if n.right != nil {
		return n.right.min()
	}
	for n.parent != nil && !n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

func preOrderNext[K constraints.Ordered](n *Node[K]) *Node[K] {
	if n.left != nil {
		return n.left
	}
	if n.right != nil {
		return n.right
	}
	for n.parent != nil {
		if n.isLeftChild() && n.parent.right != nil {
			return n.parent.right
		}
		n = n.parent
	}
	return nil
}

// deepestFirst returns the first node of a post-order walk of the subtree
// rooted at n: keep descending, preferring left children.
func deepestFirst[K constraints.Ordered](n *Node[K]) *Node[K] {
	for {
		if n.left != nil {
			n = n.left
		} else if n.right != nil {
			n = n.right
		} else {
			return n
		}
	}
}

func postOrderNext[K constraints.Ordered](n *Node[K]) *Node[K] {
	p := n.parent
	if p == nil {
		return nil
	}
	if n == p.right || p.right == nil {
		return p
	}
	return deepestFirst(p.right)
}
