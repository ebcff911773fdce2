// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bst implements an unbalanced binary search tree with parent links,
// step-recorded operations, and positional snapshots for visualization.
//
// The tree is not safe for concurrent use. All operations are synchronous on
// the caller's goroutine.
package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/treeviz/bst/internal/invariants"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree over ordered keys. For every node, all keys in
// the left subtree sort before the node's key and all keys in the right
// subtree sort after it. Duplicate keys are rejected or ignored per
// Options.OnDuplicate.
//
// The zero value is not usable; use New.
type Tree[K constraints.Ordered] struct {
	root    *Node[K]
	length  int
	nextID  int
	opts    Options
	metrics Metrics
}

// New returns an empty tree using the provided options. opts may be nil.
func New[K constraints.Ordered](opts *Options) *Tree[K] {
	return &Tree[K]{opts: *opts.EnsureDefaults()}
}

// SetRecorder attaches (or, with nil, detaches) a step recorder. See
// Options.Recorder.
func (t *Tree[K]) SetRecorder(r StepRecorder) {
	t.opts.Recorder = r
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree[K]) Len() int { return t.length }

// Height returns the number of nodes on the longest root-to-leaf path: 0 for
// an empty tree, 1 for a lone root.
func (t *Tree[K]) Height() int { return t.root.height() }

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[K]) Min() *Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root.min()
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[K]) Max() *Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root.max()
}

// Insert places key in its sorted position and returns the new node. If the
// key is already present, the existing node is returned along with
// ErrDuplicate under DuplicateError, or no error under DuplicateIgnore.
func (t *Tree[K]) Insert(key K) (*Node[K], error) {
	var parent *Node[K]
	x := t.root
	for x != nil {
		parent = x
		t.metrics.Comparisons++
		if key == x.key {
			t.metrics.Duplicates++
			t.record(StepDuplicate, x.id, "key %v already present", key)
			if t.opts.OnDuplicate == DuplicateIgnore {
				return x, nil
			}
			return x, errors.Wrapf(ErrDuplicate, "key %v", key)
		}
		if key < x.key {
			t.record(StepVisit, x.id, "visit %v: go left", x.key)
			x = x.left
		} else {
			t.record(StepVisit, x.id, "visit %v: go right", x.key)
			x = x.right
		}
	}
	z := &Node[K]{key: key, parent: parent, id: t.nextID}
	t.nextID++
	switch {
	case parent == nil:
		t.root = z
		t.length++
		t.metrics.Inserts++
		t.record(StepLink, z.id, "link %v as root", key)
	case key < parent.key:
		parent.left = z
		t.length++
		t.metrics.Inserts++
		t.record(StepLink, z.id, "link %v as left child of %v", key, parent.key)
	default:
		parent.right = z
		t.length++
		t.metrics.Inserts++
		t.record(StepLink, z.id, "link %v as right child of %v", key, parent.key)
	}
	t.checkInvariants()
	return z, nil
}

// Search descends from the root toward key, returning every node visited (in
// visit order) and the matching node, or nil if the key is absent. The
// returned path feeds the visualization layer's search animation.
func (t *Tree[K]) Search(key K) (path []*Node[K], found *Node[K]) {
	x := t.root
	t.metrics.Searches++
	for x != nil {
		path = append(path, x)
		t.metrics.Comparisons++
		if key == x.key {
			t.record(StepFound, x.id, "found %v", key)
			return path, x
		}
		if key < x.key {
			t.record(StepVisit, x.id, "visit %v: go left", x.key)
			x = x.left
		} else {
			t.record(StepVisit, x.id, "visit %v: go right", x.key)
			x = x.right
		}
	}
	t.metrics.Misses++
	t.record(StepNotFound, -1, "%v is not in the tree", key)
	return path, nil
}

// Contains reports whether key is present.
func (t *Tree[K]) Contains(key K) bool {
	x := t.root
	for x != nil {
		if key == x.key {
			return true
		}
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	return false
}

// Delete removes key from the tree and returns the detached node, or
// ErrNotFound if the key is absent. A node with two children is replaced by
// its in-order successor (the minimum of the right subtree); the rule is
// deterministic so that inserting and then deleting a key always restores the
// previous tree shape.
func (t *Tree[K]) Delete(key K) (*Node[K], error) {
	z := t.root
	for z != nil && z.key != key {
		t.metrics.Comparisons++
		if key < z.key {
			t.record(StepVisit, z.id, "visit %v: go left", z.key)
			z = z.left
		} else {
			t.record(StepVisit, z.id, "visit %v: go right", z.key)
			z = z.right
		}
	}
	if z == nil {
		t.metrics.Misses++
		t.record(StepNotFound, -1, "%v is not in the tree", key)
		return nil, errors.Wrapf(ErrNotFound, "key %v", key)
	}
	switch {
	case z.left == nil:
		t.record(StepTransplant, z.id, "replace %v with its right subtree", z.key)
		t.transplant(z, z.right)
	case z.right == nil:
		t.record(StepTransplant, z.id, "replace %v with its left subtree", z.key)
		t.transplant(z, z.left)
	default:
		y := z.right.min()
		t.record(StepTransplant, y.id, "successor %v replaces %v", y.key, z.key)
		if y.parent != z {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}
	z.left, z.right, z.parent = nil, nil, nil
	t.length--
	t.metrics.Deletes++
	t.record(StepUnlink, z.id, "deleted %v", key)
	t.checkInvariants()
	return z, nil
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// (which may be nil), fixing the parent links.
func (t *Tree[K]) transplant(u, v *Node[K]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u.isLeftChild():
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// Reset empties the tree. All nodes are discarded.
func (t *Tree[K]) Reset() {
	t.root = nil
	t.length = 0
	t.record(StepReset, -1, "tree cleared")
}

// InOrderKeys returns the keys in sorted order.
func (t *Tree[K]) InOrderKeys() []K {
	return t.AppendKeys(InOrder, nil)
}

// AppendKeys appends the keys in the given traversal order to dst and
// returns the result.
func (t *Tree[K]) AppendKeys(order TraversalOrder, dst []K) []K {
	it := t.NewIter(order)
	for it.First(); it.Valid(); it.Next() {
		dst = append(dst, it.Key())
	}
	return dst
}

// CheckOrdered verifies the search-tree invariant, parent-link consistency,
// and the node count. Intended for tests; in invariants builds it also runs
// after every mutation.
func (t *Tree[K]) CheckOrdered() error {
	n, err := checkSubtree(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.length {
		return errors.AssertionFailedf("tree length %d but %d nodes reachable", t.length, n)
	}
	if t.root != nil && t.root.parent != nil {
		return errors.AssertionFailedf("root has a parent")
	}
	return nil
}

func checkSubtree[K constraints.Ordered](n *Node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, errors.AssertionFailedf("key %v out of bounds: not above %v", n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, errors.AssertionFailedf("key %v out of bounds: not below %v", n.key, *hi)
	}
	if n.left != nil && n.left.parent != n {
		return 0, errors.AssertionFailedf("bad parent link on left child of %v", n.key)
	}
	if n.right != nil && n.right.parent != n {
		return 0, errors.AssertionFailedf("bad parent link on right child of %v", n.key)
	}
	nl, err := checkSubtree(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	nr, err := checkSubtree(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return nl + nr + 1, nil
}

func (t *Tree[K]) checkInvariants() {
	if invariants.Enabled {
		if err := t.CheckOrdered(); err != nil {
			panic(err)
		}
	}
}
