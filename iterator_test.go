// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst_test

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/treeviz/bst"
)

func buildTree(t *testing.T, keys ...int64) *bst.Tree[int64] {
	t.Helper()
	tree := bst.New[int64](nil)
	for _, k := range keys {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	return tree
}

func collect(tree *bst.Tree[int64], order bst.TraversalOrder) []int64 {
	var keys []int64
	it := tree.NewIter(order)
	defer it.Close()
	for it.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func TestIterOrders(t *testing.T) {
	tree := buildTree(t, 8, 3, 10, 1, 6, 14, 4, 7, 13)
	testCases := []struct {
		order bst.TraversalOrder
		want  []int64
	}{
		{bst.InOrder, []int64{1, 3, 4, 6, 7, 8, 10, 13, 14}},
		{bst.PreOrder, []int64{8, 3, 1, 6, 4, 7, 10, 14, 13}},
		{bst.PostOrder, []int64{1, 4, 7, 6, 3, 13, 14, 10, 8}},
		{bst.LevelOrder, []int64{8, 3, 10, 1, 6, 14, 4, 7, 13}},
	}
	for _, tc := range testCases {
		t.Run(tc.order.String(), func(t *testing.T) {
			require.Equal(t, tc.want, collect(tree, tc.order))
		})
	}
}

func TestIterEmptyAndSingle(t *testing.T) {
	empty := bst.New[int64](nil)
	for _, order := range []bst.TraversalOrder{bst.InOrder, bst.PreOrder, bst.PostOrder, bst.LevelOrder} {
		require.Empty(t, collect(empty, order))
	}
	single := buildTree(t, 42)
	for _, order := range []bst.TraversalOrder{bst.InOrder, bst.PreOrder, bst.PostOrder, bst.LevelOrder} {
		require.Equal(t, []int64{42}, collect(single, order))
	}
}

func TestIterRestart(t *testing.T) {
	tree := buildTree(t, 2, 1, 3)
	it := tree.NewIter(bst.InOrder)
	defer it.Close()
	it.First()
	it.Next()
	require.Equal(t, int64(2), it.Key())
	// First rewinds.
	it.First()
	require.True(t, it.Valid())
	require.Equal(t, int64(1), it.Key())
}

func TestIterNode(t *testing.T) {
	tree := buildTree(t, 2, 1, 3)
	it := tree.NewIter(bst.InOrder)
	defer it.Close()
	it.First()
	n := it.Node()
	require.NotNil(t, n)
	require.Equal(t, int64(1), n.Key())
	require.Equal(t, int64(2), n.Parent().Key())
}

// Random trees: in-order must be sorted, and every order must visit each node
// exactly once.
func TestIterRandomTrees(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(0, seed))
	for trial := 0; trial < 20; trial++ {
		tree := bst.New[int64](&bst.Options{OnDuplicate: bst.DuplicateIgnore})
		for i := 0; i < 1+rng.IntN(100); i++ {
			_, err := tree.Insert(rng.Int64N(1000))
			require.NoError(t, err)
		}
		inOrder := collect(tree, bst.InOrder)
		require.True(t, slices.IsSorted(inOrder))
		require.Len(t, inOrder, tree.Len())
		for _, order := range []bst.TraversalOrder{bst.PreOrder, bst.PostOrder, bst.LevelOrder} {
			keys := collect(tree, order)
			slices.Sort(keys)
			require.Equal(t, inOrder, keys)
		}
	}
}

func TestParseTraversalOrder(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want bst.TraversalOrder
	}{
		{"in", bst.InOrder},
		{"inorder", bst.InOrder},
		{"pre", bst.PreOrder},
		{"post", bst.PostOrder},
		{"level", bst.LevelOrder},
		{"levelorder", bst.LevelOrder},
	} {
		got, err := bst.ParseTraversalOrder(tc.s)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
	_, err := bst.ParseTraversalOrder("sideways")
	require.Error(t, err)
}
