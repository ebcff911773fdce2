// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Digest returns a hash of the tree's shape and keys. Two trees have equal
// digests iff a pre-order walk visits equal keys with identical child
// structure. Because deletion uses a deterministic successor rule, inserting
// and then deleting a key leaves the digest unchanged; tests rely on this.
func (t *Tree[K]) Digest() uint64 {
	d := xxhash.New()
	digestNode(d, t.root)
	return d.Sum64()
}

func digestNode[K constraints.Ordered](d *xxhash.Digest, n *Node[K]) {
	if n == nil {
		_, _ = d.Write([]byte{0})
		return
	}
	_, _ = d.Write([]byte{1})
	_, _ = d.WriteString(fmt.Sprint(n.key))
	_, _ = d.Write([]byte{0xff})
	digestNode(d, n.left)
	digestNode(d, n.right)
}
