// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import "github.com/cockroachdb/errors"

// ErrNotFound means that a delete or search call did not find the requested
// key in the tree.
var ErrNotFound = errors.New("bst: not found")

// ErrDuplicate means that an insert call found the key already present and
// the tree is configured with DuplicateError.
var ErrDuplicate = errors.New("bst: duplicate key")
