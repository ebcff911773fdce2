// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates expensive self-checks behind the "invariants"
// build tag. Code that validates structural invariants after every mutation
// checks Enabled first so that non-invariants builds pay nothing.
package invariants
