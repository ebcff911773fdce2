// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

// DuplicatePolicy controls what Insert does when the key is already present.
type DuplicatePolicy int8

const (
	// DuplicateError causes Insert to return ErrDuplicate, leaving the tree
	// unchanged.
	DuplicateError DuplicatePolicy = iota
	// DuplicateIgnore causes Insert to return the existing node with no
	// error, leaving the tree unchanged.
	DuplicateIgnore
)

// Options holds the optional parameters for a Tree.
type Options struct {
	// OnDuplicate selects the duplicate-key policy for Insert. The default is
	// DuplicateError.
	OnDuplicate DuplicatePolicy

	// Logger is used for non-fatal messages. The default logs to the Go
	// stdlib logs.
	Logger Logger

	// Recorder, if set, receives a Step for every fine-grained action taken
	// by a tree operation (node visits, links, transplants). The
	// visualization layer uses the steps to animate operations. Step emission
	// is a no-op while Recorder is nil.
	Recorder StepRecorder
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	return o
}
