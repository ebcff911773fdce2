// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardWrite(t *testing.T) {
	b := Make(10, 3)
	b.WriteString(0, 2, "hello")
	b.Set(1, 0, '*')
	require.Equal(t, "  hello\n*", b.String())
}

func TestBoardWriteCentered(t *testing.T) {
	b := Make(10, 1)
	b.WriteCentered(0, 4, "abc")
	require.Equal(t, "   abc", b.String())
	// Clamped at column 0 when the label would spill off the left edge.
	b.Reset(10)
	b.WriteCentered(0, 0, "abc")
	require.Equal(t, "abc", b.String())
}

func TestBoardEdge(t *testing.T) {
	b := Make(10, 4)
	b.WriteCentered(0, 5, "8")
	b.Edge(0, 5, 3, 2)
	b.WriteCentered(3, 2, "3")
	require.Equal(t, "     8\n    /\n   /\n  3", b.String())

	b.Reset(10)
	b.Edge(0, 2, 3, 5)
	require.Equal(t, "\n   \\\n    \\", b.String())

	b.Reset(10)
	b.Edge(0, 4, 2, 4)
	require.Equal(t, "\n    |", b.String())
}

func TestBoardGrow(t *testing.T) {
	b := Make(4, 1)
	b.WriteString(0, 0, "abcd")
	// Writing past the current width reflows existing rows.
	b.WriteString(1, 6, "x")
	require.Equal(t, "abcd\n      x", b.String())
	b.Set(0, 6, 'y')
	require.Equal(t, "abcd  y\n      x", b.String())
}

func TestBoardRenderIndent(t *testing.T) {
	b := Make(4, 2)
	b.WriteString(0, 0, "ab")
	b.WriteString(1, 1, "c")
	require.Equal(t, "  ab\n   c", b.Render("  "))
}
