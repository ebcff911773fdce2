// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ghemawat/stream"
	"github.com/stretchr/testify/require"
)

type discardLogger struct{}

func (discardLogger) Infof(format string, args ...interface{})  {}
func (discardLogger) Fatalf(format string, args ...interface{}) {}

func newTestSession(out *bytes.Buffer, animation bool) *Session {
	return NewSession(out, &SessionOptions{
		Render:        RenderOptions{Width: 40},
		Animation:     animation,
		DisablePacing: true,
		Logger:        discardLogger{},
	})
}

// frameHeaders extracts the "-- <desc>" lines from session output.
func frameHeaders(t *testing.T, out []byte) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, stream.Run(stream.Sequence(
		stream.ReadLines(bytes.NewReader(out)),
		stream.Grep(`^-- `),
		stream.WriteLines(&buf),
	)))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

func TestSessionInsertFrames(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, true /* animation */)
	require.NoError(t, s.Insert(5, 3))
	require.Equal(t, []string{
		"-- link 5 as root",
		"-- visit 5: go left",
		"-- link 3 as left child of 5",
	}, frameHeaders(t, out.Bytes()))
	require.Contains(t, out.String(), "nodes: 2  height: 2  inorder: [3 5]")

	frames := s.Frames()
	require.Len(t, frames, 3)
	// The final frame shows the finished insertion with the new node
	// highlighted.
	require.Contains(t, frames[2].View, "[3]")
}

func TestSessionAnimationOff(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false /* animation */)
	require.NoError(t, s.Insert(5, 3, 8))
	// Only the final frame of the batch is drawn.
	require.Equal(t, []string{"-- link 8 as right child of 5"}, frameHeaders(t, out.Bytes()))
}

func TestSessionDuplicates(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	require.NoError(t, s.Insert(5, 3, 5, 3))
	require.Contains(t, out.String(), "already present: [5 3]")
	require.Equal(t, 2, s.Tree().Len())
}

func TestSessionDeleteAndSearch(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	require.NoError(t, s.Insert(8, 3, 10, 1, 6))

	out.Reset()
	s.Search(6)
	require.Contains(t, out.String(), "found 6  path: [8 3 6]")

	out.Reset()
	s.Search(7)
	require.Contains(t, out.String(), "7 not found  path: [8 3 6]")

	out.Reset()
	require.NoError(t, s.Delete(3))
	require.Contains(t, out.String(), "nodes: 4  height: 3  inorder: [1 6 8 10]")

	out.Reset()
	require.NoError(t, s.Delete(42))
	require.Contains(t, out.String(), "42 is not in the tree")
	require.Equal(t, 4, s.Tree().Len())
}

func TestSessionRandom(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	require.NoError(t, s.Random(15))
	require.Equal(t, 15, s.Tree().Len())
	require.NotContains(t, out.String(), "already present")

	// Random avoids the keys already in the tree, so a second fill adds
	// exactly n more.
	require.NoError(t, s.Random(15))
	require.Equal(t, 30, s.Tree().Len())
	require.NotContains(t, out.String(), "already present")

	require.Error(t, s.Random(0))
}

func TestSessionHandleLine(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	for _, line := range []string{
		"insert 8, 3, 10",
		"i 1 6",
		"search 6",
		"t pre",
		"print",
		"compact",
		"stats",
		"plot",
		"d 3",
		"clear",
	} {
		quit, err := s.HandleLine(line)
		require.NoError(t, err, "line %q", line)
		require.False(t, quit)
	}
	got := out.String()
	require.Contains(t, got, "found 6  path: [8 3 6]")
	require.Contains(t, got, "preorder: [8 3 1 6 10]")
	require.Contains(t, got, "└── R: 10")
	require.Contains(t, got, "digest")
	require.Contains(t, got, "nodes per operation")
	require.Contains(t, got, "(empty tree)")

	quit, err := s.HandleLine("quit")
	require.NoError(t, err)
	require.True(t, quit)
}

func TestSessionHandleLineErrors(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	for _, tc := range []struct {
		line   string
		errStr string
	}{
		{"insert", "expected at least one key"},
		{"insert x", `invalid key "x"`},
		{"delete 1 2", `unexpected argument "2"`},
		{"traverse sideways", "unknown traversal order"},
		{"anim maybe", "anim requires on or off"},
		{"frobnicate", `unknown command "frobnicate"`},
	} {
		_, err := s.HandleLine(tc.line)
		require.Error(t, err, "line %q", tc.line)
		require.Contains(t, err.Error(), tc.errStr)
	}
	// Blank lines are ignored.
	quit, err := s.HandleLine("   ")
	require.NoError(t, err)
	require.False(t, quit)
}

func TestSessionSpeedAndAnim(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, &SessionOptions{
		Animation: true,
		FrameRate: 1000,
		Logger:    discardLogger{},
	})
	s.SetSpeed(2.0)
	require.Contains(t, out.String(), "animation speed: 2.00x")
	s.SetSpeed(99)
	require.Contains(t, out.String(), "animation speed: 4.00x")
	s.SetSpeed(0.0001)
	require.Contains(t, out.String(), "animation speed: 0.10x")
	s.SetAnimation(false)
	require.Contains(t, out.String(), "animation off")
}

func TestSessionClear(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	require.NoError(t, s.Insert(1, 2, 3))
	s.Clear()
	require.Equal(t, 0, s.Tree().Len())
	require.Contains(t, out.String(), "nodes: 0  height: 0  inorder: []")
}

func TestSessionHelp(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, false)
	s.Help()
	for _, cmd := range []string{"insert", "delete", "search", "traverse", "random", "speed", "quit"} {
		require.Contains(t, out.String(), cmd)
	}
}

func TestSeriesValues(t *testing.T) {
	var sr series
	require.True(t, sr.empty())
	for i := int64(1); i <= 10; i++ {
		sr.record(i)
	}
	require.False(t, sr.empty())
	require.Equal(t, []float64{1, 2, 3}, (&series{samples: []int64{1, 2, 3}}).values(10))
	// Downsampling keeps the bucket maximum.
	require.Equal(t, []float64{2, 4, 6, 8, 10}, sr.values(5))
}
