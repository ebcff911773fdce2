// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tool := New()
	var names []string
	for _, c := range tool.Commands {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{"repl", "run", "demo", "bench"}, names)
}

func writeScript(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))
	return path
}

func TestRunScript(t *testing.T) {
	path := writeScript(t, `
# build a small tree
insert 8 3 10
search 3
traverse

quit
insert 99
`)
	r := newRun()
	var out bytes.Buffer
	r.Root.SetOut(&out)
	r.Root.SetArgs([]string{path})
	require.NoError(t, r.Root.Execute())

	got := out.String()
	require.Contains(t, got, "# insert 8 3 10")
	require.Contains(t, got, "nodes: 3")
	require.Contains(t, got, "found 3  path: [8 3]")
	require.Contains(t, got, "inorder: [3 8 10]")
	// Nothing past quit runs.
	require.NotContains(t, got, "99")
}

func TestRunScriptError(t *testing.T) {
	path := writeScript(t, "insert 1\ninsert x\n")
	r := newRun()
	var out bytes.Buffer
	r.Root.SetOut(&out)
	r.Root.SetErr(&out)
	r.Root.SetArgs([]string{path})
	err := r.Root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "script.txt:2")
	require.Contains(t, err.Error(), `invalid key "x"`)
}

func TestRunScriptSteps(t *testing.T) {
	path := writeScript(t, "insert 5 3\n")
	r := newRun()
	var out bytes.Buffer
	r.Root.SetOut(&out)
	r.Root.SetArgs([]string{"--steps", "--width", "30", path})
	require.NoError(t, r.Root.Execute())
	require.Contains(t, out.String(), "-- link 5 as root")
	require.Contains(t, out.String(), "-- visit 5: go left")
}

func TestRepl(t *testing.T) {
	r := newRepl()
	var out bytes.Buffer
	r.Root.SetOut(&out)
	r.Root.SetIn(bytes.NewBufferString("insert 2 1 3\nbogus\nquit\n"))
	r.Root.SetArgs([]string{"--no-anim"})
	require.NoError(t, r.Root.Execute())

	got := out.String()
	require.Contains(t, got, "> ")
	require.Contains(t, got, "nodes: 3")
	require.Contains(t, got, `error: unknown command "bogus"`)
}

func TestBench(t *testing.T) {
	b := newBench()
	var out bytes.Buffer
	b.Root.SetOut(&out)
	b.Root.SetArgs([]string{"-n", "500", "--keyspace", "256"})
	require.NoError(t, b.Root.Execute())

	got := out.String()
	require.Contains(t, got, "ops/sec")
	require.Contains(t, got, "insert")
	require.Contains(t, got, "nodes over workload")
	require.Contains(t, got, "final:")
}

func TestDemo(t *testing.T) {
	d := newDemo()
	var out bytes.Buffer
	d.Root.SetOut(&out)
	d.Root.SetArgs([]string{"--speed", "4"})
	require.NoError(t, d.Root.Execute())

	got := out.String()
	require.Contains(t, got, "-- link 8 as root")
	require.Contains(t, got, "found 7  path: [8 3 6 7]")
	require.Contains(t, got, "successor 4 replaces 3")
	require.Contains(t, got, "digest")
}
