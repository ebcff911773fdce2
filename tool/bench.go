// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/treeviz/bst"
	"github.com/treeviz/bst/internal/randkeys"
)

type benchT struct {
	Root *cobra.Command

	ops      int
	keyspace uint64
	zipf     float64
	seed     uint64
}

func newBench() *benchT {
	b := &benchT{}
	b.Root = &cobra.Command{
		Use:   "bench",
		Short: "randomized workload with latency percentiles",
		Long: `
Apply a randomized insert/search/delete workload with Zipf-distributed keys
and report per-operation latency percentiles and the node count over time.
`,
		Args: cobra.NoArgs,
		RunE: b.runBench,
	}
	b.Root.Flags().IntVarP(&b.ops, "num-ops", "n", 100000, "number of operations")
	b.Root.Flags().Uint64Var(&b.keyspace, "keyspace", 1<<16, "number of distinct keys")
	b.Root.Flags().Float64Var(&b.zipf, "zipf", 1.1, "Zipf exponent for key selection (>1)")
	b.Root.Flags().Uint64Var(&b.seed, "seed", 1, "random seed")
	return b
}

const (
	minLatency = time.Nanosecond
	maxLatency = time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
}

func (b *benchT) runBench(cmd *cobra.Command, args []string) error {
	tree := bst.New[int64](&bst.Options{OnDuplicate: bst.DuplicateIgnore})
	gen := randkeys.NewZipf(b.seed, b.zipf, b.keyspace)
	rng := randkeys.NewRand(b.seed)

	hists := map[string]*hdrhistogram.Histogram{
		"insert": newHistogram(),
		"search": newHistogram(),
		"delete": newHistogram(),
	}
	var nodeCounts []float64
	sampleEvery := max(b.ops/60, 1)

	start := time.Now()
	for i := 0; i < b.ops; i++ {
		key := gen.Key()
		var name string
		opStart := time.Now()
		switch r := rng.IntN(10); {
		case r < 5:
			name = "insert"
			_, _ = tree.Insert(key)
		case r < 8:
			name = "search"
			_, _ = tree.Search(key)
		default:
			name = "delete"
			_, _ = tree.Delete(key)
		}
		elapsed := time.Since(opStart)
		if err := hists[name].RecordValue(elapsed.Nanoseconds()); err != nil {
			return err
		}
		if i%sampleEvery == 0 {
			nodeCounts = append(nodeCounts, float64(tree.Len()))
		}
	}
	total := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d ops in %s (%.0f ops/sec)\n\n",
		b.ops, total.Round(time.Millisecond), float64(b.ops)/total.Seconds())

	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"op", "count", "p50 (µs)", "p95 (µs)", "p99 (µs)", "max (µs)"})
	for _, name := range []string{"insert", "search", "delete"} {
		h := hists[name]
		tw.Append([]string{
			name,
			fmt.Sprint(h.TotalCount()),
			micros(h.ValueAtQuantile(50)),
			micros(h.ValueAtQuantile(95)),
			micros(h.ValueAtQuantile(99)),
			micros(h.Max()),
		})
	}
	tw.Render()

	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(nodeCounts,
		asciigraph.Height(8), asciigraph.Caption("nodes over workload")))
	fmt.Fprintf(out, "\nfinal: %d nodes, height %d\n", tree.Len(), tree.Height())
	return nil
}

func micros(ns int64) string {
	return fmt.Sprintf("%.1f", float64(ns)/1e3)
}
