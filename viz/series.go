// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package viz

import "github.com/guptarohit/asciigraph"

// series holds a metric sampled after every mutating operation, for plotting
// how the tree evolves over a session.
type series struct {
	samples []int64
}

func (s *series) record(v int64) {
	s.samples = append(s.samples, v)
}

func (s *series) empty() bool { return len(s.samples) == 0 }

// values buckets the samples down to at most width points, keeping the
// maximum of each bucket.
func (s *series) values(width int) []float64 {
	if len(s.samples) <= width {
		out := make([]float64, len(s.samples))
		for i, v := range s.samples {
			out[i] = float64(v)
		}
		return out
	}
	out := make([]float64, width)
	for i, v := range s.samples {
		b := i * width / len(s.samples)
		out[b] = max(out[b], float64(v))
	}
	return out
}

// plot returns an ASCII graph of the series with the provided width and
// height determining the number of representable discrete x and y points.
func (s *series) plot(width, height int, caption string) string {
	return asciigraph.Plot(s.values(width),
		asciigraph.Height(height), asciigraph.Caption(caption))
}
