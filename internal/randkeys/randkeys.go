// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randkeys generates random keys for the visualizer's random-fill
// action and for benchmark workloads.
package randkeys

import (
	"math/rand/v2"

	xrand "golang.org/x/exp/rand"
)

// NewRand creates a new random number generator with the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(0, seed))
}

// Unique returns up to n distinct keys drawn uniformly from
// [0, max(100, 20n)), excluding any key in exclude. When fewer than n
// candidates exist, all of them are returned. The candidate pool grows with
// n so that random fills stay sparse.
func Unique(rng *rand.Rand, n int, exclude map[int64]bool) []int64 {
	hi := int64(100)
	if v := int64(20 * n); v > hi {
		hi = v
	}
	candidates := make([]int64, 0, hi)
	for k := int64(0); k < hi; k++ {
		if !exclude[k] {
			candidates = append(candidates, k)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// Zipf generates Zipf-distributed keys over [0, max), skewing toward small
// keys. Used by the bench workload to model hot keys.
type Zipf struct {
	z *xrand.Zipf
}

// NewZipf returns a Zipf key generator with exponent s over [0, max).
func NewZipf(seed uint64, s float64, max uint64) *Zipf {
	rng := xrand.New(xrand.NewSource(seed))
	return &Zipf{z: xrand.NewZipf(rng, s, 1, max-1)}
}

// Key returns the next key.
func (z *Zipf) Key() int64 {
	return int64(z.z.Uint64())
}
