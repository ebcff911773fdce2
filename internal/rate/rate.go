// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rate provides the frame pacer for animation playback.
package rate

import (
	"time"

	"github.com/cockroachdb/tokenbucket"
)

// A Limiter paces events using a token bucket of burst size b, refilled at
// rate r tokens per second. The animator draws one token per frame, so the
// rate is the frame rate.
type Limiter struct {
	tb    tokenbucket.TokenBucket
	rate  float64
	burst float64

	sleepFn func(d time.Duration)
}

// NewLimiter returns a new Limiter that allows events up to rate r and
// permits bursts of at most b tokens.
func NewLimiter(r float64, b float64) *Limiter {
	l := &Limiter{}
	l.tb.Init(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(b))
	l.rate = r
	l.burst = b
	return l
}

// NewLimiterWithCustomTime returns a new Limiter using the given functions
// to retrieve the current time and to sleep (useful for testing).
func NewLimiterWithCustomTime(
	r float64, b float64, nowFn func() time.Time, sleepFn func(d time.Duration),
) *Limiter {
	l := &Limiter{}
	l.tb.InitWithNowFn(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(b), nowFn)
	l.rate = r
	l.burst = b
	l.sleepFn = sleepFn
	return l
}

// Wait sleeps until n tokens are available.
func (l *Limiter) Wait(n float64) {
	for {
		ok, d := l.tb.TryToFulfill(tokenbucket.Tokens(n))
		if ok {
			return
		}
		if l.sleepFn != nil {
			l.sleepFn(d)
		} else {
			time.Sleep(d)
		}
	}
}

// Rate returns the current rate limit.
func (l *Limiter) Rate() float64 {
	return l.rate
}

// SetRate updates the rate limit, preserving the burst.
func (l *Limiter) SetRate(r float64) {
	l.tb.UpdateConfig(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(l.burst))
	l.rate = r
}
