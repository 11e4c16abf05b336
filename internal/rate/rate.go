// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rate limits how often commands are submitted to a structure.
package rate // import "github.com/cockroachdb/structviz/internal/rate"

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/tokenbucket"
)

// A Limiter admits up to r commands per second with bursts of at most b
// commands. It is a token bucket that starts full.
//
// Limiter is thread-safe.
type Limiter struct {
	mu struct {
		sync.Mutex
		tb    tokenbucket.TokenBucket
		rate  float64
		burst float64
	}
}

// NewLimiter returns a new Limiter admitting r commands per second, with
// bursts of at most b.
func NewLimiter(r, b float64) *Limiter {
	l := &Limiter{}
	l.mu.tb.Init(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(b))
	l.mu.rate = r
	l.mu.burst = b
	return l
}

// NewLimiterWithClock is like NewLimiter but reads the current time from
// nowFn.
func NewLimiterWithClock(r, b float64, nowFn func() time.Time) *Limiter {
	l := &Limiter{}
	l.mu.tb.InitWithNowFn(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(b), nowFn)
	l.mu.rate = r
	l.mu.burst = b
	return l
}

// Allow admits n commands if enough tokens are available. Otherwise it
// returns false and how long to wait before trying again.
func (l *Limiter) Allow(n float64) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mu.tb.TryToFulfill(tokenbucket.Tokens(n))
}

// Wait blocks until n commands are admitted or the context is done.
func (l *Limiter) Wait(ctx context.Context, n float64) error {
	for {
		ok, d := l.Allow(n)
		if ok {
			return nil
		}
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Rate returns the current rate limit.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mu.rate
}

// SetRate updates the rate limit. The burst is unchanged.
func (l *Limiter) SetRate(r float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mu.tb.UpdateConfig(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(l.mu.burst))
	l.mu.rate = r
}
