// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"sync/atomic"
	"time"
)

// ImmediateClock is a clock whose Sleep returns immediately. It records the
// number of sleeps and the total requested duration.
type ImmediateClock struct {
	sleeps atomic.Int64
	total  atomic.Int64
}

// Sleep records the request and returns.
func (c *ImmediateClock) Sleep(d time.Duration) {
	c.sleeps.Add(1)
	c.total.Add(int64(d))
}

// Sleeps returns the number of Sleep calls.
func (c *ImmediateClock) Sleeps() int64 { return c.sleeps.Load() }

// Total returns the sum of all requested durations.
func (c *ImmediateClock) Total() time.Duration { return time.Duration(c.total.Load()) }
