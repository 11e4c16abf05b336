// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewLimiterWithClock(1, 2, func() time.Time { return now })
	require.Equal(t, 1.0, l.Rate())

	for i := 0; i < 2; i++ {
		ok, _ := l.Allow(1)
		require.True(t, ok)
	}
	ok, d := l.Allow(1)
	require.False(t, ok)
	require.Greater(t, d, time.Duration(0))
	require.LessOrEqual(t, d, time.Second)

	now = now.Add(time.Second)
	ok, _ = l.Allow(1)
	require.True(t, ok)

	l.SetRate(10)
	require.Equal(t, 10.0, l.Rate())
	now = now.Add(100 * time.Millisecond)
	ok, _ = l.Allow(1)
	require.True(t, ok)
}

func TestLimiterWaitCanceled(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewLimiterWithClock(0.001, 1, func() time.Time { return now })
	require.NoError(t, l.Wait(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, l.Wait(ctx, 1), context.Canceled)
}
