// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"testing"
	"time"

	"github.com/cockroachdb/structviz/internal/testutils"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	clock := &testutils.ImmediateClock{}
	opts := testOptions(t, nil)
	opts.Clock = clock
	s := NewStack(opts)
	s.Push("x")
	s.Init(Config{Capacity: 1})
	s.Push("a")
	s.Push("b")

	m := s.Metrics()
	require.Equal(t, ""+
		"ops: completed=1 unchanged=1 rejected=1\n"+
		"waits: 4 (2s)\n",
		m.String())
	require.EqualValues(t, 4, clock.Sleeps())
	require.Equal(t, 2*time.Second, clock.Total())
}

func TestOperationLatency(t *testing.T) {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "latency"})
	opts := testOptions(t, nil)
	opts.OperationLatency = h
	q := NewQueue(opts)
	q.Enqueue("rejected")
	q.Init(Config{Capacity: 2})
	q.Enqueue("a")
	q.Front()
	q.IsFull()

	var m dto.Metric
	require.NoError(t, h.Write(&m))
	require.EqualValues(t, 3, m.GetHistogram().GetSampleCount())
}
