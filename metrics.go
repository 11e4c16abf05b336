// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"sync/atomic"
	"time"

	"github.com/cockroachdb/redact"
)

// Metrics holds the operation counters of a structure.
type Metrics struct {
	Ops struct {
		// Completed is the number of operations that ran through the closing
		// animation phase.
		Completed int64
		// Unchanged is the number of operations that ended without a change
		// (failed preconditions and pure queries).
		Unchanged int64
		// Rejected is the number of calls dropped because the structure was
		// not initialized or another operation was animating.
		Rejected int64
	}
	// Waits is the number of waits performed.
	Waits int64
	// AnimationTime is the total time requested from the Clock.
	AnimationTime time.Duration
}

// String pretty-prints the metrics.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("ops: completed=%d unchanged=%d rejected=%d\n",
		redact.Safe(m.Ops.Completed), redact.Safe(m.Ops.Unchanged), redact.Safe(m.Ops.Rejected))
	w.Printf("waits: %d (%s)\n", redact.Safe(m.Waits), redact.Safe(m.AnimationTime))
}

type metrics struct {
	completed     atomic.Int64
	unchanged     atomic.Int64
	rejected      atomic.Int64
	waits         atomic.Int64
	animationTime atomic.Int64
}

func (m *metrics) snapshot() Metrics {
	var res Metrics
	res.Ops.Completed = m.completed.Load()
	res.Ops.Unchanged = m.unchanged.Load()
	res.Ops.Rejected = m.rejected.Load()
	res.Waits = m.waits.Load()
	res.AnimationTime = time.Duration(m.animationTime.Load())
	return res
}
