// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/graph"
)

var (
	beginMarker    = graph.Marker("begin")
	endMarker      = graph.Marker("end")
	beginEndMarker = graph.Marker("begin-end")
)

// Queue is a ring buffer over a row of slots. A queue of capacity c uses c+1
// slots so that a full queue can be told apart from an empty one.
//
// The elements occupy the slots [begin, end) modulo the slot count. Whenever
// end has wrapped around and begin has not (end < begin), a wrap edge from the
// last slot to the first slot is shown. Markers below the row point at the
// begin and end slots.
type Queue struct {
	arrayStore
	begin, end int
}

var _ Structure = (*Queue)(nil)

// NewQueue returns an uninitialized queue. The capacity is set by Init.
func NewQueue(opts *Options) *Queue {
	q := &Queue{}
	q.initCore(KindQueue, opts, q)
	return q
}

// Capacity returns the number of elements the queue can hold.
func (q *Queue) Capacity() int { return q.slots - 1 }

// Begin returns the slot index of the front element.
func (q *Queue) Begin() int { return q.begin }

// End returns the slot index the next element is written to.
func (q *Queue) End() int { return q.end }

// Len returns the number of elements.
func (q *Queue) Len() int { return (q.end - q.begin + q.slots) % q.slots }

func (q *Queue) setup(cfg Config) { q.createSlots(q.capacityOf(cfg) + 1) }

func (q *Queue) clear() {
	q.slots = 0
	q.begin, q.end = 0, 0
}

func (q *Queue) randomConfig(rng *rand.Rand) Config { return randomCapacity(rng) }

func (q *Queue) populate(rng *rand.Rand) {
	n := 1 + rng.IntN(q.slots-1)
	q.begin = rng.IntN(q.slots)
	q.end = q.begin
	for i := 0; i < n; i++ {
		q.model.NodeAt(q.end).Value = randomValue(rng)
		q.end = q.next(q.end)
	}
	if q.end < q.begin {
		q.model.AddEdge(q.wrapEdge(1))
	}
	q.model.Touch()
}

func (q *Queue) next(i int) int { return (i + 1) % q.slots }

func (q *Queue) wrapEdge(opacity float64) graph.Edge {
	return graph.Edge{Source: graph.Index(q.slots - 1), Target: graph.Index(0), Class: graph.ClassWrap, Opacity: opacity}
}

func (q *Queue) filled(i int) bool {
	if q.begin <= q.end {
		return i >= q.begin && i < q.end
	}
	return i >= q.begin || i < q.end
}

func (q *Queue) isEmpty() bool { return q.begin == q.end }

func (q *Queue) isFull() bool {
	return q.begin-1 == q.end || (q.begin == 0 && q.end == q.slots-1)
}

func (q *Queue) redraw() {
	q.classifySlots(q.filled, -1)

	for _, id := range []graph.ID{beginMarker, endMarker, beginEndMarker} {
		if q.model.RemoveNode(id) {
			q.model.RemoveEdgesOf(id)
		}
	}
	place := func(id graph.ID, slot int) {
		q.model.AddNode(graph.Node{
			ID:      id,
			Value:   id.Name(),
			X:       q.slotX(slot),
			Y:       q.opts.MarkerOffset,
			Class:   graph.ClassMarker,
			Opacity: 1,
		})
		q.model.AddEdge(graph.Edge{Source: id, Target: graph.Index(slot), Class: graph.ClassMarkerEdge, Opacity: 1})
	}
	if q.begin == q.end {
		place(beginEndMarker, q.begin)
		return
	}
	place(beginMarker, q.begin)
	place(endMarker, q.end)
}

func (q *Queue) check() error {
	if q.begin < 0 || q.begin >= q.slots || q.end < 0 || q.end >= q.slots {
		return errors.AssertionFailedf("begin %d, end %d out of range [0, %d)", q.begin, q.end, q.slots)
	}
	if got, want := q.model.Edge(graph.Index(q.slots-1), graph.Index(0)) != nil, q.end < q.begin; got != want {
		return errors.AssertionFailedf("wrap edge present=%t with begin %d, end %d", got, q.begin, q.end)
	}
	if got, want := q.isFull(), q.next(q.end) == q.begin; got != want {
		return errors.AssertionFailedf("full=%t, expected %t", got, want)
	}
	return q.checkSlots(q.filled)
}

// Enqueue writes the value at the end of the queue.
func (q *Queue) Enqueue(v string) {
	if !q.startOp("enqueue") {
		return
	}
	if q.isFull() {
		q.fail(KeyQueueEnqueueErr, ReasonFull)
		return
	}
	q.setSlot(q.end, v)
	q.end = q.next(q.end)
	if q.end == 0 {
		q.addAndFadeIn(nil, []graph.Edge{q.wrapEdge(0)})
	} else {
		q.refresh()
		q.wait(1)
	}
	q.afterAnimationEnds()
}

// Dequeue reports, clears and returns the front value.
func (q *Queue) Dequeue() (string, bool) {
	if !q.startOp("dequeue") {
		return "", false
	}
	if q.isEmpty() {
		q.fail(KeyQueueDequeueErr, ReasonEmpty)
		return "", false
	}
	v := q.slotValue(q.begin)
	q.report(KeyQueueDequeue, Param{Name: ParamValue, Value: v})
	q.removeFront()
	q.afterAnimationEnds()
	return v, true
}

// Remove clears the front value without reporting it.
func (q *Queue) Remove() {
	if !q.startOp("remove") {
		return
	}
	if q.isEmpty() {
		q.fail(KeyQueueRemoveErr, ReasonEmpty)
		return
	}
	q.removeFront()
	q.afterAnimationEnds()
}

func (q *Queue) removeFront() {
	q.setSlot(q.begin, "")
	q.begin = q.next(q.begin)
	if q.begin == 0 {
		q.fadeOutAndRemove(nil, []graph.Edge{q.wrapEdge(1)})
	} else {
		q.refresh()
		q.wait(1)
	}
}

// Front points at the front slot and reports its value.
func (q *Queue) Front() (string, bool) {
	if !q.startOp("front") {
		return "", false
	}
	if q.isEmpty() {
		q.fail(KeyQueueFrontError, ReasonEmpty)
		return "", false
	}
	v := q.slotValue(q.begin)
	q.flashMarker("front", q.begin, func() {
		q.report(KeyQueueFront, Param{Name: ParamValue, Value: v})
	})
	q.afterAnimationEnds()
	return v, true
}

// IsEmpty reports and returns whether the queue is empty.
func (q *Queue) IsEmpty() bool {
	if !q.startOp("is-empty") {
		return false
	}
	res := q.isEmpty()
	q.report(KeyQueueIsEmpty, Param{Name: ParamResult, Value: strconv.FormatBool(res)})
	q.afterAnimationWithoutChange()
	return res
}

// IsFull reports and returns whether the queue is full.
func (q *Queue) IsFull() bool {
	if !q.startOp("is-full") {
		return false
	}
	res := q.isFull()
	q.report(KeyQueueIsFull, Param{Name: ParamResult, Value: strconv.FormatBool(res)})
	q.afterAnimationWithoutChange()
	return res
}

// Values returns the values from the front to the end.
func (q *Queue) Values() []string {
	res := make([]string, 0, q.Len())
	for i := q.begin; i != q.end; i = q.next(i) {
		res = append(res, q.slotValue(i))
	}
	return res
}
