// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Stack is a fixed-capacity stack over a row of slots. The top slot is
// styled slot-top.
type Stack struct {
	arrayStore
	// top is the index of the top slot, or -1 if the stack is empty.
	top int
}

var _ Structure = (*Stack)(nil)

// NewStack returns an uninitialized stack. The capacity is set by Init.
func NewStack(opts *Options) *Stack {
	s := &Stack{top: -1}
	s.initCore(KindStack, opts, s)
	return s
}

// Capacity returns the number of slots.
func (s *Stack) Capacity() int { return s.slots }

// TopIndex returns the index of the top slot, or -1.
func (s *Stack) TopIndex() int { return s.top }

func (s *Stack) setup(cfg Config) { s.createSlots(s.capacityOf(cfg)) }

func (s *Stack) clear() {
	s.slots = 0
	s.top = -1
}

func (s *Stack) randomConfig(rng *rand.Rand) Config { return randomCapacity(rng) }

func (s *Stack) populate(rng *rand.Rand) {
	n := 1 + rng.IntN(s.slots-1)
	for i := 0; i < n; i++ {
		s.model.NodeAt(i).Value = randomValue(rng)
	}
	s.top = n - 1
	s.model.Touch()
}

func (s *Stack) filled(i int) bool { return i <= s.top }

func (s *Stack) redraw() { s.classifySlots(s.filled, s.top) }

func (s *Stack) check() error {
	if s.top < -1 || s.top >= s.slots {
		return errors.AssertionFailedf("top %d out of range", s.top)
	}
	if s.model.NumNodes() != s.slots || s.model.NumEdges() != 0 {
		return errors.AssertionFailedf("%d nodes and %d edges for %d slots",
			s.model.NumNodes(), s.model.NumEdges(), s.slots)
	}
	return s.checkSlots(s.filled)
}

// Push writes the value into the slot above the top.
func (s *Stack) Push(v string) {
	if !s.startOp("push") {
		return
	}
	if s.top == s.slots-1 {
		s.fail(KeyStackPushError, ReasonFull)
		return
	}
	s.top++
	s.setSlot(s.top, v)
	s.afterAnimationEnds()
}

// Pop reports, clears and returns the top value.
func (s *Stack) Pop() (string, bool) {
	if !s.startOp("pop") {
		return "", false
	}
	if s.top < 0 {
		s.fail(KeyStackPopError, ReasonEmpty)
		return "", false
	}
	v := s.slotValue(s.top)
	s.report(KeyStackPop, Param{Name: ParamValue, Value: v})
	i := s.top
	s.top--
	s.setSlot(i, "")
	s.afterAnimationEnds()
	return v, true
}

// Top points at the top slot and reports its value. The stack is not
// modified.
func (s *Stack) Top() (string, bool) {
	if !s.startOp("top") {
		return "", false
	}
	if s.top < 0 {
		s.fail(KeyStackTopError, ReasonEmpty)
		return "", false
	}
	v := s.slotValue(s.top)
	s.flashMarker("top", s.top, func() {
		s.report(KeyStackTop, Param{Name: ParamValue, Value: v})
	})
	s.afterAnimationEnds()
	return v, true
}

// IsEmpty reports and returns whether the stack is empty.
func (s *Stack) IsEmpty() bool {
	if !s.startOp("is-empty") {
		return false
	}
	res := s.top < 0
	s.report(KeyStackIsEmpty, Param{Name: ParamResult, Value: strconv.FormatBool(res)})
	s.afterAnimationWithoutChange()
	return res
}

// IsFull reports and returns whether the stack is full.
func (s *Stack) IsFull() bool {
	if !s.startOp("is-full") {
		return false
	}
	res := s.top == s.slots-1
	s.report(KeyStackIsFull, Param{Name: ParamResult, Value: strconv.FormatBool(res)})
	s.afterAnimationWithoutChange()
	return res
}

// Values returns the values from the bottom to the top.
func (s *Stack) Values() []string {
	res := make([]string, 0, s.top+1)
	for i := 0; i <= s.top; i++ {
		res = append(res, s.slotValue(i))
	}
	return res
}
