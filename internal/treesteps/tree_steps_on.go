// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build invariants

package treesteps

import (
	"fmt"
	"slices"
	"strings"
)

const Enabled = true

// Recording collects the steps of the operations run against one hierarchy.
// It is not safe for concurrent use; the structure owning the hierarchy runs
// one operation at a time.
type Recording struct {
	name     string
	root     Node
	maxDepth int
	ops      []*Op
	steps    []Step
}

// StartRecording starts a recording of the hierarchy rooted at root and
// captures its initial state as the first step.
func StartRecording(root Node, name string, opts ...RecordingOption) *Recording {
	r := &Recording{name: name, root: root, maxDepth: 20}
	for _, o := range opts {
		o(r)
	}
	r.stepf("initial")
	return r
}

// RecordingOption is an optional argument to StartRecording.
type RecordingOption func(*Recording)

// MaxDepth limits the depth of the captured trees. Deeper nodes show up as
// "...".
func MaxDepth(depth int) RecordingOption {
	return func(r *Recording) { r.maxDepth = depth }
}

// Active returns true if r is recording. A nil Recording is never active.
func (r *Recording) Active() bool {
	return r != nil && r.root != nil
}

// Stepf captures the current state as a step with the formatted name. It is
// used when the hierarchy changed in a way worth showing outside of an op
// boundary.
func (r *Recording) Stepf(format string, args ...any) {
	if !r.Active() {
		return
	}
	r.stepf(format, args...)
}

func (r *Recording) stepf(format string, args ...any) {
	s := Step{
		Name: fmt.Sprintf(format, args...),
		Root: snapshot(r.root, r.maxDepth),
	}
	for _, op := range r.ops {
		s.Ops = append(s.Ops, op.String())
	}
	r.steps = append(r.steps, s)
}

// StartOpf registers the start of an operation and emits a step. The
// operation is listed in every step until it finishes. Returns nil when r is
// not active; all Op methods accept a nil receiver.
func (r *Recording) StartOpf(format string, args ...any) *Op {
	if !r.Active() {
		return nil
	}
	op := &Op{rec: r, details: fmt.Sprintf(format, args...)}
	r.ops = append(r.ops, op)
	r.stepf("%s started", op.name())
	return op
}

// Finish ends the recording and returns the captured steps.
func (r *Recording) Finish() Steps {
	if r == nil {
		return Steps{}
	}
	s := Steps{Name: r.name, Steps: r.steps}
	r.root, r.ops, r.steps = nil, nil, nil
	return s
}

// Op is an operation in progress within a recording.
type Op struct {
	rec     *Recording
	details string
	state   string
}

// Updatef sets the state of the operation and emits a step.
func (op *Op) Updatef(format string, args ...any) {
	if op == nil || !op.rec.Active() {
		return
	}
	op.state = fmt.Sprintf(format, args...)
	op.rec.stepf("%s updated", op.name())
}

// Finishf sets the final state of the operation, emits a step and removes
// the operation from the following steps.
func (op *Op) Finishf(format string, args ...any) {
	if op == nil || !op.rec.Active() {
		return
	}
	op.state = fmt.Sprintf(format, args...)
	op.rec.stepf("%s finished", op.name())
	op.rec.ops = slices.DeleteFunc(op.rec.ops, func(o *Op) bool { return o == op })
}

func (op *Op) String() string {
	if op.state == "" {
		return op.details
	}
	return op.details + " " + op.state
}

// name is the leading word of the details: "insert(5)" is named "insert".
func (op *Op) name() string {
	if i := strings.IndexAny(op.details, " ()[]{}:"); i >= 0 {
		return op.details[:i]
	}
	return op.details
}
