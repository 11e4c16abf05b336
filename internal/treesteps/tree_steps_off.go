// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !invariants

package treesteps

const Enabled = false

type Recording struct{}

type RecordingOption struct{}

func StartRecording(root Node, name string, opts ...RecordingOption) *Recording { return nil }
func MaxDepth(depth int) RecordingOption                                        { return RecordingOption{} }

func (*Recording) Active() bool                            { return false }
func (*Recording) Stepf(format string, args ...any)        {}
func (*Recording) StartOpf(format string, args ...any) *Op { return nil }
func (*Recording) Finish() Steps                           { return Steps{} }

type Op struct{}

func (*Op) Updatef(format string, args ...any) {}
func (*Op) Finishf(format string, args ...any) {}
