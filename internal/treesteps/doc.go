// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treesteps records step-by-step operations on hierarchical
// structures, such as the node table of a binary search tree.
//
// Every node of the structure implements Node, describing itself with a name,
// a list of properties and its children. A Recording is started on the root
// of the hierarchy; each operation is bracketed by Recording.StartOpf and
// Op.Finishf, and Recording.Stepf emits a step when the hierarchy changes in
// between. Every step captures the whole hierarchy along with the operations
// in progress. Recording.Finish returns the captured Steps, which render as
// text.
//
//	rec := treesteps.StartRecording(tree, "insert 5")
//	op := rec.StartOpf("insert(%d)", 5)
//	...
//	op.Finishf("done")
//	fmt.Println(rec.Finish())
//
// # Build Tags
//
// Recording is only available when building with the 'invariants' tag.
// Without it StartRecording returns nil, every method is a no-op and Enabled
// is false, so instrumentation can stay in the operation code.
package treesteps
