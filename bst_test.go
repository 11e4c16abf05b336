// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"testing"

	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/cockroachdb/structviz/internal/treesteps"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, events *testEvents, keys ...int) *BinarySearchTree {
	t.Helper()
	b := NewBinarySearchTree(testOptions(t, events))
	b.Init(Config{})
	for _, k := range keys {
		b.Insert(k)
		requireValid(t, b)
	}
	if events != nil {
		events.take()
	}
	return b
}

func TestTreeInsert(t *testing.T) {
	var events testEvents
	b := newTree(t, &events)
	require.Equal(t, "tree: -", describe(b))
	require.Equal(t, 1, b.Snapshot().NumNodes())

	for _, k := range []int{5, 3, 8, 7, 9} {
		b.Insert(k)
		requireValid(t, b)
	}
	require.Equal(t, "tree: 5(3,8(7,9))", describe(b))
	require.Equal(t, []int{3, 5, 7, 8, 9}, b.Keys())

	// Five key nodes with two placeholder children under every leaf.
	m := b.Snapshot()
	require.Equal(t, 11, m.NumNodes())
	require.Equal(t, 10, m.NumEdges())
	require.NotNil(t, m.Edge(graph.Key(8), graph.Key(7)))

	before := b.Snapshot()
	b.Insert(5)
	requireValid(t, b)
	require.Equal(t, "[binary-search-tree] tree.insertExists key=5\n", events.take())
	require.True(t, before.Equal(b.Snapshot()))
}

func TestTreeRemoveLeaf(t *testing.T) {
	b := newTree(t, nil, 5, 3, 8)
	b.Remove(3)
	requireValid(t, b)
	require.Equal(t, "tree: 5(-,8)", describe(b))
	require.Nil(t, b.Snapshot().Node(graph.Key(3)))
}

func TestTreeRemoveTwoChildren(t *testing.T) {
	b := newTree(t, nil, 5, 3, 8, 7, 9)
	b.Remove(5)
	requireValid(t, b)
	require.Equal(t, "tree: 7(3,8(-,9))", describe(b))
	require.Equal(t, []int{3, 7, 8, 9}, b.Keys())
}

func TestTreeRemoveOneChild(t *testing.T) {
	b := newTree(t, nil, 5, 3, 8, 9)
	b.Remove(8)
	requireValid(t, b)
	require.Equal(t, "tree: 5(3,9)", describe(b))

	b.Remove(5)
	requireValid(t, b)
	require.Equal(t, "tree: 9(3,-)", describe(b))
	b.Remove(9)
	requireValid(t, b)
	require.Equal(t, "tree: 3", describe(b))
	b.Remove(3)
	requireValid(t, b)
	require.Equal(t, "tree: -", describe(b))
}

func TestTreeRemoveErrors(t *testing.T) {
	var events testEvents
	b := newTree(t, &events)
	b.Remove(1)
	require.Equal(t, "[binary-search-tree] tree.removeError reason=empty\n", events.take())

	b = newTree(t, &events, 5, 3)
	before := b.Snapshot()
	b.Remove(42)
	requireValid(t, b)
	require.Equal(t, "[binary-search-tree] tree.removeError reason=notFound\n", events.take())
	require.True(t, before.Equal(b.Snapshot()))
}

func TestTreeTraversals(t *testing.T) {
	var events testEvents
	b := newTree(t, &events, 5, 3, 8, 7, 9)
	require.Equal(t, []int{5, 3, 8, 7, 9}, b.PreOrder())
	require.Equal(t, []int{3, 5, 7, 8, 9}, b.InOrder())
	require.Equal(t, []int{3, 7, 9, 8, 5}, b.PostOrder())
	require.Equal(t, []int{5, 3, 8, 7, 9}, b.LevelOrder())
	requireValid(t, b)
	events.take()

	b = newTree(t, &events, 2, 1)
	b.InOrder()
	require.Equal(t, ""+
		"[binary-search-tree] output: 1\n"+
		"[binary-search-tree] output (replace): 1 2\n",
		events.take())

	b = newTree(t, &events)
	require.Nil(t, b.PreOrder())
	require.Equal(t, "[binary-search-tree] tree.traversalError reason=empty\n", events.take())
}

func TestTreeQueries(t *testing.T) {
	var events testEvents
	b := newTree(t, &events, 5, 3, 8, 7, 9)
	before := b.Snapshot()

	require.True(t, b.Search(7))
	require.False(t, b.Search(4))
	h, ok := b.Height()
	require.True(t, ok)
	require.Equal(t, 3, h)
	k, ok := b.Min()
	require.True(t, ok)
	require.Equal(t, 3, k)
	k, ok = b.Max()
	require.True(t, ok)
	require.Equal(t, 9, k)
	requireValid(t, b)

	require.Equal(t, ""+
		"[binary-search-tree] tree.searchFound key=7\n"+
		"[binary-search-tree] tree.searchNotFound key=4\n"+
		"[binary-search-tree] tree.height height=3\n"+
		"[binary-search-tree] tree.min key=3\n"+
		"[binary-search-tree] tree.max key=9\n",
		events.take())
	// Queries restore the styling of every node.
	require.True(t, before.Equal(b.Snapshot()))

	b = newTree(t, &events)
	h, ok = b.Height()
	require.True(t, ok)
	require.Zero(t, h)
	_, ok = b.Min()
	require.False(t, ok)
	require.Equal(t, ""+
		"[binary-search-tree] tree.height height=0\n"+
		"[binary-search-tree] tree.minMaxError reason=empty\n",
		events.take())
}

func TestTreeRecordSteps(t *testing.T) {
	if !treesteps.Enabled {
		t.Skip("treesteps not available in this build")
	}
	b := newTree(t, nil, 5, 3, 8, 7, 9)
	b.RecordSteps("remove root")
	b.Remove(5)
	out := b.FinishSteps()
	require.Contains(t, out, "remove root\nstep 1: initial\n")
	require.Contains(t, out, "remove started\n  <remove(5)>\n")
	require.Contains(t, out, "promoted 7\n  <remove(5)>\n")
	require.Contains(t, out, "remove finished\n  <remove(5) done>\n")

	// Operations after the recording are not recorded.
	b.Insert(5)
	require.Equal(t, "\n", b.FinishSteps())
}
