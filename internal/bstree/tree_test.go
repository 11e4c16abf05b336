// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/cockroachdb/structviz/internal/treesteps"
	"github.com/stretchr/testify/require"
)

var testParams = LayoutParams{NodeSpacing: 100, LevelSpacing: 80}

func build(keys ...int) *Tree {
	t := New()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func TestEmptyTree(t *testing.T) {
	tr := New()
	require.True(t, tr.Empty())
	require.Equal(t, graph.RootPlaceholder(), tr.Root().ID())
	require.Zero(t, tr.Height())
	require.NoError(t, tr.Check())

	var m graph.Model
	tr.Layout(testParams)
	tr.Flatten(&m)
	require.Equal(t, 1, m.NumNodes())
	require.Zero(t, m.NumEdges())
}

func TestInsertAndIDs(t *testing.T) {
	tr := build(5, 3, 8)
	require.NoError(t, tr.Check())
	require.False(t, tr.Insert(3))
	require.Equal(t, []int{3, 5, 8}, tr.Keys())
	require.Equal(t, 2, tr.Height())

	three := tr.Find(3)
	require.NotNil(t, three)
	require.True(t, three.IsLeaf())
	require.Equal(t, graph.Placeholder(graph.Key(3), graph.Left), three.Left.ID())
	require.Equal(t, graph.Placeholder(graph.Key(3), graph.Right), three.Right.ID())
	require.Nil(t, tr.Find(4))
	require.Same(t, three, tr.Lookup(graph.Key(3)))
	require.Same(t, three.Right, tr.Lookup(graph.Placeholder(graph.Key(3), graph.Right)))
}

func TestLayout(t *testing.T) {
	tr := build(5, 3, 8)
	tr.Layout(testParams)
	require.Equal(t, 0.0, tr.Find(5).X)
	require.Equal(t, 0.0, tr.Find(5).Y)
	require.Equal(t, -200.0, tr.Find(3).X)
	require.Equal(t, 80.0, tr.Find(3).Y)
	require.Equal(t, 200.0, tr.Find(8).X)
	require.Equal(t, -300.0, tr.Find(3).Left.X)
	require.Equal(t, 160.0, tr.Find(3).Left.Y)
}

func TestLayoutInOrderMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		tr := New()
		for range 1 + rng.IntN(30) {
			tr.Insert(rng.IntN(100))
		}
		require.NoError(t, tr.Check())
		tr.Layout(testParams)
		require.Equal(t, 0.0, tr.Root().X)

		var xs []float64
		var walk func(n *Node)
		walk = func(n *Node) {
			if n.IsPlaceholder() {
				return
			}
			walk(n.Left)
			xs = append(xs, n.X)
			walk(n.Right)
		}
		walk(tr.Root())
		require.True(t, slices.IsSorted(xs))
		require.Len(t, slices.Compact(slices.Clone(xs)), len(xs))

		tr.Walk(func(n *Node) {
			require.Equal(t, float64(n.Depth())*testParams.LevelSpacing, n.Y)
		})
	}
}

func TestFlatten(t *testing.T) {
	tr := build(5, 3)
	tr.Layout(testParams)
	var m graph.Model
	tr.Flatten(&m)
	require.Equal(t, `nodes:
  5 "5" (0,0) key
  3 "3" (-200,80) key
  null-3-left (-300,160) placeholder
  null-3-right (-100,160) placeholder
  null-5-right (100,80) placeholder
edges:
  5 -> 3 child
  3 -> null-3-left child
  3 -> null-3-right child
  5 -> null-5-right child
`, m.String())
}

func TestReplace(t *testing.T) {
	// One-child removal of the root: the child becomes the root.
	tr := build(5, 8, 9)
	five := tr.Root()
	eight := five.Right
	tr.DropChildren(five)
	tr.Replace(five, eight)
	require.Same(t, eight, tr.Root())
	require.Nil(t, eight.Parent)
	require.NoError(t, tr.Check())
	require.Equal(t, []int{8, 9}, tr.Keys())

	// Leaf removal installs a placeholder in the parent slot.
	nine := tr.Find(9)
	tr.DropChildren(nine)
	ph := tr.ReplaceWithPlaceholder(nine)
	require.Equal(t, graph.Placeholder(graph.Key(8), graph.Right), ph.ID())
	require.NoError(t, tr.Check())
	require.Equal(t, []int{8}, tr.Keys())
}

func TestSuccessorPromotion(t *testing.T) {
	tr := build(5, 3, 8, 7, 9)
	target := tr.Root()
	succ := target.Right.Left
	require.Equal(t, 7, succ.Key)

	require.False(t, succ.IsDetached())
	tr.Detach(succ)
	require.True(t, succ.IsDetached())
	require.Equal(t, graph.Detached(succ.handle), succ.ID())
	target.Key = succ.Key
	require.Equal(t, graph.Key(7), target.ID())
	require.Error(t, tr.Check())

	tr.DropChildren(succ)
	tr.ReplaceWithPlaceholder(succ)
	require.NoError(t, tr.Check())
	require.Equal(t, []int{3, 7, 8, 9}, tr.Keys())
	require.True(t, tr.Find(8).Left.IsPlaceholder())
	require.Equal(t, 9, tr.Find(8).Right.Key)
}

func TestRecording(t *testing.T) {
	tr := build(5)
	require.Equal(t, "tree height=1\n  5\n    null-5-left\n    null-5-right\n", treesteps.TreeToString(tr))
	if !treesteps.Enabled {
		t.Skip("treesteps not available in this build")
	}
	rec := treesteps.StartRecording(tr, "insert 3", treesteps.MaxDepth(8))
	op := rec.StartOpf("insert(3)")
	tr.Insert(3)
	op.Updatef("left child added")
	op.Finishf("done")
	rec.Stepf("after")
	steps := rec.Finish()
	require.Len(t, steps.Steps, 5)
	require.Equal(t, []string{"insert(3) left child added"}, steps.Steps[2].Ops)
	// The finishing step still shows the op; the next one does not.
	require.Equal(t, "insert finished", steps.Steps[3].Name)
	require.Equal(t, []string{"insert(3) done"}, steps.Steps[3].Ops)
	require.Equal(t, "after", steps.Steps[4].Name)
	require.Empty(t, steps.Steps[4].Ops)
	require.True(t, strings.Contains(steps.String(), "null-3-left"), steps.String())
	require.Contains(t, treesteps.TreeToString(tr), "null-3-right")
}
