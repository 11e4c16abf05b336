// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/bstree"
	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/cockroachdb/structviz/internal/treesteps"
)

var cursorMarker = graph.Marker("cursor")

// BinarySearchTree is a binary search tree of integer keys. Every key node
// has two children, each a key node or a null placeholder; an empty tree is a
// single root placeholder.
//
// The model is a flattening of the node table (see internal/bstree) plus an
// optional cursor marker that follows the descent of an operation.
type BinarySearchTree struct {
	core
	tree *bstree.Tree

	cursor        *bstree.Node
	cursorOpacity float64

	// steps is non-nil while the operations are recorded; see RecordSteps.
	steps *treesteps.Recording
}

var _ Structure = (*BinarySearchTree)(nil)

// NewBinarySearchTree returns an uninitialized binary search tree.
func NewBinarySearchTree(opts *Options) *BinarySearchTree {
	b := &BinarySearchTree{tree: bstree.New()}
	b.initCore(KindBinarySearchTree, opts, b)
	return b
}

// Keys returns the keys in order.
func (b *BinarySearchTree) Keys() []int { return b.tree.Keys() }

func (b *BinarySearchTree) setup(Config) {}

func (b *BinarySearchTree) clear() {
	b.tree.Clear()
	b.cursor = nil
}

func (b *BinarySearchTree) randomConfig(*rand.Rand) Config { return Config{} }

func (b *BinarySearchTree) populate(rng *rand.Rand) {
	for n := 3 + rng.IntN(5); len(b.tree.Keys()) < n; {
		b.tree.Insert(rng.IntN(100))
	}
}

func (b *BinarySearchTree) layoutParams() bstree.LayoutParams {
	return bstree.LayoutParams{
		NodeSpacing:  b.opts.NodeSpacing,
		LevelSpacing: b.opts.LevelSpacing,
	}
}

func (b *BinarySearchTree) redraw() {
	b.tree.Layout(b.layoutParams())
	b.tree.Flatten(&b.model)
	if b.cursor == nil {
		return
	}
	b.model.AddNode(graph.Node{
		ID:      cursorMarker,
		X:       b.cursor.X,
		Y:       b.cursor.Y - b.opts.MarkerOffset,
		Class:   graph.ClassCursor,
		Opacity: b.cursorOpacity,
	})
	b.model.AddEdge(graph.Edge{
		Source:  cursorMarker,
		Target:  b.cursor.ID(),
		Class:   graph.ClassMarkerEdge,
		Opacity: b.cursorOpacity,
	})
}

// setOpacity writes opacities into the node table. An edge is stored with its
// child, so it is found by its target.
func (b *BinarySearchTree) setOpacity(e graph.Element, to float64) bool {
	if (e.IsEdge && e.Source == cursorMarker) || (!e.IsEdge && e.Node == cursorMarker) {
		b.cursorOpacity = to
		return true
	}
	if e.IsEdge {
		if n := b.tree.Lookup(e.Target); n != nil {
			n.EdgeOpacity = to
		}
	} else if n := b.tree.Lookup(e.Node); n != nil {
		n.Opacity = to
	}
	return true
}

func (b *BinarySearchTree) check() error {
	if err := b.tree.Check(); err != nil {
		return err
	}
	if b.cursor != nil {
		return errors.AssertionFailedf("cursor still shown at %s", b.cursor.ID())
	}
	var err error
	b.tree.Walk(func(n *bstree.Node) {
		if err == nil && (n.Opacity != 1 || (n.Parent != nil && n.EdgeOpacity != 1)) {
			err = errors.AssertionFailedf("node %s is not fully shown", n.ID())
		}
	})
	return err
}

// moveCursor moves the cursor to n, fading it in if it is hidden.
func (b *BinarySearchTree) moveCursor(n *bstree.Node) {
	if b.cursor == nil {
		b.cursor = n
		b.cursorOpacity = 0
		b.refresh()
		b.fadeInNode(cursorMarker)
		b.fadeInEdge(cursorMarker, n.ID())
		b.wait(1)
		return
	}
	b.cursor = n
	b.refresh()
	b.wait(1)
}

func (b *BinarySearchTree) hideCursor() {
	if b.cursor == nil {
		return
	}
	b.fadeOutNode(cursorMarker)
	b.fadeOutEdge(cursorMarker, b.cursor.ID())
	b.wait(1)
	b.cursor = nil
	b.refresh()
}

// settle hides the cursor and drops all highlights.
func (b *BinarySearchTree) settle() {
	b.hideCursor()
	b.tree.Walk(func(n *bstree.Node) {
		n.Class = graph.ClassKey
		if n.IsPlaceholder() {
			n.Class = graph.ClassPlaceholder
		}
		n.EdgeClass = graph.ClassChild
	})
	b.refresh()
}

// highlight sets the class of n and waits for it to be shown.
func (b *BinarySearchTree) highlight(n *bstree.Node, class graph.Class) {
	n.Class = class
	b.refresh()
	b.wait(1)
}

func sideOf(key int, n *bstree.Node) graph.Side {
	if key < n.Key {
		return graph.Left
	}
	return graph.Right
}

// descend walks the cursor from the root towards key and returns the key node
// holding it, or the placeholder where it would be.
func (b *BinarySearchTree) descend(key int) *bstree.Node {
	n := b.tree.Root()
	for !n.IsPlaceholder() {
		b.moveCursor(n)
		if key == n.Key {
			return n
		}
		c := n.Child(sideOf(key, n))
		c.EdgeClass = graph.ClassTraverse
		b.refresh()
		b.wait(1)
		n = c
	}
	b.moveCursor(n)
	return n
}

func keyParam(key int) Param { return Param{Name: ParamKey, Value: strconv.Itoa(key)} }

// Insert adds key to the tree. An existing key is highlighted and reported.
func (b *BinarySearchTree) Insert(key int) {
	if !b.startOp("insert") {
		return
	}
	op := b.startStep("insert(%d)", key)
	n := b.descend(key)
	if !n.IsPlaceholder() {
		b.highlight(n, graph.ClassExists)
		b.report(KeyTreeInsertExists, keyParam(key))
		b.settle()
		op.Finishf("exists")
		b.afterAnimationWithoutChange()
		return
	}

	b.tree.Materialize(n, key)
	n.Opacity = 0
	b.refresh()
	b.fadeInNode(n.ID())
	b.wait(1)
	for _, s := range []graph.Side{graph.Left, graph.Right} {
		ph := b.tree.AddPlaceholder(n, s)
		ph.Opacity, ph.EdgeOpacity = 0, 0
		b.refresh()
		b.fadeInNode(ph.ID())
		b.fadeInEdge(n.ID(), ph.ID())
		b.wait(1)
	}
	b.settle()
	op.Finishf("done")
	b.afterAnimationEnds()
}

// Remove deletes key from the tree.
func (b *BinarySearchTree) Remove(key int) {
	if !b.startOp("remove") {
		return
	}
	if b.tree.Empty() {
		b.fail(KeyTreeRemoveError, ReasonEmpty)
		return
	}
	op := b.startStep("remove(%d)", key)
	n := b.descend(key)
	if n.IsPlaceholder() {
		b.settle()
		op.Finishf("not found")
		b.fail(KeyTreeRemoveError, ReasonNotFound)
		return
	}
	b.highlight(n, graph.ClassFound)
	b.hideCursor()
	b.deleteNode(n)
	b.settle()
	op.Finishf("done")
	b.afterAnimationEnds()
}

// deleteNode removes the key node n. A node with two key children takes the
// key of its in-order successor, and the successor is deleted instead; the
// successor is detached first so that the promoted key never has two owners.
func (b *BinarySearchTree) deleteNode(n *bstree.Node) {
	parent := n.Parent
	left, right := n.Left, n.Right
	switch {
	case left.IsPlaceholder() && right.IsPlaceholder():
		b.fadeOutChild(n, left)
		b.fadeOutChild(n, right)
		b.wait(1)
		b.tree.DropChildren(n)
		b.refresh()

		b.fadeOutNode(n.ID())
		if parent != nil {
			b.fadeOutEdge(parent.ID(), n.ID())
		}
		b.wait(1)
		ph := b.tree.ReplaceWithPlaceholder(n)
		ph.Opacity, ph.EdgeOpacity = 0, 0
		b.refresh()
		b.fadeInNode(ph.ID())
		if parent != nil {
			b.fadeInEdge(parent.ID(), ph.ID())
		}
		b.wait(1)

	case left.IsPlaceholder() || right.IsPlaceholder():
		child, dead := left, right
		if left.IsPlaceholder() {
			child, dead = right, left
		}
		b.fadeOutChild(n, dead)
		b.fadeOutNode(n.ID())
		b.fadeOutEdge(n.ID(), child.ID())
		if parent != nil {
			b.fadeOutEdge(parent.ID(), n.ID())
		}
		b.wait(1)
		b.tree.Replace(n, child)
		if parent == nil {
			child.EdgeOpacity = 1
			b.refresh()
			b.wait(1)
			return
		}
		b.refresh()
		b.fadeInEdge(parent.ID(), child.ID())
		b.wait(1)

	default:
		s := right
		s.EdgeClass = graph.ClassTraverse
		b.highlight(s, graph.ClassHighlight)
		for !s.Left.IsPlaceholder() {
			s = s.Left
			s.EdgeClass = graph.ClassTraverse
			b.highlight(s, graph.ClassHighlight)
		}
		b.tree.Detach(s)
		n.Key = s.Key
		b.highlight(n, graph.ClassPromoted)
		b.steps.Stepf("promoted %d", n.Key)
		b.deleteNode(s)
	}
}

// fadeOutChild fades out the child c of n and the edge to it.
func (b *BinarySearchTree) fadeOutChild(n, c *bstree.Node) {
	b.fadeOutNode(c.ID())
	b.fadeOutEdge(n.ID(), c.ID())
}

// Search looks for key and reports whether it was found. A found node is
// highlighted on and off.
func (b *BinarySearchTree) Search(key int) bool {
	if !b.startOp("search") {
		return false
	}
	op := b.startStep("search(%d)", key)
	n := b.descend(key)
	if n.IsPlaceholder() {
		b.settle()
		op.Finishf("not found")
		b.report(KeyTreeSearchNotFound, keyParam(key))
		b.afterAnimationWithoutChange()
		return false
	}
	b.highlight(n, graph.ClassFound)
	b.highlight(n, graph.ClassKey)
	b.highlight(n, graph.ClassFound)
	b.report(KeyTreeSearchFound, keyParam(key))
	b.settle()
	op.Finishf("found")
	b.afterAnimationEnds()
	return true
}

// Height reports and returns the height of the tree. Each key node is
// highlighted while the heights of its subtrees are computed.
func (b *BinarySearchTree) Height() (int, bool) {
	if !b.startOp("height") {
		return 0, false
	}
	var height func(n *bstree.Node) int
	height = func(n *bstree.Node) int {
		if n.IsPlaceholder() {
			return 0
		}
		b.highlight(n, graph.ClassHighlight)
		h := max(height(n.Left), height(n.Right)) + 1
		n.Class = graph.ClassKey
		b.refresh()
		return h
	}
	h := height(b.tree.Root())
	b.report(KeyTreeHeight, Param{Name: ParamHeight, Value: strconv.Itoa(h)})
	if h == 0 {
		b.afterAnimationWithoutChange()
		return 0, true
	}
	b.wait(1)
	b.afterAnimationEnds()
	return h, true
}

// Min walks the cursor to the smallest key and reports it.
func (b *BinarySearchTree) Min() (int, bool) {
	return b.extreme("min", graph.Left, KeyTreeMin)
}

// Max walks the cursor to the largest key and reports it.
func (b *BinarySearchTree) Max() (int, bool) {
	return b.extreme("max", graph.Right, KeyTreeMax)
}

func (b *BinarySearchTree) extreme(op string, side graph.Side, key string) (int, bool) {
	if !b.startOp(op) {
		return 0, false
	}
	if b.tree.Empty() {
		b.fail(KeyTreeMinMaxError, ReasonEmpty)
		return 0, false
	}
	n := b.tree.Root()
	b.moveCursor(n)
	for c := n.Child(side); !c.IsPlaceholder(); c = n.Child(side) {
		c.EdgeClass = graph.ClassTraverse
		n = c
		b.moveCursor(n)
	}
	b.highlight(n, graph.ClassFound)
	b.report(key, keyParam(n.Key))
	b.settle()
	b.afterAnimationEnds()
	return n.Key, true
}

// startStep records the start of an operation if the tree is being recorded.
func (b *BinarySearchTree) startStep(format string, key int) *treesteps.Op {
	if !b.steps.Active() {
		return nil
	}
	return b.steps.StartOpf(format, key)
}

// RecordSteps starts recording the node table through the following
// operations. It is a no-op unless built with the invariants tag.
func (b *BinarySearchTree) RecordSteps(name string) {
	b.steps = treesteps.StartRecording(b.tree, name, treesteps.MaxDepth(16))
}

// FinishSteps stops the recording started by RecordSteps and returns the
// recorded steps as text.
func (b *BinarySearchTree) FinishSteps() string {
	s := b.steps.Finish()
	b.steps = nil
	return s.String()
}
