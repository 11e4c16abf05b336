// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/crlib/fifo"
	"github.com/cockroachdb/structviz/internal/bstree"
	"github.com/cockroachdb/structviz/internal/graph"
)

var levelOrderQueuePool = fifo.MakeQueueBackingPool[*bstree.Node]()

// PreOrder visits the keys in pre-order and returns them.
func (b *BinarySearchTree) PreOrder() []int {
	return b.traverse("pre-order", func(visit func(n *bstree.Node)) {
		var walk func(n *bstree.Node)
		walk = func(n *bstree.Node) {
			if n.IsPlaceholder() {
				return
			}
			visit(n)
			walk(n.Left)
			walk(n.Right)
		}
		walk(b.tree.Root())
	})
}

// InOrder visits the keys in order and returns them.
func (b *BinarySearchTree) InOrder() []int {
	return b.traverse("in-order", func(visit func(n *bstree.Node)) {
		var walk func(n *bstree.Node)
		walk = func(n *bstree.Node) {
			if n.IsPlaceholder() {
				return
			}
			walk(n.Left)
			visit(n)
			walk(n.Right)
		}
		walk(b.tree.Root())
	})
}

// PostOrder visits the keys in post-order and returns them.
func (b *BinarySearchTree) PostOrder() []int {
	return b.traverse("post-order", func(visit func(n *bstree.Node)) {
		var walk func(n *bstree.Node)
		walk = func(n *bstree.Node) {
			if n.IsPlaceholder() {
				return
			}
			walk(n.Left)
			walk(n.Right)
			visit(n)
		}
		walk(b.tree.Root())
	})
}

// LevelOrder visits the keys level by level, left to right, and returns them.
func (b *BinarySearchTree) LevelOrder() []int {
	return b.traverse("level-order", func(visit func(n *bstree.Node)) {
		q := fifo.MakeQueue(&levelOrderQueuePool)
		q.PushBack(b.tree.Root())
		for q.Len() > 0 {
			n := *q.PeekFront()
			q.PopFront()
			if n.IsPlaceholder() {
				continue
			}
			visit(n)
			q.PushBack(n.Left)
			q.PushBack(n.Right)
		}
	})
}

// traverse runs a traversal. Every visited node is pointed at by the cursor,
// highlighted and then marked visited; the keys visited so far are reported as
// a single output line that grows in place.
func (b *BinarySearchTree) traverse(name string, order func(visit func(n *bstree.Node))) []int {
	if !b.startOp(name) {
		return nil
	}
	if b.tree.Empty() {
		b.fail(KeyTreeTraversalError, ReasonEmpty)
		return nil
	}
	var keys []int
	var line strings.Builder
	order(func(n *bstree.Node) {
		b.moveCursor(n)
		b.highlight(n, graph.ClassHighlight)
		b.highlight(n, graph.ClassVisited)
		if len(keys) > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(strconv.Itoa(n.Key))
		b.output(line.String(), len(keys) > 0)
		keys = append(keys, n.Key)
	})
	b.settle()
	b.afterAnimationEnds()
	return keys
}
