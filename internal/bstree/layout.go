// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import "github.com/cockroachdb/structviz/internal/graph"

// LayoutParams configures Layout.
type LayoutParams struct {
	BaseX, BaseY float64
	NodeSpacing  float64
	LevelSpacing float64
}

// Layout positions every node: nodes (placeholders included) are numbered by
// an in-order walk, x = BaseX + index*NodeSpacing and y = BaseY +
// depth*LevelSpacing. The tree is then shifted horizontally so that the root
// sits at BaseX.
func (t *Tree) Layout(p LayoutParams) {
	index := 0
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		walk(n.Left, depth+1)
		n.X = p.BaseX + float64(index)*p.NodeSpacing
		n.Y = p.BaseY + float64(depth)*p.LevelSpacing
		index++
		walk(n.Right, depth+1)
	}
	walk(t.root, 0)

	dx := p.BaseX - t.root.X
	t.Walk(func(n *Node) { n.X += dx })
}

// Flatten writes the nodes and parent-child edges of the tree into m, in
// pre-order. Any previous contents of m are discarded.
func (t *Tree) Flatten(m *graph.Model) {
	m.Reset()
	t.Walk(func(n *Node) {
		class := n.Class
		if class == graph.ClassNone {
			class = graph.ClassKey
			if n.placeholder {
				class = graph.ClassPlaceholder
			}
		}
		m.AddNode(graph.Node{
			ID:      n.ID(),
			Value:   n.Value(),
			X:       n.X,
			Y:       n.Y,
			Class:   class,
			Opacity: n.Opacity,
		})
	})
	t.Walk(func(n *Node) {
		if n.Parent == nil {
			return
		}
		m.AddEdge(graph.Edge{
			Source:  n.Parent.ID(),
			Target:  n.ID(),
			Class:   n.EdgeClass,
			Opacity: n.EdgeOpacity,
		})
	})
}

// Lookup returns the node with the given ID, or nil.
func (t *Tree) Lookup(id graph.ID) *Node {
	var res *Node
	t.Walk(func(n *Node) {
		if res == nil && n.ID() == id {
			res = n
		}
	})
	return res
}
