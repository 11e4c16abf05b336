// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bstree implements the node table of a visualized binary search
// tree. Every key node has exactly two children, each either another key node
// or an explicit null placeholder. Node identities are derived from the
// structure (the key, or the parent and side for placeholders), so moving a
// key never requires renaming nodes.
package bstree

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/graph"
)

// Node is a key node or a null placeholder.
type Node struct {
	Key         int
	Left, Right *Node
	Parent      *Node

	X, Y    float64
	Class   graph.Class
	Opacity float64
	// EdgeClass and EdgeOpacity describe the edge from the parent.
	EdgeClass   graph.Class
	EdgeOpacity float64

	placeholder bool
	detached    bool
	handle      int
}

// IsPlaceholder returns true for null leaves.
func (n *Node) IsPlaceholder() bool { return n.placeholder }

// IsDetached returns true if the node no longer owns its key.
func (n *Node) IsDetached() bool { return n.detached }

// ID returns the identity of the node in the flattened model.
func (n *Node) ID() graph.ID {
	switch {
	case n.placeholder && n.Parent == nil:
		return graph.RootPlaceholder()
	case n.placeholder:
		return graph.Placeholder(n.Parent.ID(), n.side())
	case n.detached:
		return graph.Detached(n.handle)
	default:
		return graph.Key(n.Key)
	}
}

func (n *Node) side() graph.Side {
	if n.Parent != nil && n.Parent.Right == n {
		return graph.Right
	}
	return graph.Left
}

// Child returns the child on the given side.
func (n *Node) Child(s graph.Side) *Node {
	if s == graph.Left {
		return n.Left
	}
	return n.Right
}

func (n *Node) setChild(s graph.Side, c *Node) {
	if s == graph.Left {
		n.Left = c
	} else {
		n.Right = c
	}
	if c != nil {
		c.Parent = n
	}
}

// IsLeaf returns true for a key node whose children are both placeholders.
func (n *Node) IsLeaf() bool {
	return !n.placeholder && n.Left != nil && n.Left.placeholder && n.Right != nil && n.Right.placeholder
}

// Depth returns the number of edges between the node and the root.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Value returns the displayed value of the node.
func (n *Node) Value() string {
	if n.placeholder {
		return ""
	}
	return strconv.Itoa(n.Key)
}

// Tree is the node table of a binary search tree.
type Tree struct {
	root       *Node
	nextHandle int
}

// New returns a tree consisting of a single root placeholder.
func New() *Tree {
	t := &Tree{}
	t.Clear()
	return t
}

// Clear replaces the tree with a single root placeholder.
func (t *Tree) Clear() {
	t.root = t.newNode(true)
}

func (t *Tree) newNode(placeholder bool) *Node {
	t.nextHandle++
	return &Node{
		placeholder: placeholder,
		handle:      t.nextHandle,
		Opacity:     1,
		EdgeOpacity: 1,
		EdgeClass:   graph.ClassChild,
	}
}

// Root returns the root node, which is a placeholder for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Empty returns true if the tree holds no keys.
func (t *Tree) Empty() bool { return t.root.placeholder }

// Materialize turns the placeholder n into a key node holding key. The node
// keeps its position in the table; it has no children until AddPlaceholder is
// called for both sides.
func (t *Tree) Materialize(n *Node, key int) {
	if !n.placeholder {
		panic(errors.AssertionFailedf("materializing key node %d", errors.Safe(n.Key)))
	}
	n.placeholder = false
	n.Key = key
	n.Class = graph.ClassKey
}

// AddPlaceholder attaches a new placeholder on the given side of n.
func (t *Tree) AddPlaceholder(n *Node, s graph.Side) *Node {
	c := t.newNode(true)
	c.Class = graph.ClassPlaceholder
	n.setChild(s, c)
	return c
}

// Detach marks n as no longer owning its key; its ID becomes a Detached ID.
func (t *Tree) Detach(n *Node) {
	n.detached = true
}

// DropChildren removes both children of n.
func (t *Tree) DropChildren(n *Node) {
	for _, c := range []*Node{n.Left, n.Right} {
		if c != nil {
			c.Parent = nil
		}
	}
	n.Left, n.Right = nil, nil
}

// Replace puts r in the slot occupied by n (the root slot if n is the root).
// n is disconnected from its parent.
func (t *Tree) Replace(n, r *Node) {
	p := n.Parent
	if r.Parent != nil {
		if r.Parent.Left == r {
			r.Parent.Left = nil
		} else if r.Parent.Right == r {
			r.Parent.Right = nil
		}
	}
	if p == nil {
		t.root = r
		r.Parent = nil
	} else {
		p.setChild(n.side(), r)
	}
	n.Parent = nil
}

// ReplaceWithPlaceholder puts a new placeholder in the slot occupied by n and
// returns it.
func (t *Tree) ReplaceWithPlaceholder(n *Node) *Node {
	ph := t.newNode(true)
	ph.Class = graph.ClassPlaceholder
	t.Replace(n, ph)
	return ph
}

// Find returns the key node holding key, or nil.
func (t *Tree) Find(key int) *Node {
	n := t.root
	for !n.placeholder {
		switch {
		case key == n.Key:
			return n
		case key < n.Key:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return nil
}

// Insert adds key without any animation. Returns false if the key exists.
func (t *Tree) Insert(key int) bool {
	n := t.root
	for !n.placeholder {
		switch {
		case key == n.Key:
			return false
		case key < n.Key:
			n = n.Left
		default:
			n = n.Right
		}
	}
	t.Materialize(n, key)
	t.AddPlaceholder(n, graph.Left)
	t.AddPlaceholder(n, graph.Right)
	return true
}

// Walk calls fn on every node (placeholders included) in pre-order.
func (t *Tree) Walk(fn func(n *Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		fn(n)
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.root)
}

// Keys returns the keys in order.
func (t *Tree) Keys() []int {
	var keys []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || n.placeholder {
			return
		}
		walk(n.Left)
		keys = append(keys, n.Key)
		walk(n.Right)
	}
	walk(t.root)
	return keys
}

// Height returns the height of the tree, with 0 for an empty tree.
func (t *Tree) Height() int {
	var height func(n *Node) int
	height = func(n *Node) int {
		if n == nil || n.placeholder {
			return 0
		}
		return max(height(n.Left), height(n.Right)) + 1
	}
	return height(t.root)
}

// Check verifies that every key node has two children, that parent links are
// consistent and that keys are unique and ordered.
func (t *Tree) Check() error {
	if t.root == nil {
		return errors.AssertionFailedf("tree has no root")
	}
	if t.root.Parent != nil {
		return errors.AssertionFailedf("root %s has a parent", t.root.ID())
	}
	var check func(n *Node, lo, hi *int) error
	check = func(n *Node, lo, hi *int) error {
		if n.placeholder {
			if n.Left != nil || n.Right != nil {
				return errors.AssertionFailedf("placeholder %s has children", n.ID())
			}
			return nil
		}
		if n.detached {
			return errors.AssertionFailedf("detached node %s still in tree", n.ID())
		}
		if (lo != nil && n.Key <= *lo) || (hi != nil && n.Key >= *hi) {
			return errors.AssertionFailedf("key %d out of order", errors.Safe(n.Key))
		}
		for _, c := range []*Node{n.Left, n.Right} {
			if c == nil {
				return errors.AssertionFailedf("key %d is missing a child", errors.Safe(n.Key))
			}
			if c.Parent != n {
				return errors.AssertionFailedf("child %s of %d has wrong parent", c.ID(), errors.Safe(n.Key))
			}
		}
		if err := check(n.Left, lo, &n.Key); err != nil {
			return err
		}
		return check(n.Right, &n.Key, hi)
	}
	return check(t.root, nil, nil)
}
