// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"fmt"
	"strings"
)

// Node is implemented by every node of a recorded hierarchy.
type Node interface {
	TreeStepsNode() NodeInfo
}

// NodeInfo describes the current state of a node.
type NodeInfo struct {
	name       string
	properties [][2]string
	children   []Node
}

// NodeInfof returns a NodeInfo named by the formatted string.
func NodeInfof(format string, args ...any) NodeInfo {
	return NodeInfo{name: fmt.Sprintf(format, args...)}
}

// AddPropf adds a key=value property.
func (ni *NodeInfo) AddPropf(key string, format string, args ...any) {
	ni.properties = append(ni.properties, [2]string{key, fmt.Sprintf(format, args...)})
}

// AddChildren appends children in display order. The children must not be
// nil.
func (ni *NodeInfo) AddChildren(nodes ...Node) {
	ni.children = append(ni.children, nodes...)
}

// Steps is the result of a recording.
type Steps struct {
	Name  string
	Steps []Step
}

// Step is the state of the hierarchy after one recorded event.
type Step struct {
	Name string
	// Ops are the operations in progress, outermost first, with their state.
	Ops  []string
	Root TreeNode
}

// TreeNode is the recorded state of a node.
type TreeNode struct {
	Name       string
	Properties [][2]string
	Children   []TreeNode
}

// String renders the steps as text: the ops in progress followed by an
// indented tree, for every step.
func (s Steps) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n", s.Name)
	for i := range s.Steps {
		fmt.Fprintf(&buf, "step %d: %s\n", i+1, s.Steps[i].Name)
		for _, op := range s.Steps[i].Ops {
			fmt.Fprintf(&buf, "  <%s>\n", op)
		}
		s.Steps[i].Root.format(&buf, "  ")
	}
	return buf.String()
}

func (t TreeNode) String() string {
	var buf strings.Builder
	t.format(&buf, "")
	return buf.String()
}

func (t *TreeNode) format(buf *strings.Builder, indent string) {
	buf.WriteString(indent)
	buf.WriteString(t.Name)
	for _, p := range t.Properties {
		fmt.Fprintf(buf, " %s=%s", p[0], p[1])
	}
	buf.WriteByte('\n')
	for i := range t.Children {
		t.Children[i].format(buf, indent+"  ")
	}
}

// TreeToString renders the current state of the hierarchy rooted at n.
func TreeToString(n Node) string {
	return snapshot(n, -1).String()
}

// snapshot captures the hierarchy rooted at n. Nodes deeper than maxDepth are
// elided; a negative maxDepth captures everything.
func snapshot(n Node, maxDepth int) TreeNode {
	info := n.TreeStepsNode()
	t := TreeNode{Name: info.name, Properties: info.properties}
	for _, c := range info.children {
		if maxDepth == 0 {
			t.Children = append(t.Children, TreeNode{Name: "..."})
			continue
		}
		t.Children = append(t.Children, snapshot(c, maxDepth-1))
	}
	return t
}
