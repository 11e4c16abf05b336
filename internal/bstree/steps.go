// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import (
	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/cockroachdb/structviz/internal/treesteps"
)

var _ treesteps.Node = (*Tree)(nil)
var _ treesteps.Node = (*Node)(nil)

// TreeStepsNode implements treesteps.Node. The tree itself is the root of a
// recording so that the recording survives replacing the root node.
func (t *Tree) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("tree")
	info.AddPropf("height", "%d", t.Height())
	info.AddChildren(t.root)
	return info
}

// TreeStepsNode implements treesteps.Node.
func (n *Node) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("%s", n.ID())
	if n.Class != graph.ClassNone && n.Class != graph.ClassKey && n.Class != graph.ClassPlaceholder {
		info.AddPropf("class", "%s", n.Class)
	}
	if n.placeholder {
		return info
	}
	for _, c := range []*Node{n.Left, n.Right} {
		if c != nil {
			info.AddChildren(c)
		}
	}
	return info
}
