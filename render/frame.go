// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"time"

	"github.com/cockroachdb/structviz/internal/graph"
)

// Frame is a snapshot of the rendered element set, taken on every Render call.
type Frame struct {
	// Seq is the position of the frame in the recording, starting at 0.
	Seq    int    `json:"seq"`
	Layout string `json:"layout"`
	Nodes  []Node `json:"nodes"`
	Edges  []Edge `json:"edges"`
	// Transitions are the opacity animations started since the previous frame.
	Transitions []Transition `json:"transitions,omitempty"`
	Viewport    Viewport     `json:"viewport"`
}

// Node is a rendered node.
type Node struct {
	ID      string  `json:"id"`
	Value   string  `json:"value,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Class   string  `json:"class,omitempty"`
	Opacity float64 `json:"opacity"`
}

// Edge is a rendered edge.
type Edge struct {
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Class   string  `json:"class,omitempty"`
	Opacity float64 `json:"opacity"`
}

// Transition is an opacity animation of a node or edge. Element is the node
// id, or "source->target" for an edge.
type Transition struct {
	Element  string        `json:"element"`
	To       float64       `json:"to"`
	Duration time.Duration `json:"duration_ns"`
}

// Viewport is the zoom level and pan offset.
type Viewport struct {
	Zoom float64 `json:"zoom"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func makeNodes(nodes []graph.Node) []Node {
	res := make([]Node, len(nodes))
	for i, n := range nodes {
		res[i] = Node{
			ID:      n.ID.String(),
			Value:   n.Value,
			X:       n.X,
			Y:       n.Y,
			Class:   string(n.Class),
			Opacity: n.Opacity,
		}
	}
	return res
}

func makeEdges(edges []graph.Edge) []Edge {
	res := make([]Edge, len(edges))
	for i, e := range edges {
		res[i] = Edge{
			Source:  e.Source.String(),
			Target:  e.Target.String(),
			Class:   string(e.Class),
			Opacity: e.Opacity,
		}
	}
	return res
}

// Visible returns the number of nodes and edges with a non-zero opacity.
func (f *Frame) Visible() (nodes, edges int) {
	for i := range f.Nodes {
		if f.Nodes[i].Opacity > 0 {
			nodes++
		}
	}
	for i := range f.Edges {
		if f.Edges[i].Opacity > 0 {
			edges++
		}
	}
	return nodes, edges
}
