// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import "math"

// Element refers to a node or an edge as known to a renderer.
type Element struct {
	IsEdge bool
	// Node is set for node elements.
	Node ID
	// Source and Target are set for edge elements.
	Source, Target ID
}

// NodeElement returns the element of a node.
func NodeElement(id ID) Element {
	return Element{Node: id}
}

// EdgeElement returns the element of the edge from source to target.
func EdgeElement(source, target ID) Element {
	return Element{IsEdge: true, Source: source, Target: target}
}

// String implements fmt.Stringer.
func (e Element) String() string {
	if e.IsEdge {
		return e.Source.String() + "->" + e.Target.String()
	}
	return e.Node.String()
}

// Box is an axis-aligned bounding box.
type Box struct {
	X, Y float64
	W, H float64
}

// EmptyBox returns a box that contains no points.
func EmptyBox() Box {
	return Box{X: math.Inf(1), Y: math.Inf(1), W: math.Inf(-1), H: math.Inf(-1)}
}

// IsEmpty returns true if the box contains no points.
func (b Box) IsEmpty() bool {
	return math.IsInf(b.X, 1) || b.W < 0
}

// Extend returns the smallest box containing b and the given point.
func (b Box) Extend(x, y float64) Box {
	if b.IsEmpty() {
		return Box{X: x, Y: y}
	}
	minX, minY := math.Min(b.X, x), math.Min(b.Y, y)
	maxX, maxY := math.Max(b.X+b.W, x), math.Max(b.Y+b.H, y)
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Center returns the center of the box.
func (b Box) Center() (x, y float64) {
	return b.X + b.W/2, b.Y + b.H/2
}
