// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

// Shape is the outline drawn around a node label.
type Shape int8

const (
	// ShapeRound is used for list and tree nodes: (5).
	ShapeRound Shape = iota
	// ShapeSquare is used for array slots and sentinels: [5].
	ShapeSquare
	// ShapeAngle is used for markers and cursors: <top>.
	ShapeAngle
	// ShapeHollow is used for placeholders: .null.
	ShapeHollow
)

var outlines = [...][2]string{
	ShapeRound:  {"(", ")"},
	ShapeSquare: {"[", "]"},
	ShapeAngle:  {"<", ">"},
	ShapeHollow: {".", "."},
}

// NodeWidth returns the number of columns taken by a node with the given
// label.
func NodeWidth(label string) int {
	return len([]rune(label)) + 2
}

// Node draws the label inside the outline of the shape and returns a cursor
// where the node ends.
func (c Cursor) Node(label string, s Shape) Cursor {
	o := outlines[s]
	return c.WriteString(o[0]).WriteString(label).WriteString(o[1])
}

// Arrow draws a horizontal arrow n columns wide, pointing right, and returns a
// cursor where the arrow ends. Nothing is drawn if n < 2.
func (c Cursor) Arrow(n int) Cursor {
	if n < 2 {
		return c
	}
	return c.Repeat(n-1, '-').WriteString(">")
}
