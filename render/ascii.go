// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/structviz/internal/ascii"
	"github.com/cockroachdb/structviz/internal/graph"
)

// ASCIIOptions control how frame coordinates are mapped to text.
type ASCIIOptions struct {
	// NodeSpacing and LevelSpacing must match the options of the structure.
	NodeSpacing  float64
	LevelSpacing float64
	// CellWidth is the number of columns per NodeSpacing.
	CellWidth int
	// RowsPerLevel is the number of lines per LevelSpacing.
	RowsPerLevel int
	// HideEdges omits the edge list under the drawing.
	HideEdges bool
}

// DefaultASCIIOptions match the default structviz options.
var DefaultASCIIOptions = ASCIIOptions{
	NodeSpacing:  100,
	LevelSpacing: 80,
	CellWidth:    8,
	RowsPerLevel: 2,
}

// ASCII draws the visible nodes of a frame on a text board, followed by the
// list of visible edges. Horizontal edges between nodes on the same line are
// drawn as arrows.
//
// Shapes depend on the class: [x] for sentinels and slots, <x> for markers and
// cursors, .nil. for placeholders and (x) for everything else. Active list
// nodes are suffixed with '*'.
func ASCII(f Frame, opts ASCIIOptions) string {
	type placed struct {
		row, col, width int
		label           string
		shape           ascii.Shape
	}
	pos := make(map[string]placed, len(f.Nodes))
	minX, minY := math.Inf(1), math.Inf(1)
	for _, n := range f.Nodes {
		if n.Opacity > 0 {
			minX, minY = math.Min(minX, n.X), math.Min(minY, n.Y)
		}
	}
	var order []string
	for _, n := range f.Nodes {
		if n.Opacity <= 0 {
			continue
		}
		label, shape := nodeLabel(n)
		p := placed{
			row:   int(math.Round((n.Y - minY) / opts.LevelSpacing * float64(opts.RowsPerLevel))),
			col:   int(math.Round((n.X - minX) / opts.NodeSpacing * float64(opts.CellWidth))),
			label: label,
			shape: shape,
			width: ascii.NodeWidth(label),
		}
		pos[n.ID] = p
		order = append(order, n.ID)
	}

	board := ascii.Make(opts.CellWidth*8, 4)
	if f.Layout != "" {
		board.NewLine().Printf("layout: %s", f.Layout)
	}
	top := board.NewLine().Row()
	for _, e := range f.Edges {
		if e.Opacity <= 0 {
			continue
		}
		s, ok1 := pos[e.Source]
		t, ok2 := pos[e.Target]
		if !ok1 || !ok2 || s.row != t.row || t.col <= s.col+s.width {
			continue
		}
		board.At(top+s.row, s.col+s.width).Arrow(t.col - s.col - s.width)
	}
	for _, id := range order {
		p := pos[id]
		board.At(top+p.row, p.col).Node(p.label, p.shape)
	}
	if !opts.HideEdges {
		board.NewLine().WriteString("edges:")
		for _, e := range f.Edges {
			if e.Opacity <= 0 {
				continue
			}
			c := board.NewLine().Printf("  %s->%s", e.Source, e.Target)
			if e.Class != "" {
				c = c.Printf(" %s", e.Class)
			}
			if e.Opacity < 1 {
				c.Printf(" (%.2f)", e.Opacity)
			}
		}
	}
	return board.String()
}

func nodeLabel(n Node) (string, ascii.Shape) {
	class := graph.Class(n.Class)
	label := n.Value
	var shape ascii.Shape
	switch class.Base() {
	case graph.ClassSentinel, graph.ClassSlot, graph.ClassSlotFilled, graph.ClassSlotTop:
		shape = ascii.ShapeSquare
		if label == "" {
			label = " "
		}
	case graph.ClassMarker, graph.ClassCursor:
		shape = ascii.ShapeAngle
	case graph.ClassPlaceholder:
		shape = ascii.ShapeHollow
		label = "nil"
	default:
		shape = ascii.ShapeRound
	}
	if label == "" {
		label = n.ID
	}
	if class.IsActive() {
		label += "*"
	}
	return label, shape
}

// ASCIIFrames draws every frame, each preceded by its sequence number and
// the transitions it records.
func ASCIIFrames(frames []Frame, opts ASCIIOptions) string {
	var buf strings.Builder
	for i := range frames {
		f := &frames[i]
		fmt.Fprintf(&buf, "frame %d\n", f.Seq)
		for _, t := range f.Transitions {
			fmt.Fprintf(&buf, "  fade %s to %g over %s\n", t.Element, t.To, t.Duration)
		}
		buf.WriteString(ASCII(*f, opts))
		buf.WriteByte('\n')
	}
	return buf.String()
}
