// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteFrameTable writes the nodes and edges of a frame as two tables.
func WriteFrameTable(w io.Writer, f Frame) {
	nodes := tablewriter.NewWriter(w)
	nodes.SetHeader([]string{"id", "value", "x", "y", "class", "opacity"})
	for _, n := range f.Nodes {
		nodes.Append([]string{
			n.ID,
			n.Value,
			formatFloat(n.X),
			formatFloat(n.Y),
			n.Class,
			formatFloat(n.Opacity),
		})
	}
	nodes.Render()

	edges := tablewriter.NewWriter(w)
	edges.SetHeader([]string{"source", "target", "class", "opacity"})
	for _, e := range f.Edges {
		edges.Append([]string{e.Source, e.Target, e.Class, formatFloat(e.Opacity)})
	}
	edges.Render()
}

// WriteSummaryTable writes one row per frame with the number of visible
// elements and transitions.
func WriteSummaryTable(w io.Writer, frames []Frame) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"frame", "nodes", "edges", "transitions", "zoom"})
	for i := range frames {
		f := &frames[i]
		nodes, edges := f.Visible()
		t.Append([]string{
			strconv.Itoa(f.Seq),
			strconv.Itoa(nodes),
			strconv.Itoa(edges),
			strconv.Itoa(len(f.Transitions)),
			fmt.Sprintf("%.2f", f.Viewport.Zoom),
		})
	}
	t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
