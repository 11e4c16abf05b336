// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import "github.com/guptarohit/asciigraph"

// PlotElementCounts plots the number of visible nodes and edges of every
// frame. It returns the empty string if there are no frames.
func PlotElementCounts(frames []Frame, height int) string {
	if len(frames) == 0 {
		return ""
	}
	values := make([]float64, len(frames))
	for i := range frames {
		nodes, edges := frames[i].Visible()
		values[i] = float64(nodes + edges)
	}
	return asciigraph.Plot(values, asciigraph.Height(height), asciigraph.Caption("visible elements per frame"))
}
