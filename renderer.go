// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"time"

	"github.com/cockroachdb/structviz/internal/graph"
)

// Renderer turns the model into pixels (or text). Structures drive it with
// full resyncs: every Render call replaces the complete element set.
//
// Implementations live in the render package.
type Renderer interface {
	// Attach is called by Init; layout is the name of the structure kind and
	// can be used to select a style sheet.
	Attach(layout string)
	// Detach is called by Reset.
	Detach()
	// Render replaces all elements with the given nodes and edges.
	Render(nodes []graph.Node, edges []graph.Edge)
	// NodeElement returns the element of a rendered node.
	NodeElement(id graph.ID) (graph.Element, bool)
	// EdgeElement returns the element of the first rendered edge from source to
	// target.
	EdgeElement(source, target graph.ID) (graph.Element, bool)
	// AnimateOpacity starts an opacity transition of the element. It must not
	// block; the structure waits for the transition on its Clock.
	AnimateOpacity(e graph.Element, to float64, d time.Duration)
	// BoundingBox returns the bounding box of the elements.
	BoundingBox(elems []graph.Element) graph.Box
	// SetViewport sets the zoom level and the pan offset.
	SetViewport(zoom, x, y float64)
}

type nopRenderer struct{}

var _ Renderer = nopRenderer{}

func (nopRenderer) Attach(string)                                        {}
func (nopRenderer) Detach()                                              {}
func (nopRenderer) Render([]graph.Node, []graph.Edge)                    {}
func (nopRenderer) NodeElement(graph.ID) (graph.Element, bool)           { return graph.Element{}, false }
func (nopRenderer) EdgeElement(graph.ID, graph.ID) (graph.Element, bool) { return graph.Element{}, false }
func (nopRenderer) AnimateOpacity(graph.Element, float64, time.Duration) {}
func (nopRenderer) BoundingBox([]graph.Element) graph.Box                { return graph.Box{} }
func (nopRenderer) SetViewport(float64, float64, float64)                {}
