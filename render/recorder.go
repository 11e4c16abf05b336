// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package render contains renderers for structviz structures. The Recorder
// keeps every rendered frame; frames can be drawn as text, tabulated, plotted
// or exported to a shareable URL.
package render

import (
	"sync"
	"time"

	"github.com/cockroachdb/structviz/internal/graph"
)

// Recorder is a renderer that records a Frame on every Render call. It is
// safe for concurrent use.
type Recorder struct {
	// MaxFrames bounds the number of recorded frames; the oldest frames are
	// dropped first. Zero means no limit.
	MaxFrames int

	mu struct {
		sync.Mutex
		layout   string
		attached bool
		nodes    []graph.Node
		edges    []graph.Edge
		pending  []Transition
		viewport Viewport
		seq      int
		frames   []Frame
	}
}

// NewRecorder returns a recorder keeping at most maxFrames frames (zero for
// no limit).
func NewRecorder(maxFrames int) *Recorder {
	r := &Recorder{MaxFrames: maxFrames}
	r.mu.viewport.Zoom = 1
	return r
}

// Attach is part of the structviz.Renderer interface.
func (r *Recorder) Attach(layout string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.layout = layout
	r.mu.attached = true
}

// Detach is part of the structviz.Renderer interface. The recorded frames are
// kept.
func (r *Recorder) Detach() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.attached = false
	r.mu.nodes = nil
	r.mu.edges = nil
	r.mu.pending = nil
}

// Attached returns the layout passed to the last Attach call and whether the
// recorder is still attached.
func (r *Recorder) Attached() (layout string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mu.layout, r.mu.attached
}

// Render is part of the structviz.Renderer interface.
func (r *Recorder) Render(nodes []graph.Node, edges []graph.Edge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.nodes = append(r.mu.nodes[:0], nodes...)
	r.mu.edges = append(r.mu.edges[:0], edges...)
	f := Frame{
		Seq:         r.mu.seq,
		Layout:      r.mu.layout,
		Nodes:       makeNodes(nodes),
		Edges:       makeEdges(edges),
		Transitions: r.mu.pending,
		Viewport:    r.mu.viewport,
	}
	r.mu.seq++
	r.mu.pending = nil
	r.mu.frames = append(r.mu.frames, f)
	if r.MaxFrames > 0 && len(r.mu.frames) > r.MaxFrames {
		n := copy(r.mu.frames, r.mu.frames[len(r.mu.frames)-r.MaxFrames:])
		clear(r.mu.frames[n:])
		r.mu.frames = r.mu.frames[:n]
	}
}

// NodeElement is part of the structviz.Renderer interface.
func (r *Recorder) NodeElement(id graph.ID) (graph.Element, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.node(id) == nil {
		return graph.Element{}, false
	}
	return graph.NodeElement(id), true
}

// EdgeElement is part of the structviz.Renderer interface.
func (r *Recorder) EdgeElement(source, target graph.ID) (graph.Element, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.edge(source, target) == nil {
		return graph.Element{}, false
	}
	return graph.EdgeElement(source, target), true
}

// AnimateOpacity is part of the structviz.Renderer interface. The transition
// is recorded in the next frame and takes effect immediately.
func (r *Recorder) AnimateOpacity(e graph.Element, to float64, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.IsEdge {
		if x := r.edge(e.Source, e.Target); x != nil {
			x.Opacity = to
		}
	} else if n := r.node(e.Node); n != nil {
		n.Opacity = to
	}
	r.mu.pending = append(r.mu.pending, Transition{Element: e.String(), To: to, Duration: d})
}

// BoundingBox is part of the structviz.Renderer interface. An edge contributes
// the positions of both of its endpoints.
func (r *Recorder) BoundingBox(elems []graph.Element) graph.Box {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := graph.EmptyBox()
	extend := func(id graph.ID) {
		if n := r.node(id); n != nil {
			b = b.Extend(n.X, n.Y)
		}
	}
	for _, e := range elems {
		if e.IsEdge {
			extend(e.Source)
			extend(e.Target)
		} else {
			extend(e.Node)
		}
	}
	if b.IsEmpty() {
		return graph.Box{}
	}
	return b
}

// SetViewport is part of the structviz.Renderer interface.
func (r *Recorder) SetViewport(zoom, x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.viewport = Viewport{Zoom: zoom, X: x, Y: y}
}

// Viewport returns the last viewport set.
func (r *Recorder) Viewport() Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mu.viewport
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.mu.frames...)
}

// Last returns the most recent frame.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.mu.frames) == 0 {
		return Frame{}, false
	}
	return r.mu.frames[len(r.mu.frames)-1], true
}

// Clear drops the recorded frames. Sequence numbers keep increasing.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.frames = nil
}

func (r *Recorder) node(id graph.ID) *graph.Node {
	for i := range r.mu.nodes {
		if r.mu.nodes[i].ID == id {
			return &r.mu.nodes[i]
		}
	}
	return nil
}

func (r *Recorder) edge(source, target graph.ID) *graph.Edge {
	for i := range r.mu.edges {
		if e := &r.mu.edges[i]; e.Source == source && e.Target == target {
			return e
		}
	}
	return nil
}
