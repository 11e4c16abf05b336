// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import "github.com/cockroachdb/structviz/internal/graph"

// linkDegrees counts the list links (next, prev and arc edges) leaving and
// entering each node, and records the targets of sentinel pointers.
type linkDegrees struct {
	out, in   map[graph.ID]int
	fromHead  map[graph.ID]bool
	fromTail  map[graph.ID]bool
	firstLink map[graph.ID]graph.Class
}

func countLinks(m *graph.Model, topo topology) linkDegrees {
	d := linkDegrees{
		out:       make(map[graph.ID]int),
		in:        make(map[graph.ID]int),
		fromHead:  make(map[graph.ID]bool),
		fromTail:  make(map[graph.ID]bool),
		firstLink: make(map[graph.ID]graph.Class),
	}
	for _, e := range m.Edges() {
		switch {
		case e.Class.IsLink():
			d.out[e.Source]++
			d.in[e.Target]++
			if _, ok := d.firstLink[e.Source]; !ok {
				d.firstLink[e.Source] = e.Class
			}
		case e.Class == graph.ClassPointer && e.Source == graph.Index(0):
			d.fromHead[e.Target] = true
		case e.Class == graph.ClassPointer && topo.doubly && e.Source == graph.Index(1):
			d.fromTail[e.Target] = true
		}
	}
	return d
}

// dataNodes calls fn for every non-sentinel list node.
func dataNodes(m *graph.Model, topo topology, fn func(n *graph.Node)) {
	for i := range m.NumNodes() {
		n := m.NodeAt(i)
		if n.ID.Kind() != graph.KindIndex || n.ID.Int() < topo.sentinels {
			continue
		}
		fn(n)
	}
}

// classifySingly assigns classes to the data nodes of a singly or circular
// list in a single pass over the link degrees. Wrap and marker edges do not
// count.
func classifySingly(m *graph.Model, topo topology, active graph.ID, hasActive bool) {
	d := countLinks(m, topo)
	dataNodes(m, topo, func(n *graph.Node) {
		out, in, head := d.out[n.ID], d.in[n.ID], d.fromHead[n.ID]
		switch {
		case out > 0 && head:
			n.Class = graph.ClassHead
		case out > 0:
			n.Class = graph.ClassInternal
		case in > 0 || head:
			n.Class = graph.ClassTail
		default:
			n.Class = graph.ClassIsolated
		}
		if hasActive && n.ID == active {
			n.Class = n.Class.Active()
		}
	})
	m.Touch()
}

// classifyDoubly assigns classes to the data nodes of a doubly linked list.
// The first pass uses the out-degree alone; the second pass refines boundary
// nodes by their sentinel pointers. A node pointed to by both sentinels is the
// only node, unless a second node is being spliced in next to it, in which case
// addingFuture tells on which side the new node lands.
func classifyDoubly(m *graph.Model, topo topology, active graph.ID, hasActive bool, addingFuture int) {
	d := countLinks(m, topo)
	dataNodes(m, topo, func(n *graph.Node) {
		out := d.out[n.ID]
		switch {
		case out >= 2:
			n.Class = graph.ClassInternal
		case out == 1:
			n.Class = graph.ClassHead
		default:
			n.Class = graph.ClassIsolated
		}

		head, tail := d.fromHead[n.ID], d.fromTail[n.ID]
		switch {
		case head && tail:
			pos := n.ID.Int() - topo.sentinels
			switch {
			case out == 0 || addingFuture < 0:
				n.Class = graph.ClassHeadTail
			case addingFuture > pos:
				n.Class = graph.ClassHead
			default:
				n.Class = graph.ClassTail
			}
		case head:
			n.Class = graph.ClassHead
		case tail:
			n.Class = graph.ClassTail
		case out == 1:
			switch d.firstLink[n.ID] {
			case graph.ClassPrev:
				n.Class = graph.ClassTail
			case graph.ClassArc:
				n.Class = graph.ClassInternal
			}
		}
		if hasActive && n.ID == active {
			n.Class = n.Class.Active()
		}
	})
	m.Touch()
}
