// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import "github.com/cockroachdb/structviz/internal/graph"

// tempPointer is the temporary pointer node spawned above a node that is
// about to be deleted.
var tempPointer = graph.Marker("temp")

// shiftRange moves the given nodes horizontally by dx and waits for the move.
func shiftRange(c *core, ids []graph.ID, dx float64) {
	if len(ids) == 0 {
		return
	}
	for _, id := range ids {
		n := c.mustNode(id)
		c.setPos(id, n.X+dx, n.Y)
	}
	c.refresh()
	c.wait(1)
}

// spliceInsert inserts a new data node at logical position p (0 <= p <= n,
// where n is the current length). The node is created below the row, the
// occupied positions are shifted right, the new links are added one at a
// time, the superseded links are removed, and the node is moved into the row.
func spliceInsert(l *linkedList, p int, value string) {
	c := &l.core
	n := l.size()
	newID := l.dataID(n)
	l.addingFuture = p

	c.addAndFadeIn([]graph.Node{{
		ID:    newID,
		Value: value,
		X:     l.xOf(p),
		Y:     c.opts.LevelSpacing,
		Class: graph.ClassIsolated,
	}}, nil)

	if p < n {
		shiftRange(c, l.dataIDs(p, n), c.opts.NodeSpacing)
	}

	pred := l.headSentinel()
	if p > 0 {
		pred = l.dataID(p - 1)
	}
	var obsolete []graph.Edge
	if p < n {
		succ := l.dataID(p)
		l.addLink(newID, succ, graph.ClassNext)
		if l.topo.doubly {
			l.addLink(succ, newID, graph.ClassPrev)
		}
		obsolete = append(obsolete, graph.Edge{Source: pred, Target: succ, Class: l.linkClass(pred)})
		if l.topo.doubly && p > 0 {
			obsolete = append(obsolete, graph.Edge{Source: succ, Target: pred, Class: graph.ClassPrev})
		}
	} else if l.topo.doubly {
		l.addLink(l.tailSentinel(), newID, graph.ClassPointer)
		if n > 0 {
			obsolete = append(obsolete, graph.Edge{Source: l.tailSentinel(), Target: l.dataID(n - 1), Class: graph.ClassPointer})
		}
	}
	l.addLink(pred, newID, l.linkClass(pred))
	if l.topo.doubly && p > 0 {
		l.addLink(newID, pred, graph.ClassPrev)
	}
	if len(obsolete) > 0 {
		c.fadeOutAndRemove(nil, obsolete)
	}

	c.model.MoveNode(c.model.NodeIndex(newID), l.topo.sentinels+p)
	c.setPos(newID, l.xOf(p), 0)
	if l.active >= p {
		l.active++
	}
	l.addingFuture = -1
	c.model.Normalize()
	c.refresh()
	c.wait(1)
	if l.topo.circular {
		updateWrap(l, true)
	}
}

// bypassAndRemove deletes the data node at logical position p. A single
// remaining node is removed together with its edges. Otherwise a temporary
// pointer marks the node, arcs bypassing it are faded in, the node is faded
// out with its edges and the pointer, the arcs take the role of the removed
// links and the following nodes shift left.
func bypassAndRemove(l *linkedList, p int) {
	c := &l.core
	n := l.size()
	target := l.dataID(p)

	if n == 1 {
		c.fadeOutAndRemove([]graph.ID{target}, c.model.EdgesOf(target))
	} else {
		c.addAndFadeIn([]graph.Node{{
			ID:    tempPointer,
			Value: "temp",
			X:     l.xOf(p),
			Y:     -c.opts.MarkerOffset,
			Class: graph.ClassMarker,
		}}, []graph.Edge{{Source: tempPointer, Target: target, Class: graph.ClassMarkerEdge}})

		pred := l.headSentinel()
		if p > 0 {
			pred = l.dataID(p - 1)
		}
		// Each arc is paired with the class it takes once the node is gone.
		type arc struct {
			e    graph.Edge
			role graph.Class
		}
		var arcs []arc
		if p < n-1 {
			succ := l.dataID(p + 1)
			arcs = append(arcs, arc{graph.Edge{Source: pred, Target: succ, Class: graph.ClassArc}, l.linkClass(pred)})
			if l.topo.doubly && p > 0 {
				arcs = append(arcs, arc{graph.Edge{Source: succ, Target: pred, Class: graph.ClassArc}, graph.ClassPrev})
			}
		} else if l.topo.doubly {
			arcs = append(arcs, arc{graph.Edge{Source: l.tailSentinel(), Target: pred, Class: graph.ClassArc}, graph.ClassPointer})
		}
		if len(arcs) > 0 {
			edges := make([]graph.Edge, len(arcs))
			for i := range arcs {
				edges[i] = arcs[i].e
			}
			c.addAndFadeIn(nil, edges)
		}

		c.fadeOutAndRemove([]graph.ID{target, tempPointer}, c.model.EdgesOf(target))

		for _, a := range arcs {
			for i := range c.model.NumEdges() {
				e := c.model.EdgeAt(i)
				if e.Source == a.e.Source && e.Target == a.e.Target && e.Class == graph.ClassArc {
					e.Class = a.role
					break
				}
			}
		}
		c.model.Touch()
		c.refresh()

		if p < n-1 {
			shiftRange(c, l.dataIDs(p+1, n), -c.opts.NodeSpacing)
		}
	}

	switch {
	case l.active == p:
		l.active = -1
	case l.active > p:
		l.active--
	}
	c.model.Normalize()
	c.refresh()
	if l.topo.circular {
		updateWrap(l, true)
	}
}

// updateWrap keeps exactly one wrap edge from the last to the first data node
// of a non-empty circular list (a self-loop for a single node). The edge is
// faded when animate is set.
func updateWrap(l *linkedList, animate bool) {
	c := &l.core
	var existing []graph.Edge
	for _, e := range c.model.Edges() {
		if e.Class == graph.ClassWrap || e.Class == graph.ClassSelfLoop {
			existing = append(existing, e)
		}
	}
	var want []graph.Edge
	if n := l.size(); n > 0 {
		class := graph.ClassWrap
		if n == 1 {
			class = graph.ClassSelfLoop
		}
		want = append(want, graph.Edge{Source: l.dataID(n - 1), Target: l.dataID(0), Class: class, Opacity: 1})
	}
	if len(existing) == len(want) && (len(want) == 0 || sameLink(existing[0], want[0])) {
		return
	}
	if !animate {
		for _, e := range existing {
			c.model.RemoveEdgeExact(e.Source, e.Target, e.Class)
		}
		for _, e := range want {
			c.model.AddEdge(e)
		}
		c.model.Normalize()
		c.refresh()
		return
	}
	if len(existing) > 0 {
		c.fadeOutAndRemove(nil, existing)
	}
	if len(want) > 0 {
		c.addAndFadeIn(nil, want)
	}
	c.model.Normalize()
	c.refresh()
}

func sameLink(a, b graph.Edge) bool {
	return a.Source == b.Source && a.Target == b.Target && a.Class == b.Class
}
