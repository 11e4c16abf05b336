// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/graph"
)

// topology parameterizes the shared linked list engine.
type topology struct {
	// sentinels is the number of sentinel nodes preceding the data nodes: one
	// for singly and circular lists, two (head and tail) for doubly lists.
	sentinels int
	doubly    bool
	circular  bool
}

// linkedList is the engine behind the three linked list variants. The
// operations every variant supports are exported here; the variant types add
// the operations specific to them.
//
// The data node at logical position p has the id Index(sentinels+p) at every
// phase boundary.
type linkedList struct {
	core
	topo topology
	// active is the logical position of the active node, or -1.
	active int
	// addingFuture is the logical position a node being inserted will take,
	// or -1.
	addingFuture int
}

func (l *linkedList) initList(kind Kind, topo topology, opts *Options) {
	l.topo = topo
	l.active = -1
	l.addingFuture = -1
	l.initCore(kind, opts, l)
}

// Len returns the number of data nodes.
func (l *linkedList) Len() int { return l.size() }

// Active returns the logical position of the active node, or -1.
func (l *linkedList) Active() int { return l.active }

func (l *linkedList) size() int {
	n := 0
	for _, nd := range l.model.Nodes() {
		if nd.ID.Kind() == graph.KindIndex {
			n++
		}
	}
	return max(n-l.topo.sentinels, 0)
}

func (l *linkedList) dataID(p int) graph.ID { return graph.Index(l.topo.sentinels + p) }

// dataIDs returns the ids of the data nodes at positions [from, to).
func (l *linkedList) dataIDs(from, to int) []graph.ID {
	ids := make([]graph.ID, 0, to-from)
	for p := from; p < to; p++ {
		ids = append(ids, l.dataID(p))
	}
	return ids
}

func (l *linkedList) headSentinel() graph.ID { return graph.Index(0) }

func (l *linkedList) tailSentinel() graph.ID { return graph.Index(1) }

func (l *linkedList) isSentinel(id graph.ID) bool {
	return id.Kind() == graph.KindIndex && id.Int() < l.topo.sentinels
}

func (l *linkedList) xOf(p int) float64 { return float64(p+1) * l.opts.NodeSpacing }

// linkClass returns the class of a forward link leaving the given node.
func (l *linkedList) linkClass(source graph.ID) graph.Class {
	if l.isSentinel(source) {
		return graph.ClassPointer
	}
	return graph.ClassNext
}

// addLink adds one edge and fades it in.
func (l *linkedList) addLink(source, target graph.ID, class graph.Class) {
	l.addAndFadeIn(nil, []graph.Edge{{Source: source, Target: target, Class: class}})
}

func (l *linkedList) value(p int) string { return l.mustNode(l.dataID(p)).Value }

func (l *linkedList) setup(Config) {
	if l.topo.doubly {
		half := l.opts.NodeSpacing / 2
		l.model.AddNode(graph.Node{ID: l.headSentinel(), Value: "head", Y: -half, Class: graph.ClassSentinel, Opacity: 1})
		l.model.AddNode(graph.Node{ID: l.tailSentinel(), Value: "tail", Y: half, Class: graph.ClassSentinel, Opacity: 1})
		return
	}
	l.model.AddNode(graph.Node{ID: l.headSentinel(), Value: "init", Class: graph.ClassSentinel, Opacity: 1})
}

func (l *linkedList) clear() {
	l.active = -1
	l.addingFuture = -1
}

func (l *linkedList) randomConfig(*rand.Rand) Config { return Config{} }

func (l *linkedList) populate(rng *rand.Rand) {
	n := 2 + rng.IntN(4)
	for p := 0; p < n; p++ {
		l.model.AddNode(graph.Node{
			ID:      l.dataID(p),
			Value:   strconv.Itoa(rng.IntN(100)),
			X:       l.xOf(p),
			Opacity: 1,
		})
	}
	link := func(s, t graph.ID, class graph.Class) {
		l.model.AddEdge(graph.Edge{Source: s, Target: t, Class: class, Opacity: 1})
	}
	link(l.headSentinel(), l.dataID(0), graph.ClassPointer)
	for p := 0; p+1 < n; p++ {
		link(l.dataID(p), l.dataID(p+1), graph.ClassNext)
		if l.topo.doubly {
			link(l.dataID(p+1), l.dataID(p), graph.ClassPrev)
		}
	}
	if l.topo.doubly {
		link(l.tailSentinel(), l.dataID(n-1), graph.ClassPointer)
	}
	l.model.Normalize()
	if l.topo.circular {
		updateWrap(l, false)
	}
}

func (l *linkedList) redraw() {
	active, ok := l.activeID()
	if l.topo.doubly {
		classifyDoubly(&l.model, l.topo, active, ok, l.addingFuture)
	} else {
		classifySingly(&l.model, l.topo, active, ok)
	}
}

func (l *linkedList) activeID() (graph.ID, bool) {
	if l.active < 0 {
		return graph.ID{}, false
	}
	return l.dataID(l.active), true
}

func (l *linkedList) setOpacity(graph.Element, float64) bool { return false }

func (l *linkedList) check() error {
	n := l.size()
	for i, nd := range l.model.Nodes() {
		if nd.ID.Kind() != graph.KindIndex {
			return errors.AssertionFailedf("stray node %s", nd.ID)
		}
		if nd.ID.Int() != i {
			return errors.AssertionFailedf("node %s at position %d", nd.ID, i)
		}
		if nd.Opacity != 1 {
			return errors.AssertionFailedf("node %s has opacity %g", nd.ID, nd.Opacity)
		}
	}
	if l.active < -1 || l.active >= n {
		return errors.AssertionFailedf("active %d out of range [0, %d)", l.active, n)
	}
	if l.addingFuture != -1 {
		return errors.AssertionFailedf("pending insertion at %d", l.addingFuture)
	}
	has := func(s, t graph.ID, class graph.Class) bool {
		for _, e := range l.model.Edges() {
			if e.Source == s && e.Target == t && e.Class == class {
				return true
			}
		}
		return false
	}
	want := 0
	if n > 0 {
		if !has(l.headSentinel(), l.dataID(0), graph.ClassPointer) {
			return errors.AssertionFailedf("missing pointer to first node")
		}
		want++
		if l.topo.doubly {
			if !has(l.tailSentinel(), l.dataID(n-1), graph.ClassPointer) {
				return errors.AssertionFailedf("missing pointer to last node")
			}
			want++
		}
		if l.topo.circular {
			class := graph.ClassWrap
			if n == 1 {
				class = graph.ClassSelfLoop
			}
			if !has(l.dataID(n-1), l.dataID(0), class) {
				return errors.AssertionFailedf("missing wrap edge")
			}
			want++
		}
	}
	for p := 0; p+1 < n; p++ {
		if !has(l.dataID(p), l.dataID(p+1), graph.ClassNext) {
			return errors.AssertionFailedf("missing next link %d -> %d", p, p+1)
		}
		want++
		if l.topo.doubly {
			if !has(l.dataID(p+1), l.dataID(p), graph.ClassPrev) {
				return errors.AssertionFailedf("missing prev link %d -> %d", p+1, p)
			}
			want++
		}
	}
	if got := l.model.NumEdges(); got != want {
		return errors.AssertionFailedf("%d edges, expected %d", got, want)
	}
	for _, e := range l.model.Edges() {
		if e.Opacity != 1 {
			return errors.AssertionFailedf("edge %s -> %s has opacity %g", e.Source, e.Target, e.Opacity)
		}
	}
	return nil
}

// InsertFirst inserts a node with the given value at the front of the list.
func (l *linkedList) InsertFirst(v string) {
	if !l.startOp("insert-first") {
		return
	}
	spliceInsert(l, 0, v)
	l.afterAnimationEnds()
}

// InsertAfterActive inserts a node after the active node.
func (l *linkedList) InsertAfterActive(v string) {
	if !l.startOp("insert-after-active") {
		return
	}
	if l.active < 0 {
		l.fail(KeyListInsertAfterError, ReasonNotActive)
		return
	}
	spliceInsert(l, l.active+1, v)
	l.afterAnimationEnds()
}

// DeleteFirst deletes the first node.
func (l *linkedList) DeleteFirst() {
	if !l.startOp("delete-first") {
		return
	}
	if l.size() == 0 {
		l.fail(KeyListDeleteFirstError, ReasonEmpty)
		return
	}
	bypassAndRemove(l, 0)
	l.afterAnimationEnds()
}

// DeleteAfterActive deletes the successor of the active node. In a circular
// list the successor of the last node is the first node.
func (l *linkedList) DeleteAfterActive() {
	if !l.startOp("delete-after-active") {
		return
	}
	n := l.size()
	switch {
	case l.active < 0:
		l.fail(KeyListDeleteAfterError, ReasonNotActive)
		return
	case l.active < n-1:
		bypassAndRemove(l, l.active+1)
	case l.topo.circular && n >= 2:
		bypassAndRemove(l, 0)
	default:
		l.fail(KeyListDeleteAfterError, ReasonNoSuccessor)
		return
	}
	l.afterAnimationEnds()
}

// ActivateFirst makes the first node active.
func (l *linkedList) ActivateFirst() {
	if !l.startOp("activate-first") {
		return
	}
	if l.size() == 0 {
		l.fail(KeyListActivateFirstError, ReasonEmpty)
		return
	}
	l.activate(0)
}

// ActivateNext moves the activity to the next node. Past the last node the
// list becomes inactive, or wraps to the first node in a circular list.
func (l *linkedList) ActivateNext() {
	if !l.startOp("activate-next") {
		return
	}
	switch {
	case l.active < 0:
		l.fail(KeyListActivateNextError, ReasonNotActive)
	case l.active < l.size()-1:
		l.activate(l.active + 1)
	case l.topo.circular:
		l.activate(0)
	default:
		l.activate(-1)
	}
}

func (l *linkedList) activate(p int) {
	l.active = p
	l.refresh()
	l.wait(1)
	l.afterAnimationEnds()
}

// GetFirstValue reports and returns the value of the first node.
func (l *linkedList) GetFirstValue() (string, bool) {
	if !l.startOp("get-first") {
		return "", false
	}
	if l.size() == 0 {
		l.fail(KeyListGetFirstError, ReasonEmpty)
		return "", false
	}
	return l.query(KeyListGetFirst, 0), true
}

// GetActiveValue reports and returns the value of the active node.
func (l *linkedList) GetActiveValue() (string, bool) {
	if !l.startOp("get-active") {
		return "", false
	}
	if l.active < 0 {
		l.fail(KeyListGetActiveError, ReasonNotActive)
		return "", false
	}
	return l.query(KeyListGetActive, l.active), true
}

// query reports the value at position p and ends the operation without
// change.
func (l *linkedList) query(key string, p int) string {
	v := l.value(p)
	l.report(key, Param{Name: ParamValue, Value: v})
	l.afterAnimationWithoutChange()
	return v
}

// SetActiveValue replaces the value of the active node.
func (l *linkedList) SetActiveValue(v string) {
	if !l.startOp("set-active") {
		return
	}
	if l.active < 0 {
		l.fail(KeyListSetActiveError, ReasonNotActive)
		return
	}
	l.setValue(l.dataID(l.active), v)
	l.refresh()
	l.wait(1)
	l.report(KeyListSetActive, Param{Name: ParamValue, Value: v})
	l.afterAnimationEnds()
}

// IsActive reports and returns whether the list has an active node.
func (l *linkedList) IsActive() bool {
	if !l.startOp("is-active") {
		return false
	}
	res := l.active >= 0
	l.report(KeyListIsActive, Param{Name: ParamResult, Value: strconv.FormatBool(res)})
	l.afterAnimationWithoutChange()
	return res
}
