// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"testing"

	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/stretchr/testify/require"
)

func edgesWhere(m *graph.Model, fn func(e graph.Edge) bool) []graph.Edge {
	var res []graph.Edge
	for _, e := range m.Edges() {
		if fn(e) {
			res = append(res, e)
		}
	}
	return res
}

func TestSinglyInsertFirstOnEmpty(t *testing.T) {
	l := NewSinglyLinkedList(testOptions(t, nil))
	l.Init(Config{})
	l.InsertFirst("5")
	requireValid(t, l)

	m := l.Snapshot()
	require.Equal(t, 2, m.NumNodes())
	require.Equal(t, 1, m.NumEdges())
	require.Equal(t, graph.Edge{
		Source: graph.Index(0), Target: graph.Index(1), Class: graph.ClassPointer, Opacity: 1,
	}, m.Edges()[0])
	n := m.Node(graph.Index(1))
	require.Equal(t, "5", n.Value)
	require.Equal(t, graph.ClassTail, n.Class)
	require.Equal(t, 0.0, n.Y)
	require.Equal(t, l.Options().NodeSpacing, n.X)
	require.Empty(t, edgesWhere(m, func(e graph.Edge) bool { return e.Source == graph.Index(1) }))
}

func TestSinglyOperations(t *testing.T) {
	var events testEvents
	l := NewSinglyLinkedList(testOptions(t, &events))
	l.Init(Config{})

	step := func(op func(), expected string) {
		t.Helper()
		op()
		requireValid(t, l)
		require.Equal(t, expected, describe(l))
	}
	step(func() { l.InsertFirst("5") }, "list: 5:tail")
	step(func() { l.InsertFirst("3") }, "list: 3:head 5:tail")
	step(func() { l.ActivateFirst() }, "list: 3:head-active 5:tail")
	step(func() { l.InsertAfterActive("4") }, "list: 3:head-active 4:internal 5:tail")
	require.Equal(t, 0, l.Active())

	v, ok := l.GetActiveValue()
	require.True(t, ok)
	require.Equal(t, "3", v)
	require.Equal(t, "[singly-linked-list] list.getActive value=3\n", events.take())

	step(func() { l.ActivateNext() }, "list: 3:head 4:internal-active 5:tail")
	step(func() { l.DeleteAfterActive() }, "list: 3:head 4:tail-active")
	step(func() { l.DeleteAfterActive() }, "list: 3:head 4:tail-active")
	require.Equal(t, "[singly-linked-list] list.deleteAfterActiveError reason=noSuccessor\n", events.take())

	step(func() { l.SetActiveValue("x") }, "list: 3:head x:tail-active")
	require.Equal(t, "[singly-linked-list] list.setActive value=x\n", events.take())

	step(func() { l.ActivateNext() }, "list: 3:head x:tail")
	require.False(t, l.IsActive())
	require.Equal(t, "[singly-linked-list] list.isActive result=false\n", events.take())

	step(func() { l.DeleteFirst() }, "list: x:tail")
	step(func() { l.DeleteFirst() }, "list: empty")
	step(func() { l.DeleteFirst() }, "list: empty")
	_, ok = l.GetFirstValue()
	require.False(t, ok)
	require.Equal(t,
		"[singly-linked-list] list.deleteFirstError reason=empty\n"+
			"[singly-linked-list] list.getFirstError reason=empty\n",
		events.take())
	require.Equal(t, 1, l.Snapshot().NumNodes())
}

func TestListInactiveErrors(t *testing.T) {
	var events testEvents
	l := NewDoublyLinkedList(testOptions(t, &events))
	l.Init(Config{})
	l.InsertFirst("1")
	events.take()

	before := l.Snapshot()
	l.InsertAfterActive("2")
	l.InsertBeforeActive("2")
	l.DeleteAfterActive()
	l.DeleteBeforeActive()
	l.ActivateNext()
	l.ActivatePrevious()
	l.SetActiveValue("2")
	l.GetActiveValue()
	require.Equal(t, ""+
		"[doubly-linked-list] list.insertAfterActiveError reason=notActive\n"+
		"[doubly-linked-list] list.insertBeforeActiveError reason=notActive\n"+
		"[doubly-linked-list] list.deleteAfterActiveError reason=notActive\n"+
		"[doubly-linked-list] list.deleteBeforeActiveError reason=notActive\n"+
		"[doubly-linked-list] list.activateNextError reason=notActive\n"+
		"[doubly-linked-list] list.activatePreviousError reason=notActive\n"+
		"[doubly-linked-list] list.setActiveError reason=notActive\n"+
		"[doubly-linked-list] list.getActiveError reason=notActive\n",
		events.take())
	require.True(t, before.Equal(l.Snapshot()))
	require.EqualValues(t, 8, l.Metrics().Ops.Unchanged)
}

func requireDoublySymmetric(t *testing.T, l *DoublyLinkedList) {
	t.Helper()
	m := l.Snapshot()
	for _, e := range m.Edges() {
		switch e.Class {
		case graph.ClassNext:
			require.NotEmpty(t, edgesWhere(m, func(r graph.Edge) bool {
				return r.Source == e.Target && r.Target == e.Source && r.Class == graph.ClassPrev
			}), "no reverse link for %s -> %s", e.Source, e.Target)
		case graph.ClassPointer:
			require.True(t, e.Source == graph.Index(0) || e.Source == graph.Index(1))
		}
	}
}

func TestDoublyOperations(t *testing.T) {
	var events testEvents
	l := NewDoublyLinkedList(testOptions(t, &events))
	l.Init(Config{})

	step := func(op func(), expected string) {
		t.Helper()
		op()
		requireValid(t, l)
		requireDoublySymmetric(t, l)
		require.Equal(t, expected, describe(l))
	}
	step(func() { l.InsertLast("a") }, "list: a:head-tail")
	step(func() { l.InsertLast("b") }, "list: a:head b:tail")
	step(func() { l.InsertFirst("z") }, "list: z:head a:internal b:tail")
	step(func() { l.ActivateLast() }, "list: z:head a:internal b:tail-active")
	step(func() { l.InsertBeforeActive("m") }, "list: z:head a:internal m:internal b:tail-active")
	require.Equal(t, 3, l.Active())
	step(func() { l.DeleteBeforeActive() }, "list: z:head a:internal b:tail-active")
	step(func() { l.ActivatePrevious() }, "list: z:head a:internal-active b:tail")

	v, ok := l.GetLastValue()
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, "[doubly-linked-list] list.getLast value=b\n", events.take())

	step(func() { l.DeleteLast() }, "list: z:head a:tail-active")
	step(func() { l.DeleteLast() }, "list: z:head-tail")
	require.Equal(t, -1, l.Active())
	step(func() { l.ActivateFirst() }, "list: z:head-tail-active")
	step(func() { l.DeleteBeforeActive() }, "list: z:head-tail-active")
	require.Equal(t, "[doubly-linked-list] list.deleteBeforeActiveError reason=noPredecessor\n", events.take())
	step(func() { l.ActivatePrevious() }, "list: z:head-tail")
	step(func() { l.DeleteLast() }, "list: empty")
	step(func() { l.DeleteLast() }, "list: empty")
	require.Equal(t, "[doubly-linked-list] list.deleteLastError reason=empty\n", events.take())
	require.Equal(t, 2, l.Snapshot().NumNodes())
}

func TestCircularWrap(t *testing.T) {
	l := NewCircularLinkedList(testOptions(t, nil))
	l.Init(Config{})
	wrap := func() []graph.Edge {
		return edgesWhere(l.Snapshot(), func(e graph.Edge) bool {
			return e.Class == graph.ClassWrap || e.Class == graph.ClassSelfLoop
		})
	}

	l.InsertFirst("1")
	requireValid(t, l)
	require.Equal(t, []graph.Edge{{
		Source: graph.Index(1), Target: graph.Index(1), Class: graph.ClassSelfLoop, Opacity: 1,
	}}, wrap())

	l.InsertFirst("2")
	requireValid(t, l)
	require.Equal(t, "list: 2:head 1:tail", describe(l))
	require.Equal(t, []graph.Edge{{
		Source: graph.Index(2), Target: graph.Index(1), Class: graph.ClassWrap, Opacity: 1,
	}}, wrap())

	l.ActivateFirst()
	l.ActivateNext()
	require.Equal(t, 1, l.Active())
	l.ActivateNext()
	require.Equal(t, 0, l.Active())
	l.ActivateNext()

	// The successor of the last node is the first node.
	l.DeleteAfterActive()
	requireValid(t, l)
	require.Equal(t, "list: 1:tail-active", describe(l))
	require.Equal(t, []graph.Edge{{
		Source: graph.Index(1), Target: graph.Index(1), Class: graph.ClassSelfLoop, Opacity: 1,
	}}, wrap())

	l.DeleteFirst()
	requireValid(t, l)
	require.Empty(t, wrap())
	require.Equal(t, -1, l.Active())
}

func TestListAnimationBracket(t *testing.T) {
	events := testEvents{animations: true}
	opts := testOptions(t, &events)
	var statuses []string
	opts.EventListener.StatusText = func(s string) { statuses = append(statuses, s) }
	l := NewSinglyLinkedList(opts)
	l.Init(Config{})

	l.InsertFirst("1")
	require.Equal(t, "begin insert-first\nend insert-first changed=true\n", events.take())
	require.Equal(t, []string{StatusCentering, StatusAnimating, StatusCentering, ""}, statuses)

	statuses = nil
	l.GetFirstValue()
	require.Equal(t, ""+
		"begin get-first\n"+
		"[singly-linked-list] list.getFirst value=1\n"+
		"end get-first changed=false\n",
		events.take())
	require.Equal(t, []string{StatusCentering, StatusAnimating}, statuses)
}

func TestSinglyInsertDeleteRoundTrip(t *testing.T) {
	l := NewSinglyLinkedList(testOptions(t, nil))
	l.Init(Config{})
	for _, v := range []string{"c", "b", "a"} {
		before := l.Snapshot()
		l.InsertFirst("x")
		requireValid(t, l)
		l.DeleteFirst()
		requireValid(t, l)
		require.True(t, before.Equal(l.Snapshot()), "before:\n%s\nafter:\n%s", before, l.Snapshot())

		l.InsertFirst(v)
		if v == "b" {
			l.ActivateFirst()
			l.ActivateNext()
		}
	}
	require.Equal(t, "list: a:head b:internal c:tail-active", describe(l))
}
