// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

// DoublyLinkedList is a list with head and tail sentinels, and next and prev
// links between neighbors. It supports the operations of SinglyLinkedList
// mirrored at the tail.
type DoublyLinkedList struct {
	linkedList
}

var _ Structure = (*DoublyLinkedList)(nil)

// NewDoublyLinkedList returns an uninitialized doubly linked list.
func NewDoublyLinkedList(opts *Options) *DoublyLinkedList {
	l := &DoublyLinkedList{}
	l.initList(KindDoublyLinkedList, topology{sentinels: 2, doubly: true}, opts)
	return l
}

// InsertLast inserts a node with the given value at the end of the list.
func (l *DoublyLinkedList) InsertLast(v string) {
	if !l.startOp("insert-last") {
		return
	}
	spliceInsert(&l.linkedList, l.size(), v)
	l.afterAnimationEnds()
}

// InsertBeforeActive inserts a node before the active node.
func (l *DoublyLinkedList) InsertBeforeActive(v string) {
	if !l.startOp("insert-before-active") {
		return
	}
	if l.active < 0 {
		l.fail(KeyListInsertBeforeError, ReasonNotActive)
		return
	}
	spliceInsert(&l.linkedList, l.active, v)
	l.afterAnimationEnds()
}

// DeleteLast deletes the last node.
func (l *DoublyLinkedList) DeleteLast() {
	if !l.startOp("delete-last") {
		return
	}
	n := l.size()
	if n == 0 {
		l.fail(KeyListDeleteLastError, ReasonEmpty)
		return
	}
	bypassAndRemove(&l.linkedList, n-1)
	l.afterAnimationEnds()
}

// DeleteBeforeActive deletes the predecessor of the active node.
func (l *DoublyLinkedList) DeleteBeforeActive() {
	if !l.startOp("delete-before-active") {
		return
	}
	switch {
	case l.active < 0:
		l.fail(KeyListDeleteBeforeError, ReasonNotActive)
	case l.active == 0:
		l.fail(KeyListDeleteBeforeError, ReasonNoPredecessor)
	default:
		bypassAndRemove(&l.linkedList, l.active-1)
		l.afterAnimationEnds()
	}
}

// ActivateLast makes the last node active.
func (l *DoublyLinkedList) ActivateLast() {
	if !l.startOp("activate-last") {
		return
	}
	n := l.size()
	if n == 0 {
		l.fail(KeyListActivateLastError, ReasonEmpty)
		return
	}
	l.activate(n - 1)
}

// ActivatePrevious moves the activity to the previous node. Before the first
// node the list becomes inactive.
func (l *DoublyLinkedList) ActivatePrevious() {
	if !l.startOp("activate-previous") {
		return
	}
	if l.active < 0 {
		l.fail(KeyListActivatePreviousError, ReasonNotActive)
		return
	}
	l.activate(l.active - 1)
}

// GetLastValue reports and returns the value of the last node.
func (l *DoublyLinkedList) GetLastValue() (string, bool) {
	if !l.startOp("get-last") {
		return "", false
	}
	n := l.size()
	if n == 0 {
		l.fail(KeyListGetLastError, ReasonEmpty)
		return "", false
	}
	return l.query(KeyListGetLast, n-1), true
}
