// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

// CircularLinkedList is a singly linked list whose last node links back to
// the first node through a wrap edge. Activation and deletion past the last
// node wrap to the first node.
type CircularLinkedList struct {
	linkedList
}

var _ Structure = (*CircularLinkedList)(nil)

// NewCircularLinkedList returns an uninitialized circular linked list.
func NewCircularLinkedList(opts *Options) *CircularLinkedList {
	l := &CircularLinkedList{}
	l.initList(KindCircularLinkedList, topology{sentinels: 1, circular: true}, opts)
	return l
}
