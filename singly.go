// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

// SinglyLinkedList is a list with a single init pointer and forward links.
type SinglyLinkedList struct {
	linkedList
}

var _ Structure = (*SinglyLinkedList)(nil)

// NewSinglyLinkedList returns an uninitialized singly linked list.
func NewSinglyLinkedList(opts *Options) *SinglyLinkedList {
	l := &SinglyLinkedList{}
	l.initList(KindSinglyLinkedList, topology{sentinels: 1}, opts)
	return l
}
