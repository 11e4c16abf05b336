// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import "strings"

// Class is the visual class of a node or edge. The set of classes is closed;
// renderers map each class to a style.
type Class string

// Node classes.
const (
	ClassNone Class = ""
	// ClassSentinel is the init pointer node(s) of a linked list.
	ClassSentinel Class = "sentinel"
	// ClassInternal is a list node with both an incoming and an outgoing link.
	ClassInternal Class = "internal"
	// ClassHead is a list node with an outgoing link only.
	ClassHead Class = "head"
	// ClassTail is a list node with an incoming link only.
	ClassTail Class = "tail"
	// ClassHeadTail is the only node of a doubly linked list.
	ClassHeadTail Class = "head-tail"
	// ClassIsolated is a node that has no links yet.
	ClassIsolated Class = "isolated"

	ClassMarker Class = "marker"
	ClassCursor Class = "cursor"

	ClassSlot       Class = "slot"
	ClassSlotFilled Class = "slot-filled"
	ClassSlotTop    Class = "slot-top"

	ClassKey         Class = "key"
	ClassPlaceholder Class = "placeholder"
	ClassHighlight   Class = "highlight"
	ClassFound       Class = "found"
	ClassExists      Class = "exists"
	ClassVisited     Class = "visited"
	ClassPromoted    Class = "promoted"
)

// Edge classes.
const (
	// ClassPointer is an edge leaving a sentinel.
	ClassPointer Class = "pointer"
	ClassNext    Class = "next"
	ClassPrev    Class = "prev"
	// ClassArc is a bypass edge shown while a node is being unlinked.
	ClassArc Class = "arc"
	// ClassMarkerEdge connects a marker to the node it points at.
	ClassMarkerEdge Class = "marker-edge"
	// ClassWrap is the last-to-first edge of a circular structure.
	ClassWrap Class = "wrap"
	// ClassSelfLoop is the wrap edge of a circular list with one node.
	ClassSelfLoop Class = "self-loop"
	ClassChild    Class = "child"
	ClassTraverse Class = "traversed"
)

const activeSuffix = "-active"

// Active returns the active variant of a list node class.
func (c Class) Active() Class {
	if c.IsActive() {
		return c
	}
	return c + activeSuffix
}

// IsActive returns true if the class is the active variant of a class.
func (c Class) IsActive() bool {
	return strings.HasSuffix(string(c), activeSuffix)
}

// Base strips the active suffix.
func (c Class) Base() Class {
	return Class(strings.TrimSuffix(string(c), activeSuffix))
}

// IsLink returns true for edge classes that take part in list topology.
// Wrap and marker edges are decorations and never count towards degrees.
func (c Class) IsLink() bool {
	switch c {
	case ClassNext, ClassPrev, ClassArc:
		return true
	}
	return false
}
