// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/cockroachdb/redact"
)

// IDKind is the tag of an ID.
type IDKind uint8

const (
	// KindIndex identifies a node by its position in a linear structure or by
	// its slot in an array-backed structure.
	KindIndex IDKind = iota
	// KindKey identifies a tree node holding a key.
	KindKey
	// KindPlaceholder identifies the null leaf on one side of a tree node.
	KindPlaceholder
	// KindRootPlaceholder identifies the null root of an empty tree.
	KindRootPlaceholder
	// KindDetached identifies a tree node that no longer owns its key but is
	// still visible (e.g. the in-order successor after its key was promoted).
	KindDetached
	// KindMarker identifies a visual-only node (pointers, cursors).
	KindMarker
)

// Side is the side of a child under its parent.
type Side uint8

const (
	Left Side = iota
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ID identifies a node of a Model. IDs are comparable and can be used as map
// keys. The zero value is Index(0).
type ID struct {
	kind IDKind
	n    int
	// Placeholder parent; parentKind is either KindKey or KindDetached.
	parentKind IDKind
	side       Side
	name       string
}

// Index returns the positional ID i.
func Index(i int) ID {
	return ID{kind: KindIndex, n: i}
}

// Key returns the ID of the tree node holding key k.
func Key(k int) ID {
	return ID{kind: KindKey, n: k}
}

// Detached returns the ID of a tree node identified by its handle rather than
// its key.
func Detached(handle int) ID {
	return ID{kind: KindDetached, n: handle}
}

// Placeholder returns the ID of the null leaf on the given side of parent.
// The parent must be a Key or Detached ID.
func Placeholder(parent ID, side Side) ID {
	if parent.kind != KindKey && parent.kind != KindDetached {
		panic(fmt.Sprintf("placeholder parent %s is not a tree node", parent))
	}
	return ID{kind: KindPlaceholder, n: parent.n, parentKind: parent.kind, side: side}
}

// RootPlaceholder returns the ID of the null root of an empty tree.
func RootPlaceholder() ID {
	return ID{kind: KindRootPlaceholder}
}

// Marker returns the ID of a named visual-only node.
func Marker(name string) ID {
	return ID{kind: KindMarker, name: name}
}

// Kind returns the tag of the ID.
func (id ID) Kind() IDKind { return id.kind }

// Int returns the index, key or handle carried by the ID.
func (id ID) Int() int { return id.n }

// Side returns the side of a placeholder ID.
func (id ID) Side() Side { return id.side }

// Name returns the name of a marker ID.
func (id ID) Name() string { return id.name }

// Parent returns the parent of a placeholder ID.
func (id ID) Parent() (ID, bool) {
	if id.kind != KindPlaceholder {
		return ID{}, false
	}
	return ID{kind: id.parentKind, n: id.n}, true
}

// IsPlaceholder returns true for both kinds of null leaves.
func (id ID) IsPlaceholder() bool {
	return id.kind == KindPlaceholder || id.kind == KindRootPlaceholder
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return redact.StringWithoutMarkers(id)
}

// SafeFormat implements redact.SafeFormatter.
func (id ID) SafeFormat(w redact.SafePrinter, _ rune) {
	switch id.kind {
	case KindIndex, KindKey:
		w.Print(redact.SafeString(strconv.Itoa(id.n)))
	case KindDetached:
		w.Printf("detached-%d", redact.Safe(id.n))
	case KindPlaceholder:
		parent, _ := id.Parent()
		w.Printf("null-%s-%s", parent, redact.SafeString(id.side.String()))
	case KindRootPlaceholder:
		w.Print(redact.SafeString("nullNode"))
	case KindMarker:
		w.Print(redact.SafeString(id.name))
	default:
		w.Printf("unknown(%d)", redact.Safe(id.kind))
	}
}

// Compare defines a total order on IDs: first by kind, then by the carried
// integer, then by placeholder parent and side, then by marker name.
func (id ID) Compare(o ID) int {
	if c := cmp.Compare(id.kind, o.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(id.n, o.n); c != 0 {
		return c
	}
	if c := cmp.Compare(id.parentKind, o.parentKind); c != 0 {
		return c
	}
	if c := cmp.Compare(id.side, o.side); c != 0 {
		return c
	}
	return cmp.Compare(id.name, o.name)
}
