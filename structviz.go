// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package structviz drives step-by-step animated visualizations of classic
// data structures: singly, doubly and circular linked lists, array-backed
// stacks and queues, and binary search trees.
//
// Each structure owns a model of nodes and edges. An operation (insert,
// delete, search, traverse, activate) mutates the model in discrete steps;
// between steps the structure asks the Renderer to fade elements in or out and
// waits on the Clock for a multiple of Options.AnimationSpeed. Results are
// reported through the EventListener, keyed by dot-namespaced identifiers (see
// the Key* constants).
//
// A structure runs one operation at a time. A call made before Init or while
// another operation is animating returns immediately without any effect.
package structviz // import "github.com/cockroachdb/structviz"

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/structviz/internal/base"
)

// Kind identifies a structure variant.
type Kind int8

const (
	KindSinglyLinkedList Kind = iota
	KindDoublyLinkedList
	KindCircularLinkedList
	KindStack
	KindQueue
	KindBinarySearchTree
	numKinds
)

var kindNames = [numKinds]string{
	KindSinglyLinkedList:   "singly-linked-list",
	KindDoublyLinkedList:   "doubly-linked-list",
	KindCircularLinkedList: "circular-linked-list",
	KindStack:              "stack",
	KindQueue:              "queue",
	KindBinarySearchTree:   "binary-search-tree",
}

// Kinds returns all structure kinds.
func Kinds() []Kind {
	res := make([]Kind, numKinds)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return redact.StringWithoutMarkers(k)
}

// SafeFormat implements redact.SafeFormatter.
func (k Kind) SafeFormat(w redact.SafePrinter, _ rune) {
	if k < 0 || k >= numKinds {
		w.Printf("kind(%d)", redact.Safe(int8(k)))
		return
	}
	w.Print(redact.SafeString(kindNames[k]))
}

// ParseKind parses the name of a structure kind. Short aliases (sll, dll,
// cll, bst) are accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "sll", "singly":
		return KindSinglyLinkedList, nil
	case "dll", "doubly":
		return KindDoublyLinkedList, nil
	case "cll", "circular":
		return KindCircularLinkedList, nil
	case "bst", "tree":
		return KindBinarySearchTree, nil
	}
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(base.ErrUnknownKind, "%q", errors.Safe(s))
}

// Config is the configuration accepted by Init.
type Config struct {
	// Capacity is the number of elements an array-backed structure can hold.
	// Zero selects Options.DefaultCapacity and values above
	// Options.MaxCapacity are clamped. Ignored by pointer-based structures.
	Capacity int
}

// Structure is implemented by every structure variant.
type Structure interface {
	// Kind returns the variant.
	Kind() Kind
	// Init creates the sentinel nodes or slots, attaches the renderer and
	// centers the view. It is a no-op if the structure is initialized.
	Init(cfg Config)
	// Reset clears the model and detaches the renderer. It is a no-op while an
	// operation is animating.
	Reset()
	// Random resets the structure and populates it with a random instance,
	// without animation. It is a no-op while an operation is animating.
	Random()
	// Initialized returns true between Init and Reset.
	Initialized() bool
	// Animating returns true while an operation is in flight.
	Animating() bool
	// Snapshot returns a copy of the current model.
	Snapshot() *Model
	// Metrics returns the operation counters of the structure.
	Metrics() Metrics
	// Options returns the options in effect, with defaults filled in.
	Options() *Options
}

// New returns an uninitialized structure of the given kind.
func New(kind Kind, opts *Options) Structure {
	switch kind {
	case KindSinglyLinkedList:
		return NewSinglyLinkedList(opts)
	case KindDoublyLinkedList:
		return NewDoublyLinkedList(opts)
	case KindCircularLinkedList:
		return NewCircularLinkedList(opts)
	case KindStack:
		return NewStack(opts)
	case KindQueue:
		return NewQueue(opts)
	case KindBinarySearchTree:
		return NewBinarySearchTree(opts)
	default:
		panic(errors.AssertionFailedf("unknown structure kind %s", kind))
	}
}
