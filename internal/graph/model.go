// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package graph contains the renderable model of a visualized structure: an
// ordered sequence of nodes and an ordered sequence of edges.
package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/swiss"
)

// Node is a renderable node.
type Node struct {
	ID      ID
	Value   string
	X, Y    float64
	Class   Class
	Opacity float64
}

// Edge is a renderable directed edge. Multiple edges between the same pair of
// nodes are allowed as long as their roles differ; lookups by pair return the
// first match.
type Edge struct {
	Source, Target ID
	Class          Class
	Opacity        float64
}

// Model is an owned, versioned container of nodes and edges. Every structural
// change bumps the version.
//
// Pointers returned by Node, Edge, NodeAt and EdgeAt are valid until the next
// structural change.
type Model struct {
	nodes   []Node
	edges   []Edge
	version uint64
}

// Nodes returns the nodes in order. The slice must not be modified.
func (m *Model) Nodes() []Node { return m.nodes }

// Edges returns the edges in order. The slice must not be modified.
func (m *Model) Edges() []Edge { return m.edges }

// NumNodes returns the number of nodes.
func (m *Model) NumNodes() int { return len(m.nodes) }

// NumEdges returns the number of edges.
func (m *Model) NumEdges() int { return len(m.edges) }

// Version returns the number of changes applied to the model.
func (m *Model) Version() uint64 { return m.version }

// Touch records an in-place change made through a pointer.
func (m *Model) Touch() { m.version++ }

// Reset removes all nodes and edges.
func (m *Model) Reset() {
	m.nodes = m.nodes[:0]
	m.edges = m.edges[:0]
	m.version++
}

// AddNode appends a node.
func (m *Model) AddNode(n Node) {
	m.nodes = append(m.nodes, n)
	m.version++
}

// MoveNode moves the node at position from to position to, shifting the nodes
// in between.
func (m *Model) MoveNode(from, to int) {
	if from == to {
		return
	}
	n := m.nodes[from]
	m.nodes = slices.Delete(m.nodes, from, from+1)
	m.nodes = slices.Insert(m.nodes, to, n)
	m.version++
}

// RemoveNode removes a node; edges are not touched. Returns false if the node
// does not exist.
func (m *Model) RemoveNode(id ID) bool {
	i := m.NodeIndex(id)
	if i < 0 {
		return false
	}
	m.nodes = slices.Delete(m.nodes, i, i+1)
	m.version++
	return true
}

// AddEdge appends an edge.
func (m *Model) AddEdge(e Edge) {
	m.edges = append(m.edges, e)
	m.version++
}

// RemoveEdge removes the first edge from source to target. Returns false if
// there is no such edge.
func (m *Model) RemoveEdge(source, target ID) bool {
	i := m.EdgeIndex(source, target)
	if i < 0 {
		return false
	}
	m.edges = slices.Delete(m.edges, i, i+1)
	m.version++
	return true
}

// RemoveEdgeExact removes the first edge matching source, target and class.
// Returns false if there is no such edge.
func (m *Model) RemoveEdgeExact(source, target ID, class Class) bool {
	for i := range m.edges {
		if e := &m.edges[i]; e.Source == source && e.Target == target && e.Class == class {
			m.edges = slices.Delete(m.edges, i, i+1)
			m.version++
			return true
		}
	}
	return false
}

// RemoveEdgesOf removes all edges incident to the node and returns how many
// were removed.
func (m *Model) RemoveEdgesOf(id ID) int {
	before := len(m.edges)
	m.edges = slices.DeleteFunc(m.edges, func(e Edge) bool {
		return e.Source == id || e.Target == id
	})
	if n := before - len(m.edges); n > 0 {
		m.version++
		return n
	}
	return 0
}

// RemoveEdgesFunc removes all edges for which fn returns true.
func (m *Model) RemoveEdgesFunc(fn func(e Edge) bool) int {
	before := len(m.edges)
	m.edges = slices.DeleteFunc(m.edges, fn)
	if n := before - len(m.edges); n > 0 {
		m.version++
		return n
	}
	return 0
}

// NodeIndex returns the position of the node, or -1.
func (m *Model) NodeIndex(id ID) int {
	for i := range m.nodes {
		if m.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// EdgeIndex returns the position of the first edge from source to target, or
// -1.
func (m *Model) EdgeIndex(source, target ID) int {
	for i := range m.edges {
		if m.edges[i].Source == source && m.edges[i].Target == target {
			return i
		}
	}
	return -1
}

// Node returns the node with the given ID, or nil.
func (m *Model) Node(id ID) *Node {
	if i := m.NodeIndex(id); i >= 0 {
		return &m.nodes[i]
	}
	return nil
}

// Edge returns the first edge from source to target, or nil.
func (m *Model) Edge(source, target ID) *Edge {
	if i := m.EdgeIndex(source, target); i >= 0 {
		return &m.edges[i]
	}
	return nil
}

// NodeAt returns the node at the given position.
func (m *Model) NodeAt(i int) *Node { return &m.nodes[i] }

// EdgeAt returns the edge at the given position.
func (m *Model) EdgeAt(i int) *Edge { return &m.edges[i] }

// EdgesOf returns a copy of all edges incident to the node.
func (m *Model) EdgesOf(id ID) []Edge {
	var res []Edge
	for _, e := range m.edges {
		if e.Source == id || e.Target == id {
			res = append(res, e)
		}
	}
	return res
}

// Normalize re-keys the model: every Index node gets the ID Index(i) where i
// is its position among the Index nodes, and every edge endpoint is rewritten
// through the resulting remap table. The table is complete before any edge is
// rewritten. Edges are then put in canonical order. Normalize is idempotent.
func (m *Model) Normalize() {
	var remap swiss.Map[ID, ID]
	remap.Init(len(m.nodes))
	next := 0
	for i := range m.nodes {
		if m.nodes[i].ID.kind != KindIndex {
			continue
		}
		remap.Put(m.nodes[i].ID, Index(next))
		next++
	}
	for i := range m.nodes {
		if id, ok := remap.Get(m.nodes[i].ID); ok {
			m.nodes[i].ID = id
		}
	}
	for i := range m.edges {
		e := &m.edges[i]
		if id, ok := remap.Get(e.Source); ok {
			e.Source = id
		}
		if id, ok := remap.Get(e.Target); ok {
			e.Target = id
		}
	}
	slices.SortStableFunc(m.edges, CompareEdges)
	m.version++
}

// CompareEdges orders edges by source, then target, then class.
func CompareEdges(a, b Edge) int {
	if c := a.Source.Compare(b.Source); c != 0 {
		return c
	}
	if c := a.Target.Compare(b.Target); c != 0 {
		return c
	}
	return strings.Compare(string(a.Class), string(b.Class))
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	return &Model{
		nodes:   slices.Clone(m.nodes),
		edges:   slices.Clone(m.edges),
		version: m.version,
	}
}

// Equal returns true if both models contain the same nodes and edges in the
// same order. Versions are ignored.
func (m *Model) Equal(o *Model) bool {
	return slices.Equal(m.nodes, o.nodes) && slices.Equal(m.edges, o.edges)
}

// Fingerprint returns a hash of the textual form of the model.
func (m *Model) Fingerprint() uint64 {
	return xxhash.Sum64String(m.String())
}

// String returns a multi-line description of the model, one node or edge per
// line. Full opacity is omitted.
func (m *Model) String() string {
	var buf strings.Builder
	buf.WriteString("nodes:\n")
	for _, n := range m.nodes {
		fmt.Fprintf(&buf, "  %s", n.ID)
		if n.Value != "" {
			fmt.Fprintf(&buf, " %q", n.Value)
		}
		fmt.Fprintf(&buf, " (%g,%g)", n.X, n.Y)
		if n.Class != ClassNone {
			fmt.Fprintf(&buf, " %s", n.Class)
		}
		if n.Opacity != 1 {
			fmt.Fprintf(&buf, " opacity=%g", n.Opacity)
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("edges:\n")
	for _, e := range m.edges {
		fmt.Fprintf(&buf, "  %s -> %s", e.Source, e.Target)
		if e.Class != ClassNone {
			fmt.Fprintf(&buf, " %s", e.Class)
		}
		if e.Opacity != 1 {
			fmt.Fprintf(&buf, " opacity=%g", e.Opacity)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
