// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func parseTestID(s string) ID {
	if n, err := strconv.Atoi(s); err == nil {
		return Index(n)
	}
	return Marker(s)
}

func TestModelDatadriven(t *testing.T) {
	var m Model
	datadriven.RunTest(t, "testdata/model", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "build":
			m.Reset()
			for _, line := range crstrings.Lines(td.Input) {
				var kind, a, b, class string
				n, _ := fmt.Sscan(line, &kind, &a, &b, &class)
				switch kind {
				case "node":
					node := Node{ID: parseTestID(a), Opacity: 1}
					if n > 2 {
						node.Value = b
					}
					m.AddNode(node)
				case "edge":
					m.AddEdge(Edge{Source: parseTestID(a), Target: parseTestID(b), Class: Class(class), Opacity: 1})
				default:
					td.Fatalf(t, "unknown line %q", line)
				}
			}
			return m.String()

		case "normalize":
			m.Normalize()
			return m.String()

		case "move":
			var from, to int
			td.ScanArgs(t, "from", &from)
			td.ScanArgs(t, "to", &to)
			m.MoveNode(from, to)
			return m.String()

		case "remove-node":
			var id string
			td.ScanArgs(t, "id", &id)
			removed := m.RemoveNode(parseTestID(id))
			edges := m.RemoveEdgesOf(parseTestID(id))
			return fmt.Sprintf("removed=%t edges=%d\n%s", removed, edges, m.String())

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	var m Model
	for _, id := range []int{0, 9, 4, 6} {
		m.AddNode(Node{ID: Index(id), Value: strconv.Itoa(id), Opacity: 1})
	}
	m.AddNode(Node{ID: Marker("temp"), Opacity: 1})
	m.AddEdge(Edge{Source: Index(6), Target: Index(4), Class: ClassNext, Opacity: 1})
	m.AddEdge(Edge{Source: Index(0), Target: Index(9), Class: ClassPointer, Opacity: 1})
	m.AddEdge(Edge{Source: Marker("temp"), Target: Index(6), Class: ClassMarkerEdge, Opacity: 1})
	m.AddEdge(Edge{Source: Index(9), Target: Index(4), Class: ClassNext, Opacity: 1})

	m.Normalize()
	once := m.Clone()
	m.Normalize()
	if diff := pretty.Diff(once.Nodes(), m.Nodes()); diff != nil {
		t.Fatalf("normalizing twice changed the nodes:\n%s", strings.Join(diff, "\n"))
	}
	if diff := pretty.Diff(once.Edges(), m.Edges()); diff != nil {
		t.Fatalf("normalizing twice changed the edges:\n%s", strings.Join(diff, "\n"))
	}
	require.True(t, once.Equal(&m))
	require.Equal(t, once.Fingerprint(), m.Fingerprint())

	for i, n := range m.Nodes()[:4] {
		require.Equal(t, Index(i), n.ID)
	}
	require.Equal(t, Marker("temp"), m.NodeAt(4).ID)
	// Node "9" sat at position 1 and node "4" at position 2.
	require.NotNil(t, m.Edge(Index(1), Index(2)))
	require.NotNil(t, m.Edge(Index(3), Index(2)))
	require.NotNil(t, m.Edge(Marker("temp"), Index(3)))
}

func TestLookupsTolerateAbsence(t *testing.T) {
	var m Model
	require.Equal(t, -1, m.NodeIndex(Index(3)))
	require.Equal(t, -1, m.EdgeIndex(Index(0), Index(1)))
	require.Nil(t, m.Node(Key(5)))
	require.Nil(t, m.Edge(Key(5), Key(6)))
	require.False(t, m.RemoveNode(Marker("x")))
	require.False(t, m.RemoveEdge(Index(0), Index(1)))
	require.Zero(t, m.RemoveEdgesOf(Index(0)))
}

func TestIDString(t *testing.T) {
	testCases := []struct {
		id       ID
		expected string
	}{
		{Index(3), "3"},
		{Key(42), "42"},
		{Detached(7), "detached-7"},
		{Placeholder(Key(5), Left), "null-5-left"},
		{Placeholder(Detached(2), Right), "null-detached-2-right"},
		{RootPlaceholder(), "nullNode"},
		{Marker("temp"), "temp"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, tc.id.String())
	}
	parent, ok := Placeholder(Key(5), Right).Parent()
	require.True(t, ok)
	require.Equal(t, Key(5), parent)
	require.True(t, RootPlaceholder().IsPlaceholder())
	require.False(t, Key(1).IsPlaceholder())
	require.NotEqual(t, Key(1), Index(1))
}

func TestBox(t *testing.T) {
	b := EmptyBox()
	require.True(t, b.IsEmpty())
	b = b.Extend(10, 20)
	require.Equal(t, Box{X: 10, Y: 20}, b)
	b = b.Extend(-10, 40)
	require.Equal(t, Box{X: -10, Y: 20, W: 20, H: 20}, b)
	x, y := b.Center()
	require.Equal(t, 0.0, x)
	require.Equal(t, 30.0, y)
}

func TestModelVersion(t *testing.T) {
	var m Model
	v := m.Version()
	m.AddNode(Node{ID: Index(0), Opacity: 1})
	m.AddNode(Node{ID: Index(1), Opacity: 1})
	m.AddEdge(Edge{Source: Index(0), Target: Index(1), Class: ClassNext, Opacity: 1})
	m.AddEdge(Edge{Source: Index(1), Target: Index(0), Class: ClassPrev, Opacity: 1})
	require.Greater(t, m.Version(), v)

	v = m.Version()
	require.Zero(t, m.RemoveEdgesFunc(func(e Edge) bool { return e.Class == ClassWrap }))
	require.Equal(t, v, m.Version())
	require.Equal(t, 1, m.RemoveEdgesFunc(func(e Edge) bool { return e.Class == ClassPrev }))
	require.Greater(t, m.Version(), v)

	v = m.Version()
	m.Node(Index(1)).Value = "x"
	m.Touch()
	require.Equal(t, v+1, m.Version())
}
