// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/structviz/internal/strparse"
	"github.com/stretchr/testify/require"
)

func TestBoardDatadriven(t *testing.T) {
	var board Board
	shapes := map[string]Shape{
		"round":  ShapeRound,
		"square": ShapeSquare,
		"angle":  ShapeAngle,
		"hollow": ShapeHollow,
	}
	datadriven.RunTest(t, "testdata/ascii_board", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "make":
			var w, h int
			td.ScanArgs(t, "w", &w)
			td.ScanArgs(t, "h", &h)
			board = Make(w, h)
			return board.String()
		case "write":
			for _, line := range crstrings.Lines(td.Input) {
				p := strparse.MakeParser(" ", line)
				r := p.Int()
				c := p.Int()
				board.At(r, c).WriteString(p.Remaining())
			}
			return board.String()
		case "node":
			for _, line := range crstrings.Lines(td.Input) {
				p := strparse.MakeParser(" ", line)
				r := p.Int()
				c := p.Int()
				shape, ok := shapes[p.Next()]
				if !ok {
					td.Fatalf(t, "unknown shape in %q", line)
				}
				cur := board.At(r, c).Node(p.Next(), shape)
				if !p.Done() {
					cur.Right(1).Arrow(p.Int())
				}
			}
			return board.String()
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestBoard(t *testing.T) {
	board := Make(10, 2)
	board.At(0, 0).Printf("Hello\nworld!")
	require.Equal(t, `Hello
world!`, board.String())

	board.Reset()
	cur := board.At(1, 5).Margin().Printf("a\nb\nc\n")
	require.Equal(t, 4, cur.Row())
	require.Equal(t, 5, cur.Column())
	require.Equal(t, `
     a
     b
     c`, board.String())
}

func TestNode(t *testing.T) {
	board := Make(4, 1)
	cur := board.At(0, 0).Node("12", ShapeRound)
	require.Equal(t, NodeWidth("12"), cur.Column())
	cur = cur.Arrow(3).Node("7", ShapeSquare)
	cur.Arrow(1)
	require.Equal(t, "(12)-->[7]", board.String())
	require.Equal(t, "  (12)-->[7]", board.Render("  "))
}
