// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii draws structure frames as text. A Board is a grid of
// characters that grows as it is written to; Cursors write labels, node
// outlines and arrows at board positions.
package ascii

import (
	"fmt"
	"strings"
)

// Board is a growable grid of characters. The zero value is an empty board.
type Board struct {
	rows [][]rune
	// width is the initial capacity of new rows.
	width int
}

// Make returns an empty Board sized for the given number of columns and rows.
// The board grows past these as needed.
func Make(width, height int) Board {
	return Board{rows: make([][]rune, 0, height), width: width}
}

// At returns a cursor at the given row and column. The rows up to r are
// created if they do not exist.
func (b *Board) At(r, c int) Cursor {
	for len(b.rows) <= r {
		b.rows = append(b.rows, make([]rune, 0, b.width))
	}
	return Cursor{b: b, r: r, c: c}
}

// NewLine appends an empty row and returns a cursor at its start.
func (b *Board) NewLine() Cursor {
	return b.At(len(b.rows), 0)
}

func (b *Board) String() string {
	return b.Render("")
}

// Render returns the board with every row prefixed by indent. Trailing
// spaces are trimmed.
func (b *Board) Render(indent string) string {
	var buf strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteString(strings.TrimRight(string(row), " "))
	}
	return buf.String()
}

// Reset clears the board.
func (b *Board) Reset() {
	b.rows = b.rows[:0]
}

// set overwrites the row starting at column c, padding the row with spaces
// up to c.
func (b *Board) set(r, c int, s []rune) {
	b.At(r, c)
	row := b.rows[r]
	for len(row) < c+len(s) {
		row = append(row, ' ')
	}
	copy(row[c:], s)
	b.rows[r] = row
}

// Cursor is a position on a Board. Writing through a cursor returns a new
// cursor positioned after the written text.
type Cursor struct {
	b    *Board
	r, c int
	// margin is the column newlines return to.
	margin int
}

// Row returns the row of the cursor.
func (c Cursor) Row() int { return c.r }

// Column returns the column of the cursor.
func (c Cursor) Column() int { return c.c }

// Right returns a cursor n columns to the right.
func (c Cursor) Right(n int) Cursor {
	c.c += n
	return c
}

// Margin returns a copy of the cursor whose newlines return to the current
// column, for writing a block of text aligned on one column.
func (c Cursor) Margin() Cursor {
	c.margin = c.c
	return c
}

// NextLine returns a cursor at the start of the next row, at the margin.
func (c Cursor) NextLine() Cursor {
	c.r++
	c.c = c.margin
	return c
}

// WriteString writes s at the cursor. Newlines in s continue on the next row
// at the margin.
func (c Cursor) WriteString(s string) Cursor {
	for {
		line, rest, more := strings.Cut(s, "\n")
		runes := []rune(line)
		if len(runes) > 0 {
			c.b.set(c.r, c.c, runes)
		}
		c.c += len(runes)
		if !more {
			return c
		}
		c = c.NextLine()
		s = rest
	}
}

// Printf writes the formatted string at the cursor.
func (c Cursor) Printf(format string, args ...any) Cursor {
	return c.WriteString(fmt.Sprintf(format, args...))
}

// Repeat writes ch n times at the cursor.
func (c Cursor) Repeat(n int, ch rune) Cursor {
	if n <= 0 {
		return c
	}
	return c.WriteString(strings.Repeat(string(ch), n))
}
