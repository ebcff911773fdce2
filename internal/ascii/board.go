// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii provides a rune-grid board for rendering ASCII diagrams of
// trees: positioned text for node labels and diagonal runs for edges.
package ascii

import (
	"bytes"
	"math"
	"slices"
	"strings"
)

// Board is a grid of runes that grows on demand. The zero value is not
// usable; use Make.
type Board struct {
	buf   []rune
	width int
}

// Make returns a new Board with the given initial width and height.
func Make(width, height int) Board {
	buf := make([]rune, 0, width*height)
	return Board{buf: buf, width: width}
}

// Reset clears the board and sets its width.
func (b *Board) Reset(width int) {
	b.buf = b.buf[:0]
	b.width = width
}

// Set places a single rune at the given coordinates.
func (b *Board) Set(r, c int, ch rune) {
	if c+1 > b.width {
		b.growWidth(c + 1)
	}
	b.row(r)[c] = ch
}

// WriteString writes s starting at the given coordinates. The string must
// not contain newlines.
func (b *Board) WriteString(r, c int, s string) {
	if n := len([]rune(s)); c+n > b.width {
		b.growWidth(c + n)
	}
	row := b.row(r)
	i := 0
	for _, ch := range s {
		row[c+i] = ch
		i++
	}
}

// WriteCentered writes s centered on the given column.
func (b *Board) WriteCentered(r, center int, s string) {
	c := center - len([]rune(s))/2
	if c < 0 {
		c = 0
	}
	b.WriteString(r, c, s)
}

// Edge draws a connector from (r0, c0) down to (r1, c1), exclusive of both
// endpoints: one character per intermediate row, placed on the straight line
// between the endpoints. Vertical segments use '|', left-leaning segments
// '/', and right-leaning segments '\'. Requires r1 > r0+1.
func (b *Board) Edge(r0, c0, r1, c1 int) {
	ch := '|'
	if c1 < c0 {
		ch = '/'
	} else if c1 > c0 {
		ch = '\\'
	}
	for r := r0 + 1; r < r1; r++ {
		// Interpolate the column, rounding to the nearest cell.
		c := c0 + int(math.Round(float64((c1-c0)*(r-r0))/float64(r1-r0)))
		b.Set(r, c, ch)
	}
}

// String returns the Board as a string, with trailing blanks trimmed from
// every line.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the Board as a string, with every line prefixed by indent.
func (b *Board) Render(indent string) string {
	var buf bytes.Buffer
	for r := 0; r < b.lines(); r++ {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteString(strings.TrimRight(string(b.row(r)), " "))
	}
	return buf.String()
}

func (b *Board) lines() int {
	return len(b.buf) / b.width
}

func (b *Board) row(r int) []rune {
	if sz := (r + 1) * b.width; sz > len(b.buf) {
		b.growBuf(sz - len(b.buf))
	}
	return b.buf[r*b.width : (r+1)*b.width]
}

func (b *Board) growBuf(n int) {
	b.buf = slices.Grow(b.buf, n)
	for range n {
		b.buf = append(b.buf, ' ')
	}
}

func (b *Board) growWidth(w int) {
	buf := make([]rune, w*b.lines())
	for i := range buf {
		buf[i] = ' '
	}
	for i := range b.lines() {
		copy(buf[i*w:i*w+b.width], b.buf[i*b.width:(i+1)*b.width])
	}
	b.buf = buf
	b.width = w
}
