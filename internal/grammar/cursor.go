// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The cursor is the only access the layers have to the input: non-consuming
// peek at an arbitrary offset, and consuming advance. Line and column
// tracking lives here so that no caller can move the position without the
// marks staying consistent.

package grammar

import "unicode/utf8"

type cursor struct {
	input []rune
	pos   int
	m     Mark
}

func newCursor(input []rune) *cursor {
	return &cursor{input: input, m: Mark{Line: 1}}
}

// peek returns the rune i positions ahead of the cursor without consuming
// anything. Past the end of input it returns 0.
func (c *cursor) peek(i int) rune {
	if c.pos+i >= len(c.input) {
		return 0
	}
	return c.input[c.pos+i]
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

// mark returns the position of the next unconsumed character.
func (c *cursor) mark() Mark {
	return c.m
}

// advance consumes one character. A CRLF pair is consumed as a single line
// break so that line numbers agree across break styles. The index advances
// by the rune's UTF-8 width, matching the Mark contract.
func (c *cursor) advance() {
	if c.pos >= len(c.input) {
		return
	}
	r := c.input[c.pos]
	c.m.Index += utf8.RuneLen(r)
	c.pos++
	if r == '\r' && c.pos < len(c.input) && c.input[c.pos] == '\n' {
		c.m.Index += utf8.RuneLen('\n')
		c.pos++
		c.m.Line++
		c.m.Column = 0
		return
	}
	if isBreak(r) {
		c.m.Line++
		c.m.Column = 0
		return
	}
	c.m.Column++
}

// skip consumes n characters. Skipping onto a CRLF pair consumes both bytes
// of the break.
func (c *cursor) skip(n int) {
	for i := 0; i < n; i++ {
		c.advance()
	}
}

// onDocumentMarker reports whether the cursor sits at column zero on a
// "---" or "..." marker followed by white space or end of input.
func (c *cursor) onDocumentMarker() bool {
	if c.m.Column != 0 {
		return false
	}
	r := c.peek(0)
	if r != '-' && r != '.' {
		return false
	}
	return c.peek(1) == r && c.peek(2) == r && isBlankz(c.peek(3))
}
