package parse

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location in the input text. Line and Column are 1-based,
// Offset is a byte offset into the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, character %d", p.Line, p.Column)
}

// Cursor is an immutable view of the input text at a position. Advancing
// produces a new Cursor; the input itself is never modified, so a Cursor
// may be saved and re-used to backtrack.
type Cursor struct {
	input string
	pos   Position
}

// NewCursor returns a cursor at the start of input: line 1, column 1,
// offset 0.
func NewCursor(input string) Cursor {
	return Cursor{
		input: input,
		pos:   Position{Offset: 0, Line: 1, Column: 1},
	}
}

// Pos returns the current position.
func (c Cursor) Pos() Position {
	return c.pos
}

// AtEnd reports whether the cursor has consumed all input.
func (c Cursor) AtEnd() bool {
	return c.pos.Offset >= len(c.input)
}

// Peek returns the rune at the cursor without consuming it. The second
// result is false at end of input.
func (c Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	return r, true
}

// Advance returns a cursor one rune further into the input. Callers must
// check AtEnd first: advancing past the end is a contract violation and
// panics.
func (c Cursor) Advance() Cursor {
	if c.AtEnd() {
		panic("parse: cursor advanced past end of input")
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	next := c
	next.pos.Offset += size
	if r == '\n' {
		next.pos.Line++
		next.pos.Column = 1
	} else {
		next.pos.Column++
	}
	return next
}

// slice returns the input text between the cursor and a later cursor on
// the same input.
func (c Cursor) slice(end Cursor) string {
	return c.input[c.pos.Offset:end.pos.Offset]
}
