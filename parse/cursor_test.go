package parse

import "testing"

func TestCursorTracking(t *testing.T) {
	tests := []struct {
		input   string
		advance int
		line    int
		column  int
		offset  int
	}{
		{"", 0, 1, 1, 0},
		{"abc", 0, 1, 1, 0},
		{"abc", 2, 1, 3, 2},
		{"a\nb", 1, 1, 2, 1},
		{"a\nb", 2, 2, 1, 2},
		{"a\nb", 3, 2, 2, 3},
		{"\n\n", 2, 3, 1, 2},
		{"héllo", 2, 1, 3, 3}, // é is two bytes
	}

	for _, tt := range tests {
		c := NewCursor(tt.input)
		for i := 0; i < tt.advance; i++ {
			c = c.Advance()
		}
		pos := c.Pos()
		if pos.Line != tt.line || pos.Column != tt.column || pos.Offset != tt.offset {
			t.Errorf("%q after %d: got %d:%d offset %d, want %d:%d offset %d",
				tt.input, tt.advance, pos.Line, pos.Column, pos.Offset, tt.line, tt.column, tt.offset)
		}
	}
}

func TestCursorPeek(t *testing.T) {
	c := NewCursor("ab")
	if r, ok := c.Peek(); !ok || r != 'a' {
		t.Errorf("Peek: got %q, %v", r, ok)
	}
	c = c.Advance().Advance()
	if !c.AtEnd() {
		t.Error("expected AtEnd after consuming all input")
	}
	if _, ok := c.Peek(); ok {
		t.Error("Peek at end should report no rune")
	}
}

func TestCursorAdvancePastEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("advancing past end should panic")
		}
	}()
	NewCursor("").Advance()
}
