package parse

// A Parser consumes input from a cursor and produces a value of type T
// or a positioned failure. Parsers are stateless and reentrant: the same
// parser may be applied to many cursors, including concurrently.
type Parser[T any] func(Cursor) Result[T]

// quote renders a literal for an expected-token description, matching
// the single-quote convention of rendered errors.
func quote(s string) string {
	return "'" + s + "'"
}

// Rune matches exactly one occurrence of r.
func Rune(r rune) Parser[rune] {
	expected := quote(string(r))
	return func(c Cursor) Result[rune] {
		got, ok := c.Peek()
		if !ok || got != r {
			return failAt[rune](c.Pos(), false, expected)
		}
		return succeed(got, c.Advance(), true)
	}
}

// Satisfy matches one rune for which pred holds. The name is used in
// error messages ("digit", "letter", ...).
func Satisfy(name string, pred func(rune) bool) Parser[rune] {
	return func(c Cursor) Result[rune] {
		got, ok := c.Peek()
		if !ok || !pred(got) {
			return failAt[rune](c.Pos(), false, name)
		}
		return succeed(got, c.Advance(), true)
	}
}

// Any matches any single rune.
func Any() Parser[rune] {
	return Satisfy("any character", func(rune) bool { return true })
}

// Literal matches s in full. On a partial match it fails at the first
// mismatching character with Consumed set, so diagnostics point into the
// literal; outer alternation still backtracks to the original cursor.
func Literal(s string) Parser[string] {
	expected := quote(s)
	return func(c Cursor) Result[string] {
		cur := c
		for _, want := range s {
			got, ok := cur.Peek()
			if !ok || got != want {
				return failAt[string](cur.Pos(), cur.Pos().Offset > c.Pos().Offset, expected)
			}
			cur = cur.Advance()
		}
		return succeed(s, cur, cur.Pos().Offset > c.Pos().Offset)
	}
}

// End succeeds only at end of input, consuming nothing. Grammars should
// end with it (or use Full) so trailing garbage is rejected.
func End() Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		if !c.AtEnd() {
			r := failAt[struct{}](c.Pos(), false, "end of input")
			r.Fail.Kind = PrematureEnd
			return r
		}
		return succeed(struct{}{}, c, false)
	}
}

// AtLineEnd succeeds without consuming anything when the cursor sits on
// a line break or at end of input.
func AtLineEnd() Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		if got, ok := c.Peek(); ok && got != '\n' {
			return failAt[struct{}](c.Pos(), false, "end of line")
		}
		return succeed(struct{}{}, c, false)
	}
}

// Loc succeeds with the current position, consuming nothing. Useful for
// attaching source locations to grammar productions.
func Loc() Parser[Position] {
	return func(c Cursor) Result[Position] {
		return succeed(c.Pos(), c, false)
	}
}

// Pure succeeds with v, consuming nothing.
func Pure[T any](v T) Parser[T] {
	return func(c Cursor) Result[T] {
		return succeed(v, c, false)
	}
}

// Fail always fails with the given expected-token description.
func Fail[T any](expected string) Parser[T] {
	return func(c Cursor) Result[T] {
		return failAt[T](c.Pos(), false, expected)
	}
}
