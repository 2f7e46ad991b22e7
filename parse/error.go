package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is the positioned error surfaced by a failed top-level Run.
// Exactly one Error is produced per attempt: the furthest failure seen
// across all backtracked branches, with the union of expected tokens at
// that position.
type Error struct {
	Pos      Position
	Expected []string
	Got      string // next input fragment, or "end of input"
	Kind     FailureKind
	Word     string
}

func (e *Error) Error() string {
	if e.Kind == ReservedWord {
		return fmt.Sprintf("%s: reserved word '%s' cannot be used as an identifier.", e.Pos, e.Word)
	}
	return fmt.Sprintf("%s: expected %s, got '%s'.", e.Pos, joinExpected(e.Expected), e.Got)
}

// joinExpected renders an expected set as "a", "a or b" or "a, b or c".
func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}

func newError(f *Failure, input string) *Error {
	got := "end of input"
	if f.At.Offset < len(input) {
		r, _ := utf8.DecodeRuneInString(input[f.At.Offset:])
		got = string(r)
	}
	return &Error{
		Pos:      f.At,
		Expected: f.Expected,
		Got:      got,
		Kind:     f.Kind,
		Word:     f.Word,
	}
}

// Run applies p to input from line 1, column 1, offset 0 and returns
// the parsed value or a *Error. Run does not require p to consume all
// input; grammars should end with End (or be wrapped in Full) so that
// trailing garbage is rejected.
func Run[T any](p Parser[T], input string) (T, error) {
	r := p(NewCursor(input))
	if r.Failed() {
		var zero T
		return zero, newError(r.Fail, input)
	}
	return r.Value, nil
}

// Full wraps p with the explicit end-of-input check.
func Full[T any](p Parser[T]) Parser[T] {
	return Left(p, End())
}
