package token

import (
	"reflect"
	"testing"

	"github.com/dhamidi/parc/parse"
)

// listGrammar parses a comma-separated list of integers, "none" (null)
// and "answer" (42).
func listGrammar() parse.Parser[[]any] {
	tok := New(Config{})
	element := parse.Or(
		parse.Map(tok.Integer(), func(n int64) any { return n }),
		parse.Map(tok.Symbol("none"), func(string) any { return nil }),
		parse.Map(tok.Symbol("answer"), func(string) any { return int64(42) }),
	)
	return parse.Full(parse.Right(tok.Space(), CommaSep1(tok, element)))
}

func TestListGrammar(t *testing.T) {
	got, err := parse.Run(listGrammar(), "0,1, none, 3,answer")
	if err != nil {
		t.Fatal(err)
	}
	want := []any{int64(0), int64(1), nil, int64(3), int64(42)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestListGrammarError(t *testing.T) {
	_, err := parse.Run(listGrammar(), "0,1, boom, 3,answer")
	if err == nil {
		t.Fatal("want error")
	}
	want := "line 1, character 6: expected digit, 'none' or 'answer', got 'b'."
	if err.Error() != want {
		t.Errorf("got  %q\nwant %q", err.Error(), want)
	}
}

// expression parses two-tier integer arithmetic: * and ~/ (integer
// division) bind tighter than + and -, all left-associative, with
// parenthesized sub-expressions.
func expression() parse.Parser[int64] {
	tok := New(Config{})
	binop := func(symbol string, f func(int64, int64) int64) parse.Parser[func(int64, int64) int64] {
		return parse.Map(tok.Symbol(symbol), func(string) func(int64, int64) int64 { return f })
	}

	var expr parse.Parser[int64]
	factor := parse.Or(
		Parens(tok, parse.Lazy(func() parse.Parser[int64] { return expr })),
		tok.Integer(),
	)
	term := parse.Chainl1(factor, parse.Or(
		binop("*", func(a, b int64) int64 { return a * b }),
		binop("~/", func(a, b int64) int64 { return a / b }),
	))
	expr = parse.Chainl1(term, parse.Or(
		binop("+", func(a, b int64) int64 { return a + b }),
		binop("-", func(a, b int64) int64 { return a - b }),
	))

	return parse.Full(parse.Right(tok.Space(), expr))
}

func TestArithmeticGrammar(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1 * 2 ~/ 2 + 3 * (4 + 5 - 1)", 25},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 ~/ 3", 3},
		{"10 - 4 - 3", 3},
		{"7", 7},
	}

	p := expression()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parse.Run(p, tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArithmeticGrammarErrors(t *testing.T) {
	p := expression()
	for _, input := range []string{"", "1 +", "(1 + 2", "1 2"} {
		t.Run(input, func(t *testing.T) {
			if _, err := parse.Run(p, input); err == nil {
				t.Error("want error")
			}
		})
	}
}
