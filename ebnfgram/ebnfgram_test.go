package ebnfgram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parc/parse"
)

const exprGrammar = `
Expr = Term { "+" Term } .
Term = Digit | "(" Expr ")" .
Digit = "0" … "9" .
`

func mustParseGrammar(t *testing.T, src string) ebnf.Grammar {
	t.Helper()
	grammar, err := ebnf.Parse("test.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return grammar
}

func TestCompileMatchesRecursiveGrammar(t *testing.T) {
	grammar := mustParseGrammar(t, exprGrammar)
	p, err := Compile(grammar, "Expr")
	if err != nil {
		t.Fatal(err)
	}
	full := parse.Full(p)

	tests := []struct {
		input string
		ok    bool
	}{
		{"1", true},
		{"1+2", true},
		{"(1+2)+3", true},
		{"((1))", true},
		{"1+", false},
		{"(1", false},
		{"x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			matched, err := parse.Run(full, tt.input)
			if tt.ok {
				if err != nil {
					t.Fatal(err)
				}
				if matched != tt.input {
					t.Errorf("matched %q, want %q", matched, tt.input)
				}
				return
			}
			if err == nil {
				t.Errorf("matched %q, want error", matched)
			}
		})
	}
}

func TestCompileOptionAndRepetition(t *testing.T) {
	grammar := mustParseGrammar(t, `
Number = [ "-" ] Digit { Digit } .
Digit = "0" … "9" .
`)
	p, err := Compile(grammar, "Number")
	if err != nil {
		t.Fatal(err)
	}
	full := parse.Full(p)

	for _, input := range []string{"7", "-7", "123", "-120"} {
		matched, err := parse.Run(full, input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if matched != input {
			t.Errorf("matched %q, want %q", matched, input)
		}
	}
	if _, err := parse.Run(full, "-"); err == nil {
		t.Error("bare sign should not match")
	}
}

func TestCompileTokenContainingQuote(t *testing.T) {
	grammar := mustParseGrammar(t, `Q = "\"" "x" .`)
	p, err := Compile(grammar, "Q")
	if err != nil {
		t.Fatal(err)
	}
	matched, err := parse.Run(parse.Full(p), `"x`)
	if err != nil {
		t.Fatal(err)
	}
	if matched != `"x` {
		t.Errorf("matched %q, want %q", matched, `"x`)
	}
}

func TestCompileRejectsWideRangeBounds(t *testing.T) {
	grammar := mustParseGrammar(t, `Pair = "ab" … "cd" .`)
	if _, err := Compile(grammar, "Pair"); err == nil {
		t.Error("want compile error for multi-character range bounds")
	}
}

func TestCompileRejectsUnknownStart(t *testing.T) {
	grammar := mustParseGrammar(t, `Digit = "0" … "9" .`)
	if _, err := Compile(grammar, "Missing"); err == nil {
		t.Error("want verification error for unknown start production")
	}
}

func TestLoadGrammar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.ebnf")
	if err := os.WriteFile(path, []byte(exprGrammar), 0o644); err != nil {
		t.Fatal(err)
	}

	grammar, err := LoadGrammar(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := grammar["Expr"]; !ok {
		t.Error("grammar missing Expr production")
	}

	if _, err := LoadGrammar(filepath.Join(t.TempDir(), "absent.ebnf")); err == nil {
		t.Error("want error for missing file")
	}
}
