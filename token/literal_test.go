package token

import (
	"testing"

	"github.com/dhamidi/parc/parse"
)

func TestInteger(t *testing.T) {
	tok := New(Config{})
	p := tok.Integer()

	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"007", 7, true},
		{"42  ", 42, true},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := p(parse.NewCursor(tt.input))
			if tt.ok {
				if r.Failed() || r.Value != tt.want {
					t.Errorf("got %+v, want %d", r, tt.want)
				}
				return
			}
			if !r.Failed() {
				t.Errorf("got %+v, want failure", r)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	tok := New(Config{})
	p := tok.Float()

	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"3.14", 3.14, true},
		{"1e3", 1000, true},
		{"1E3", 1000, true},
		{"2.5e-1", 0.25, true},
		{"2.5e+1", 25, true},
		{"42", 0, false}, // plain integer is not a float lexeme
		{"x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := p(parse.NewCursor(tt.input))
			if tt.ok {
				if r.Failed() || r.Value != tt.want {
					t.Errorf("got %+v, want %g", r, tt.want)
				}
				return
			}
			if !r.Failed() {
				t.Errorf("got %+v, want failure", r)
			}
		})
	}
}

func TestStringLiteral(t *testing.T) {
	tok := New(Config{})
	p := tok.StringLiteral()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{`"hello"`, "hello", true},
		{`""`, "", true},
		{`"a\nb"`, "a\nb", true},
		{`"tab\there"`, "tab\there", true},
		{`"quote \" inside"`, `quote " inside`, true},
		{`"back\\slash"`, `back\slash`, true},
		{`"A"`, "A", true},
		{`"unterminated`, "", false},
		{`"no`, "", false},
		{`x`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := p(parse.NewCursor(tt.input))
			if tt.ok {
				if r.Failed() || r.Value != tt.want {
					t.Errorf("got %+v, want %q", r, tt.want)
				}
				return
			}
			if !r.Failed() {
				t.Errorf("got %+v, want failure", r)
			}
		})
	}
}
