// Package ebnfgram compiles EBNF grammar productions into parsers.
//
// Each named production becomes a parse.Parser[string] yielding the
// text it matched, and references between productions go through
// parse.Lazy, so mutually recursive productions work. Alternatives are
// tried in order, not longest-match. Left-recursive productions are
// not supported.
package ebnfgram

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parc/parse"
)

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return grammar, nil
}

// Compile verifies the grammar and returns a parser for the start
// production. The parser yields the input text matched by the
// production.
func Compile(grammar ebnf.Grammar, start string) (parse.Parser[string], error) {
	if err := ebnf.Verify(grammar, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	c := &compiler{
		rules:  make(map[string]parse.Parser[string], len(grammar)),
		bodies: make(map[string]parse.Parser[string], len(grammar)),
	}
	// Name references resolve through the rule table before the
	// referenced body exists; the body table is fully populated before
	// Compile returns, so parsing never writes shared state.
	for name := range grammar {
		name := name
		c.rules[name] = parse.Lazy(func() parse.Parser[string] {
			return c.bodies[name]
		})
	}
	for name, prod := range grammar {
		c.bodies[name] = c.compile(prod.Expr)
	}
	if c.err != nil {
		return nil, fmt.Errorf("compile grammar: %w", c.err)
	}
	return c.rules[start], nil
}

type compiler struct {
	rules  map[string]parse.Parser[string]
	bodies map[string]parse.Parser[string]
	err    error
}

// fail records a grammar defect found during compilation. The first
// one wins.
func (c *compiler) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *compiler) compile(expr ebnf.Expression) parse.Parser[string] {
	switch e := expr.(type) {
	case nil:
		return parse.Pure("")

	case ebnf.Sequence:
		p := parse.Pure("")
		for _, item := range e {
			p = parse.Seq2(p, c.compile(item), func(a, b string) string { return a + b })
		}
		return p

	case ebnf.Alternative:
		alts := make([]parse.Parser[string], len(e))
		for i, alt := range e {
			alts[i] = c.compile(alt)
		}
		return parse.Or(alts...)

	case *ebnf.Repetition:
		return parse.Map(parse.Many(c.compile(e.Body)), func(parts []string) string {
			return strings.Join(parts, "")
		})

	case *ebnf.Option:
		return parse.Opt(c.compile(e.Body), "")

	case *ebnf.Group:
		return c.compile(e.Body)

	case *ebnf.Token:
		return parse.Literal(e.String)

	case *ebnf.Range:
		return c.compileRange(e)

	case *ebnf.Name:
		return c.rules[e.String]

	default:
		c.fail(fmt.Errorf("unsupported expression %T", expr))
		return parse.Pure("")
	}
}

func (c *compiler) compileRange(e *ebnf.Range) parse.Parser[string] {
	begin := []rune(e.Begin.String)
	end := []rune(e.End.String)
	if len(begin) != 1 || len(end) != 1 {
		c.fail(fmt.Errorf("range bounds %q … %q must be single characters", e.Begin.String, e.End.String))
		return parse.Pure("")
	}
	name := fmt.Sprintf("character in '%c'…'%c'", begin[0], end[0])
	match := parse.Satisfy(name, func(r rune) bool {
		return r >= begin[0] && r <= end[0]
	})
	return parse.Map(match, func(r rune) string { return string(r) })
}
