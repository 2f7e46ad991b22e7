// Package token turns the character-level combinators of parse into a
// language-style tokenizer: whitespace and comment skipping, identifier
// and reserved-word recognition, literals, and symbol tokens. Every
// token-level parser is a lexeme: it consumes its own trailing
// whitespace and comments, so sequencing two tokens never needs manual
// whitespace handling.
package token

import (
	"unicode"

	"github.com/dhamidi/parc/parse"
)

// Config describes the insignificant-input and reserved-word rules of
// one language. An empty marker disables the corresponding comment
// form.
type Config struct {
	ReservedNames []string `toml:"reserved_names"`
	CommentLine   string   `toml:"comment_line"`
	CommentStart  string   `toml:"comment_start"`
	CommentEnd    string   `toml:"comment_end"`
}

// Tokenizer builds token-level parsers for one language. It is
// immutable after construction; differently-configured tokenizers can
// be used concurrently.
type Tokenizer struct {
	cfg      Config
	reserved map[string]bool
	space    parse.Parser[struct{}]
}

// New returns a tokenizer owning its own copy of cfg.
func New(cfg Config) *Tokenizer {
	t := &Tokenizer{
		cfg:      cfg,
		reserved: make(map[string]bool, len(cfg.ReservedNames)),
	}
	for _, name := range cfg.ReservedNames {
		t.reserved[name] = true
	}
	t.space = buildSpace(cfg)
	return t
}

// Space skips any run of whitespace and configured comments. It always
// succeeds, possibly consuming nothing.
func (t *Tokenizer) Space() parse.Parser[struct{}] {
	return t.space
}

func buildSpace(cfg Config) parse.Parser[struct{}] {
	units := []parse.Parser[struct{}]{
		skip(parse.Many1(parse.Satisfy("whitespace", unicode.IsSpace))),
	}
	if cfg.CommentLine != "" {
		body := parse.Many(parse.Satisfy("comment", func(r rune) bool { return r != '\n' }))
		units = append(units, skip(parse.Right(marker(cfg.CommentLine), body)))
	}
	if cfg.CommentStart != "" && cfg.CommentEnd != "" {
		// an unterminated block comment runs to end of input
		terminator := parse.Or(skip(marker(cfg.CommentEnd)), parse.End())
		body := parse.ManyTill(parse.Any(), terminator)
		units = append(units, skip(parse.Right(marker(cfg.CommentStart), body)))
	}
	return skip(parse.Many(parse.Or(units...)))
}

// marker matches a comment delimiter without committing: a partial
// match reads as a clean non-match, so repetition stops instead of
// failing when ordinary input shares a prefix with a delimiter.
func marker(s string) parse.Parser[string] {
	lit := parse.Literal(s)
	return func(c parse.Cursor) parse.Result[string] {
		r := lit(c)
		if r.Failed() && r.Consumed {
			f := *r.Fail
			f.Consumed = false
			r = parse.Result[string]{Fail: &f}
		}
		return r
	}
}

func skip[T any](p parse.Parser[T]) parse.Parser[struct{}] {
	return parse.Map(p, func(T) struct{} { return struct{}{} })
}

// Lexeme runs p and then skips trailing whitespace and comments.
func Lexeme[T any](t *Tokenizer, p parse.Parser[T]) parse.Parser[T] {
	return parse.Left(p, t.space)
}

// Symbol matches the fixed operator or punctuation string s as a
// lexeme.
func (t *Tokenizer) Symbol(s string) parse.Parser[string] {
	return Lexeme(t, parse.Literal(s))
}

// Identifier matches a letter or underscore followed by letters, digits
// and underscores. A match equal to a configured reserved name fails
// with a reserved-word diagnostic at the start of the word.
func (t *Tokenizer) Identifier() parse.Parser[string] {
	word := identText()
	core := parse.Parser[string](func(c parse.Cursor) parse.Result[string] {
		r := word(c)
		if r.Failed() || !t.reserved[r.Value] {
			return r
		}
		return parse.Result[string]{
			Consumed: true,
			Fail: &parse.Failure{
				At:       c.Pos(),
				Expected: []string{"identifier"},
				Consumed: true,
				Kind:     parse.ReservedWord,
				Word:     r.Value,
			},
		}
	})
	return Lexeme(t, core)
}

// Reserved matches exactly the reserved word, with a word-boundary
// check: it fails on any longer identifier the word merely prefixes.
func (t *Tokenizer) Reserved(word string) parse.Parser[string] {
	text := identText()
	expected := "'" + word + "'"
	core := parse.Parser[string](func(c parse.Cursor) parse.Result[string] {
		r := text(c)
		if !r.Failed() && r.Value == word {
			return r
		}
		return parse.Result[string]{
			Consumed: r.Consumed,
			Fail: &parse.Failure{
				At:       c.Pos(),
				Expected: []string{expected},
				Consumed: r.Consumed,
			},
		}
	})
	return Lexeme(t, core)
}

func identText() parse.Parser[string] {
	head := parse.Satisfy("identifier", isIdentStart)
	tail := parse.Many(parse.Satisfy("identifier", isIdentPart))
	return parse.Text(parse.Right(head, tail))
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// Parens wraps p in "(" and ")" symbols, yielding p's value.
func Parens[T any](t *Tokenizer, p parse.Parser[T]) parse.Parser[T] {
	return parse.Between(t.Symbol("("), p, t.Symbol(")"))
}

// Braces wraps p in "{" and "}" symbols.
func Braces[T any](t *Tokenizer, p parse.Parser[T]) parse.Parser[T] {
	return parse.Between(t.Symbol("{"), p, t.Symbol("}"))
}

// Angles wraps p in "<" and ">" symbols.
func Angles[T any](t *Tokenizer, p parse.Parser[T]) parse.Parser[T] {
	return parse.Between(t.Symbol("<"), p, t.Symbol(">"))
}

// CommaSep parses zero or more occurrences of p separated by commas.
func CommaSep[T any](t *Tokenizer, p parse.Parser[T]) parse.Parser[[]T] {
	return parse.SepBy(p, t.Symbol(","))
}

// CommaSep1 parses one or more occurrences of p separated by commas.
func CommaSep1[T any](t *Tokenizer, p parse.Parser[T]) parse.Parser[[]T] {
	return parse.SepBy1(p, t.Symbol(","))
}
