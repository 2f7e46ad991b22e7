package token

import (
	"strconv"

	"github.com/dhamidi/parc/parse"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func digit() parse.Parser[rune] {
	return parse.Satisfy("digit", isDigit)
}

// Integer matches an unsigned decimal integer lexeme. Signs belong to
// the grammar, not the token.
func (t *Tokenizer) Integer() parse.Parser[int64] {
	digits := parse.Text(parse.Many1(digit()))
	core := parse.Parser[int64](func(c parse.Cursor) parse.Result[int64] {
		r := digits(c)
		if r.Failed() {
			return parse.Result[int64]{Consumed: r.Consumed, Fail: r.Fail}
		}
		n, err := strconv.ParseInt(r.Value, 10, 64)
		if err != nil {
			return parse.Result[int64]{
				Consumed: true,
				Fail:     &parse.Failure{At: c.Pos(), Expected: []string{"integer"}, Consumed: true},
			}
		}
		return parse.Result[int64]{Value: n, Rest: r.Rest, Consumed: r.Consumed}
	})
	return Lexeme(t, core)
}

// Float matches an unsigned floating-point lexeme: digits followed by a
// fraction, an exponent, or both. Plain integers do not match, so Float
// can be tried before Integer in an alternation.
func (t *Tokenizer) Float() parse.Parser[float64] {
	digits1 := skip(parse.Many1(digit()))
	frac := skip(parse.Right(parse.Rune('.'), parse.Many1(digit())))
	exp := skip(parse.Seq3(
		parse.Satisfy("exponent", func(r rune) bool { return r == 'e' || r == 'E' }),
		parse.Opt(parse.Satisfy("sign", func(r rune) bool { return r == '+' || r == '-' }), '+'),
		parse.Many1(digit()),
		func(rune, rune, []rune) struct{} { return struct{}{} },
	))
	suffix := parse.Or(
		parse.Left(frac, parse.Opt(exp, struct{}{})),
		exp,
	)
	text := parse.Text(parse.Right(digits1, suffix))
	core := parse.Parser[float64](func(c parse.Cursor) parse.Result[float64] {
		r := text(c)
		if r.Failed() {
			return parse.Result[float64]{Consumed: r.Consumed, Fail: r.Fail}
		}
		f, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			return parse.Result[float64]{
				Consumed: true,
				Fail:     &parse.Failure{At: c.Pos(), Expected: []string{"number"}, Consumed: true},
			}
		}
		return parse.Result[float64]{Value: f, Rest: r.Rest, Consumed: r.Consumed}
	})
	return Lexeme(t, core)
}

// StringLiteral matches a double-quoted string lexeme and yields its
// unescaped contents. Recognized escapes: \n \t \r \b \f \\ \" \' \0
// and \uXXXX.
func (t *Tokenizer) StringLiteral() parse.Parser[string] {
	plain := parse.Satisfy("string character", func(r rune) bool {
		return r != '"' && r != '\\' && r != '\n'
	})
	char := parse.Or(escapeSeq(), plain)
	body := parse.Map(parse.ManyTill(char, parse.Rune('"')), func(rs []rune) string {
		return string(rs)
	})
	return Lexeme(t, parse.Right(parse.Rune('"'), body))
}

func escapeSeq() parse.Parser[rune] {
	esc := func(ch, out rune) parse.Parser[rune] {
		return parse.Map(parse.Rune(ch), func(rune) rune { return out })
	}
	hex := parse.Satisfy("hex digit", func(r rune) bool {
		return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
	hex4 := parse.Text(parse.Seq4(hex, hex, hex, hex, func(rune, rune, rune, rune) struct{} {
		return struct{}{}
	}))
	uni := parse.Map(parse.Right(parse.Rune('u'), hex4), func(s string) rune {
		n, _ := strconv.ParseUint(s, 16, 32)
		return rune(n)
	})
	return parse.Right(parse.Rune('\\'), parse.Or(
		esc('n', '\n'),
		esc('t', '\t'),
		esc('r', '\r'),
		esc('b', '\b'),
		esc('f', '\f'),
		esc('\\', '\\'),
		esc('"', '"'),
		esc('\'', '\''),
		esc('0', 0),
		uni,
	))
}
