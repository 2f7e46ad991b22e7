package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/parse"
	"github.com/dhamidi/parc/token"
)

func newCalcCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an integer arithmetic expression",
		Long:  "Evaluates +, -, * and ~/ (integer division) with the usual precedence and parentheses.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("evaluate: %v", r)
				}
			}()

			input := strings.Join(args, " ")
			value, err := parse.Run(arithmetic(trace), input)
			if err != nil {
				return err
			}

			fmt.Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "log grammar rules at debug level as they run")

	return cmd
}

// arithmetic builds the two-tier expression grammar: * and ~/ bind
// tighter than + and -, all four left-associative, with parenthesized
// sub-expressions.
func arithmetic(trace bool) parse.Parser[int64] {
	rule := func(name string, p parse.Parser[int64]) parse.Parser[int64] {
		if trace {
			return parse.Traced(name, p)
		}
		return p
	}

	tok := token.New(token.Config{})
	binop := func(symbol string, f func(int64, int64) int64) parse.Parser[func(int64, int64) int64] {
		return parse.Map(tok.Symbol(symbol), func(string) func(int64, int64) int64 { return f })
	}

	var expr parse.Parser[int64]
	factor := rule("factor", parse.Or(
		token.Parens(tok, parse.Lazy(func() parse.Parser[int64] { return expr })),
		tok.Integer(),
	))
	term := rule("term", parse.Chainl1(factor, parse.Or(
		binop("*", func(a, b int64) int64 { return a * b }),
		binop("~/", func(a, b int64) int64 { return a / b }),
	)))
	expr = rule("expr", parse.Chainl1(term, parse.Or(
		binop("+", func(a, b int64) int64 { return a + b }),
		binop("-", func(a, b int64) int64 { return a - b }),
	)))

	return parse.Full(parse.Right(tok.Space(), expr))
}
