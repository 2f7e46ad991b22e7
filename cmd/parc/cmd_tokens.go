package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/parse"
	"github.com/dhamidi/parc/token"
)

func newTokensCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream of input under a language config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg token.Config
			if configPath != "" {
				loaded, err := token.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			var input []byte
			var err error
			if len(args) == 1 {
				input, err = os.ReadFile(args[0])
			} else {
				input, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tokens, err := parse.Run(tokenStream(cfg), string(input))
			if err != nil {
				return err
			}

			for _, t := range tokens {
				fmt.Printf("%d:%d %s %q\n", t.Pos.Line, t.Pos.Column, t.Kind, t.Literal)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML tokenizer config file")

	return cmd
}

type scannedToken struct {
	Kind    string
	Pos     parse.Position
	Literal string
}

// tokenStream recognizes a generic token alphabet under cfg: keywords,
// identifiers, numbers, strings and single-character symbols.
func tokenStream(cfg token.Config) parse.Parser[[]scannedToken] {
	tok := token.New(cfg)

	mk := func(kind string, p parse.Parser[string]) parse.Parser[scannedToken] {
		return parse.Seq2(parse.Loc(), p, func(pos parse.Position, lit string) scannedToken {
			return scannedToken{Kind: kind, Pos: pos, Literal: lit}
		})
	}

	alternatives := make([]parse.Parser[scannedToken], 0, len(cfg.ReservedNames)+4)
	for _, word := range cfg.ReservedNames {
		alternatives = append(alternatives, mk("keyword", tok.Reserved(word)))
	}
	alternatives = append(alternatives,
		mk("ident", tok.Identifier()),
		mk("number", parse.Or(
			parse.Map(tok.Float(), func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }),
			parse.Map(tok.Integer(), func(n int64) string { return strconv.FormatInt(n, 10) }),
		)),
		mk("string", tok.StringLiteral()),
		mk("symbol", token.Lexeme(tok, parse.Map(
			parse.Satisfy("symbol", func(r rune) bool {
				return unicode.IsPunct(r) || unicode.IsSymbol(r)
			}),
			func(r rune) string { return string(r) },
		))),
	)

	return parse.Full(parse.Right(tok.Space(), parse.Many(parse.Or(alternatives...))))
}
