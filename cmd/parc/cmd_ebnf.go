package main

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parc/ebnfgram"
	"github.com/dhamidi/parc/parse"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfMatchCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnfgram.LoadGrammar(args[0])
			if err != nil {
				printErrors(err)
				return err
			}

			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <file> <start> <input>",
		Short: "Run an EBNF production as a parser against input",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnfgram.LoadGrammar(args[0])
			if err != nil {
				return err
			}

			p, err := ebnfgram.Compile(grammar, args[1])
			if err != nil {
				return err
			}

			matched, err := parse.Run(parse.Full(p), args[2])
			if err != nil {
				return err
			}

			fmt.Println(matched)
			return nil
		},
	}

	return cmd
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
