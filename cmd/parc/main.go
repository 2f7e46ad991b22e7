package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parc",
		Short: "Build and run combinator-based parsers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity (1 = info, 2 = debug)")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newEbnfCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
