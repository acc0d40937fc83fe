package main

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

type rootOptions struct {
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "accfmt",
		Short:        "Decimal-safe arithmetic, date and currency formatting helpers",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newArithmeticCommand("add", "Add two decimals"),
		newArithmeticCommand("sub", "Subtract the second decimal from the first"),
		newArithmeticCommand("mul", "Multiply two decimals"),
		newArithmeticCommand("div", "Divide the first decimal by the second"),
		newDateCommand(),
		newUpperCommand(),
		newThousandsCommand(),
		newEscapeCommand(),
		newBatchCommand(opts),
		newExampleConfigCommand(),
	)
	return root
}
