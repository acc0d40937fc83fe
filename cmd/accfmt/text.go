package main

import (
	"fmt"

	"github.com/rpgo/accfmt/pkg/cnmoney"
	"github.com/rpgo/accfmt/pkg/textutil"
	"github.com/spf13/cobra"
)

func newUpperCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upper AMOUNT",
		Short: "Spell an amount in capitalized Chinese numerals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cnmoney.ToUpper(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newThousandsCommand() *cobra.Command {
	var places int32
	cmd := &cobra.Command{
		Use:   "thousands NUMBER",
		Short: "Group the integer digits of a number with commas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := textutil.Thousands(args[0])
			if places >= 0 {
				s, err := textutil.ThousandsFixed(args[0], places)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", args[0], err)
				}
				out = s
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Int32Var(&places, "fixed", -1, "round to this many decimals first")
	return cmd
}

func newEscapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "escape TEXT",
		Short: "Escape text for HTML output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textutil.EscapeHTML(args[0]))
			return nil
		},
	}
}
