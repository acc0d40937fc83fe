package main

import (
	"fmt"

	"github.com/rpgo/accfmt/internal/calculation"
	"github.com/rpgo/accfmt/internal/domain"
	"github.com/spf13/cobra"
)

func newArithmeticCommand(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := calculation.NewEngine().Evaluate(domain.Job{Op: domain.Operation(op), Args: args}, calculation.Options{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
