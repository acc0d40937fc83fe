package main

import (
	"fmt"

	"github.com/rpgo/accfmt/internal/calculation"
	"github.com/rpgo/accfmt/internal/config"
	"github.com/rpgo/accfmt/internal/output"
	"github.com/spf13/cobra"
)

func newBatchCommand(root *rootOptions) *cobra.Command {
	var (
		format  string
		saveDir string
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every job of a YAML job file and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			if root.verbose {
				engine.SetLogger(newStderrLogger(cmd.ErrOrStderr()))
			}
			results, err := engine.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if saveDir != "" {
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
				}
				name, err := output.WriteFormatted(f, results, saveDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", name)
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), results, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv, json, yaml")
	cmd.Flags().StringVar(&saveDir, "save", "", "write a timestamped report file into this directory instead of stdout")
	return cmd
}

func newExampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config FILE",
		Short: "Write an example job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, args[0]); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example job file written to %s\n", args[0])
			return nil
		},
	}
}
