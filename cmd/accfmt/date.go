package main

import (
	"fmt"
	"time"

	"github.com/rpgo/accfmt/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newDateCommand() *cobra.Command {
	var (
		layout  string
		english bool
		tz      string
	)
	cmd := &cobra.Command{
		Use:   "date VALUE",
		Short: "Format a millisecond timestamp or date string with a yyyy/MM/dd style layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			if tz != "" {
				l, err := time.LoadLocation(tz)
				if err != nil {
					return fmt.Errorf("invalid timezone %q: %w", tz, err)
				}
				loc = l
			}
			if args[0] == "" {
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			t, ok := dateutil.ParseTime(args[0], loc)
			if !ok {
				return fmt.Errorf("unrecognized time %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), dateutil.Format(t, layout, english))
			return nil
		},
	}
	cmd.Flags().StringVarP(&layout, "layout", "l", dateutil.DefaultLayout, "output layout")
	cmd.Flags().BoolVarP(&english, "english", "e", false, "use English month, weekday and AM/PM names")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone (default local)")
	return cmd
}
