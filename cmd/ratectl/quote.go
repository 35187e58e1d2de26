package main

import (
	"fmt"
	"strconv"

	"hotelmate/services/rategrid"

	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	var mode string
	var percent bool

	cmd := &cobra.Command{
		Use:   "quote <base> <value>",
		Short: "Compute the rate a grid edit would produce",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid base %q: %w", args[0], err)
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			result, err := rategrid.ApplyOp(base, mode, value, percent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'f', 2, 64))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "set", "Operation: set, increase, decrease")
	cmd.Flags().BoolVar(&percent, "percent", false, "Treat value as a percentage")
	return cmd
}
