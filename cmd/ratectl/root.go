package main

import (
	"os"

	"github.com/spf13/cobra"
)

var outputCompact bool

var rootCmd = &cobra.Command{
	Use:          "ratectl",
	Short:        "Rate grid tooling for hotelmate",
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(gridCmd())
	rootCmd.AddCommand(quoteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
}
