package main

import (
	"fmt"

	"hotelmate/config"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the rate grid tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			if env == "" {
				env = config.GetEnv("ENV")
			}
			db, err := config.OpenDB(env)
			if err != nil {
				return err
			}
			if err := config.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return nil
		},
	}

	cmd.Flags().StringVar(&env, "env", "", "Environment (dev, qc, prod, local); defaults to $ENV")
	return cmd
}
