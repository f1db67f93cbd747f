package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tinoosan/employees/internal/config"
	pgstore "github.com/tinoosan/employees/internal/storage/postgres"
)

func newMigrateCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the employees schema migrations to postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			if c.DatabaseURL == "" {
				return errors.New("migrate: EMPLOYEES_DATABASE_URL or --database-url is required")
			}
			logger, closeLog := buildLogger(c)
			defer closeLog()
			return pgstore.Migrate(cmd.Context(), c.DatabaseURL, logger)
		},
	}
}
