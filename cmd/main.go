package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tinoosan/employees/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the employees command tree. Running it without a
// subcommand starts the HTTP server.
func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "employees",
		Short: "employees - CRUD service for employee records",
		Long: `employees serves a JSON API over a single employee table.

Settings come from EMPLOYEES_* environment variables (a .env file is loaded
when present), e.g. EMPLOYEES_STORE=postgres EMPLOYEES_DATABASE_URL=... ./employees.
Flags take precedence over environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, loaded); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().String("store", "", "storage backend: memory, postgres or orm")
	root.PersistentFlags().String("database-url", "", "postgres connection string")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	serve := newServeCmd(func() *config.Config { return cfg })
	root.AddCommand(serve, newMigrateCmd(func() *config.Config { return cfg }), newSeedCmd(func() *config.Config { return cfg }))
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	overrides := map[string]*string{
		"store":        &cfg.Store,
		"database-url": &cfg.DatabaseURL,
		"log-level":    &cfg.LogLevel,
		"addr":         &cfg.Addr,
	}
	for name, dst := range overrides {
		if f := flags.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if f := flags.Lookup("migrate"); f != nil && f.Changed {
		v, err := flags.GetBool("migrate")
		if err != nil {
			return err
		}
		cfg.MigrateOnStart = v
	}
	return cfg.Validate()
}
