package main

import (
	"context"
	"fmt"
	"os/signal"
	"recipe/internal/config"
	"recipe/pkg/dbready"
	"recipe/pkg/storage/postgres"
	"syscall"

	"github.com/spf13/cobra"
)

// checkerFunc opens the database connections to wait for and returns them
// with a cleanup function.
type checkerFunc func(ctx context.Context, cfg *config.Config) (dbready.Checker, func())

func postgresChecker(ctx context.Context, cfg *config.Config) (dbready.Checker, func()) {
	pgsql, closeStrg := getPostgres(ctx, cfg)

	return connections(pgsql), closeStrg
}

func waitForDBOptions(cfg *config.Config) dbready.Options {
	return dbready.Options{
		Databases:   cfg.WaitForDB.Databases,
		Interval:    cfg.WaitForDB.Interval,
		Timeout:     cfg.WaitForDB.Timeout,
		MaxAttempts: cfg.WaitForDB.MaxAttempts,
	}
}

func connections(pgsql *postgres.PgSQL) dbready.Connections {
	return dbready.Connections{dbready.DefaultDatabase: pgsql}
}

// waitForDB blocks until the databases accept queries.
func waitForDB(ctx context.Context, cfg *config.Config, checker dbready.Checker) error {
	if err := dbready.WaitFor(ctx, checker, waitForDBOptions(cfg)); err != nil {
		return fmt.Errorf("database is not available: %w", err)
	}

	return nil
}

func waitForDBCommand(cfg *config.Config) *cobra.Command {
	return newWaitForDBCommand(cfg, postgresChecker)
}

// newWaitForDBCommand constructs the 'wait-for-db' subcommand that blocks
// until the configured databases are ready. Connections are closed before
// the command returns, also on failure.
func newWaitForDBCommand(cfg *config.Config, open checkerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait-for-db",
		Short: "Waits until the database accepts connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			checker, closeChecker := open(ctx, cfg)
			defer closeChecker()

			return waitForDB(ctx, cfg, checker)
		},
	}

	return cmd
}
