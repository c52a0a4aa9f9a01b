package main

import (
	"context"
	"database/sql"
	root "recipe"
	"recipe/internal/config"
	"recipe/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrate applies the goose migrations and then the river queue migrations.
func migrate(ctx context.Context, db *sql.DB) {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
	}
	for _, version := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", version.Version))
	}
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if cfg.WaitForDB.OnServe {
				if err := waitForDB(ctx, cfg, connections(strg)); err != nil {
					return err
				}
			}

			migrate(ctx, strg.DB.(*sql.DB))

			return nil
		},
	}

	return cmd
}
