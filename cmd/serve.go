package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"recipe/internal/account"
	"recipe/internal/api"
	"recipe/internal/api/handler/v1handler"
	"recipe/internal/config"
	"recipe/internal/recipe"
	"recipe/internal/worker"
	"recipe/pkg/logger"
	"recipe/pkg/media"
	"recipe/pkg/storage/postgres"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getMediaStore returns the configured media store and, for the file backend,
// the handler serving its files.
func getMediaStore(ctx context.Context, cfg *config.Config) (media.Store, http.Handler) {
	switch cfg.Media.Backend {
	case "s3":
		store, err := media.NewS3Store(ctx, media.S3Options{
			Bucket:   cfg.Media.S3.Bucket,
			Region:   cfg.Media.S3.Region,
			Endpoint: cfg.Media.S3.Endpoint,
			BaseURL:  cfg.Media.S3.BaseURL,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create s3 media store", zap.Error(err))
		}

		return store, nil
	case "file", "":
		store := media.NewFileStore(cfg.Media.Root, cfg.Media.BaseURL)

		return store, store.Handler()
	default:
		logger.Fatal(ctx, "unknown media backend", zap.String("backend", cfg.Media.Backend))

		return nil, nil
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, store media.Store) func(ctx context.Context) {
	client, err := worker.Start(ctx, pgsql.Pool, store, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if cfg.WaitForDB.OnServe {
				if err := waitForDB(ctx, cfg, connections(pgsql)); err != nil {
					return err
				}
			}

			accountOptions, err := account.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create account options", zap.Error(err))
			}

			store, mediaHandler := getMediaStore(ctx, cfg)
			stopWorkers := setupWorkers(ctx, cfg, pgsql, store)
			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Account: account.New(pgsql, accountOptions),
					Recipes: recipe.New(pgsql, store, recipe.NewOptions(cfg)),
				},
				Databases: connections(pgsql),
				Media:     mediaHandler,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)

			return nil
		},
	}

	return cmd
}
