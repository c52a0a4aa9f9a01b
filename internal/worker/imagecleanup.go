package worker

import (
	"context"
	"fmt"
	"recipe/internal/recipe"
	"recipe/pkg/logger"
	"recipe/pkg/media"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const imageCleanupTimeout = 30 * time.Second

// ImageCleanupWorker removes recipe images that are no longer referenced by
// any recipe. The job is enqueued in the same transaction that drops the
// reference, so it only runs once the reference is gone for good.
type ImageCleanupWorker struct {
	river.WorkerDefaults[recipe.ImageCleanupArgs]

	store media.Store
}

func NewImageCleanupWorker(store media.Store) *ImageCleanupWorker {
	return &ImageCleanupWorker{store: store}
}

func (w *ImageCleanupWorker) Timeout(*river.Job[recipe.ImageCleanupArgs]) time.Duration {
	return imageCleanupTimeout
}

// Work deletes the image. A missing file counts as success. Paths outside the
// media root can never succeed and cancel the job.
func (w *ImageCleanupWorker) Work(ctx context.Context, job *river.Job[recipe.ImageCleanupArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("path", job.Args.Path))

	if !media.IsValidPath(job.Args.Path) {
		logger.Error(ctx, "refusing to remove invalid media path")

		return river.JobCancel(fmt.Errorf("invalid media path %q", job.Args.Path)) //nolint: wrapcheck
	}

	if err := w.store.Delete(ctx, job.Args.Path); err != nil {
		logger.Error(ctx, "error removing recipe image", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not remove recipe image: %w", err)
	}

	logger.Info(ctx, "recipe image removed")

	return nil
}
