package worker_test

import (
	"context"
	"errors"
	"os"
	"recipe/internal/recipe"
	"recipe/internal/worker"
	"recipe/pkg/logger"
	mockmedia "recipe/pkg/media/mock"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func makeJob(id int64, path string) *river.Job[recipe.ImageCleanupArgs] {
	return &river.Job[recipe.ImageCleanupArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   recipe.ImageCleanupArgs{Path: path},
	}
}

func TestImageCleanupWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockmedia.NewMockStore(ctrl)
	w := worker.NewImageCleanupWorker(store)

	store.EXPECT().Delete(gomock.Any(), "uploads/recipe/a.png").Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "uploads/recipe/a.png")))
}

func TestImageCleanupWorker_Work_ErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockmedia.NewMockStore(ctrl)
	w := worker.NewImageCleanupWorker(store)

	boom := errors.New("boom")
	store.EXPECT().Delete(gomock.Any(), "uploads/recipe/b.png").Return(boom)

	err := w.Work(context.Background(), makeJob(2, "uploads/recipe/b.png"))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestImageCleanupWorker_Work_InvalidPathCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockmedia.NewMockStore(ctrl)
	w := worker.NewImageCleanupWorker(store)

	err := w.Work(context.Background(), makeJob(3, "../../etc/passwd"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestImageCleanupWorker_Timeout(t *testing.T) {
	w := worker.NewImageCleanupWorker(nil)
	require.Positive(t, w.Timeout(makeJob(4, "a.png")))
}
