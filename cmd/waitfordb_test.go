package main

import (
	"context"
	"errors"
	"os"
	"recipe/internal/config"
	"recipe/pkg/dbready"
	mockdbready "recipe/pkg/dbready/mock"
	"recipe/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestWaitForDBCommand(t *testing.T) {
	cfg := &config.Config{}
	cfg.WaitForDB.Databases = []string{dbready.DefaultDatabase}

	run := func(t *testing.T, checkErr error) (bool, error) {
		t.Helper()

		ctrl := gomock.NewController(t)
		checker := mockdbready.NewMockChecker(ctrl)
		checker.EXPECT().Check(gomock.Any(), []string{dbready.DefaultDatabase}).Return(checkErr)

		closed := false
		cmd := newWaitForDBCommand(cfg, func(context.Context, *config.Config) (dbready.Checker, func()) {
			return checker, func() { closed = true }
		})
		cmd.SetArgs([]string{})

		err := cmd.ExecuteContext(context.Background())

		return closed, err
	}

	t.Run("ready", func(t *testing.T) {
		closed, err := run(t, nil)
		require.NoError(t, err)
		require.True(t, closed)
	})

	t.Run("fatal error is returned after closing connections", func(t *testing.T) {
		fatal := errors.New("password authentication failed")

		closed, err := run(t, fatal)
		require.ErrorIs(t, err, fatal)
		require.True(t, closed)
	})
}
