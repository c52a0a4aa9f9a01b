package dbready_test

import (
	"context"
	"errors"
	"net"
	"os"
	"recipe/pkg/dbready"
	mockdbready "recipe/pkg/dbready/mock"
	"recipe/pkg/logger"
	"recipe/pkg/serrors"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

var defaultDatabases = []string{dbready.DefaultDatabase}

// connRefused mimics a driver-level dial failure tagged by the storage layer.
func connRefused() error {
	return serrors.Wrap(serrors.ErrUnavailable,
		&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
		"could not connect to postgres")
}

// startingUp mimics a server that accepts TCP connections but rejects queries.
func startingUp() error {
	return serrors.Wrap(serrors.ErrUnavailable,
		&pgconn.PgError{Code: pgerrcode.CannotConnectNow, Message: "the database system is starting up"},
		"postgres is not ready")
}

type sleepRecorder struct {
	calls     int
	durations []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.calls++
	s.durations = append(s.durations, d)

	return nil
}

func newGate(t *testing.T, opts dbready.Options) (*mockdbready.MockChecker, *sleepRecorder, *dbready.Gate) {
	t.Helper()

	ctrl := gomock.NewController(t)
	checker := mockdbready.NewMockChecker(ctrl)
	rec := &sleepRecorder{}
	opts.Sleep = rec.sleep

	return checker, rec, dbready.New(checker, opts)
}

func TestGate_ReadyOnFirstAttempt(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{})

	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(nil).Times(1)

	require.Equal(t, dbready.StateWaiting, gate.State())
	require.NoError(t, gate.Wait(context.Background()))
	require.Equal(t, dbready.StateReady, gate.State())
	require.Equal(t, 1, gate.Attempts())
	require.Zero(t, sleeps.calls)
}

func TestGate_RetriesConnectionErrors(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{})

	gomock.InOrder(
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(connRefused()).Times(3),
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(nil),
	)

	require.NoError(t, gate.Wait(context.Background()))
	require.Equal(t, 4, gate.Attempts())
	require.Equal(t, 3, sleeps.calls)
}

func TestGate_RetriesNotReadyErrors(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{})

	gomock.InOrder(
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(startingUp()).Times(4),
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(nil),
	)

	require.NoError(t, gate.Wait(context.Background()))
	require.Equal(t, 5, gate.Attempts())
	require.Equal(t, 4, sleeps.calls)
}

func TestGate_MixedTransientErrors(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{})

	gomock.InOrder(
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(connRefused()).Times(2),
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(startingUp()).Times(3),
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(nil),
	)

	require.NoError(t, gate.Wait(context.Background()))
	require.Equal(t, 6, gate.Attempts())
	require.Equal(t, 5, sleeps.calls)
	for _, d := range sleeps.durations {
		require.Equal(t, dbready.DefaultInterval, d)
	}
	require.Equal(t, dbready.StateReady, gate.State())
}

func TestGate_FatalErrorPropagates(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{})

	fatal := &pgconn.PgError{Code: pgerrcode.InvalidPassword, Message: "password authentication failed"}
	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(fatal).Times(1)

	err := gate.Wait(context.Background())
	require.Error(t, err)
	require.Same(t, fatal, err, "fatal errors must be returned unmodified")
	require.Zero(t, sleeps.calls)
	require.Equal(t, dbready.StateWaiting, gate.State())
}

func TestGate_FatalAfterTransient(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{})

	fatal := errors.New("unexpected")
	gomock.InOrder(
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(connRefused()).Times(2),
		checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(fatal),
	)

	err := gate.Wait(context.Background())
	require.ErrorIs(t, err, fatal)
	require.Equal(t, 3, gate.Attempts())
	require.Equal(t, 2, sleeps.calls)
}

func TestGate_CustomDatabasesAndInterval(t *testing.T) {
	databases := []string{"default", "replica"}
	checker, sleeps, gate := newGate(t, dbready.Options{
		Databases: databases,
		Interval:  250 * time.Millisecond,
	})

	gomock.InOrder(
		checker.EXPECT().Check(gomock.Any(), databases).Return(connRefused()),
		checker.EXPECT().Check(gomock.Any(), databases).Return(nil),
	)

	require.NoError(t, gate.Wait(context.Background()))
	require.Equal(t, []time.Duration{250 * time.Millisecond}, sleeps.durations)
}

func TestGate_MaxAttempts(t *testing.T) {
	checker, sleeps, gate := newGate(t, dbready.Options{MaxAttempts: 3})

	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(connRefused()).Times(3)

	err := gate.Wait(context.Background())
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, syscall.ECONNREFUSED, "last failure should be wrapped")
	require.Equal(t, 2, sleeps.calls)
	require.Equal(t, dbready.StateWaiting, gate.State())
}

func TestGate_ContextCancelledWhileSleeping(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mockdbready.NewMockChecker(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	gate := dbready.New(checker, dbready.Options{
		Interval: time.Hour,
		Sleep: func(ctx context.Context, d time.Duration) error {
			cancel()

			return dbready.Sleep(ctx, d)
		},
	})
	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(startingUp()).Times(1)

	err := gate.Wait(ctx)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, serrors.IsTransient(err), "cause is still the transient failure")
}

func TestGate_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mockdbready.NewMockChecker(ctrl)
	gate := dbready.New(checker, dbready.Options{
		Interval: 20 * time.Millisecond,
		Timeout:  100 * time.Millisecond,
	})
	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(connRefused()).MinTimes(1)

	start := time.Now()
	err := gate.Wait(context.Background())
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mockdbready.NewMockChecker(ctrl)

	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(nil)
	require.NoError(t, dbready.WaitFor(context.Background(), checker, dbready.Options{}))

	fatal := errors.New("boom")
	checker.EXPECT().Check(gomock.Any(), defaultDatabases).Return(fatal)
	require.ErrorIs(t, dbready.WaitFor(context.Background(), checker, dbready.Options{}), fatal)
}

func TestSleep(t *testing.T) {
	require.NoError(t, dbready.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, dbready.Sleep(ctx, time.Hour), context.Canceled)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "WAITING", dbready.StateWaiting.String())
	require.Equal(t, "READY", dbready.StateReady.String())
}
