package postgres_test

import (
	"context"
	"errors"
	"net"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"
	"recipe/pkg/storage/postgres"
	"syscall"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Ping_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "connection refused",
			err:       &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			transient: true,
		},
		{
			name:      "starting up",
			err:       &pgconn.PgError{Code: pgerrcode.CannotConnectNow},
			transient: true,
		},
		{
			name:      "too many connections",
			err:       &pgconn.PgError{Code: pgerrcode.TooManyConnections},
			transient: true,
		},
		{
			name:      "connection failure",
			err:       &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			transient: true,
		},
		{
			name:      "deadline exceeded",
			err:       context.DeadlineExceeded,
			transient: true,
		},
		{
			name: "bad password",
			err:  &pgconn.PgError{Code: pgerrcode.InvalidPassword},
		},
		{
			name: "unknown database",
			err:  &pgconn.PgError{Code: pgerrcode.InvalidCatalogName},
		},
		{
			name: "unexpected",
			err:  errors.New("unexpected"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			mock.ExpectPing().WillReturnError(tt.err)

			err = postgres.FromDB(db).Ping(context.Background())
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, tt.transient, serrors.IsTransient(err))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPgSQL_Ping_Success(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectPing()
	require.NoError(t, postgres.FromDB(db).Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_Ping_InsideTx(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := postgres.FromDB(db).Begin(context.Background())
	require.NoError(t, err)
	require.ErrorIs(t, tx.(*postgres.PgSQL).Ping(context.Background()), storage.ErrAlreadyInTx)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_Ping_ServerDown(t *testing.T) {
	t.Parallel()

	// nothing listens on port 1
	pg, err := postgres.New(context.Background(), testOptions("127.0.0.1", 1))
	require.NoError(t, err)
	defer func() { _ = pg.Close() }()

	err = pg.Ping(context.Background())
	require.Error(t, err)
	require.True(t, serrors.IsTransient(err))
}

func TestPgSQL_Ping_Container(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.Ping(context.Background()))

	wrong := testOptions(pg.Pool.Config().ConnConfig.Host, int(pg.Pool.Config().ConnConfig.Port))
	wrong.Database = "does_not_exist"
	missing, err := postgres.New(context.Background(), wrong)
	require.NoError(t, err)
	defer func() { _ = missing.Close() }()

	err = missing.Ping(context.Background())
	require.Error(t, err)
	require.False(t, serrors.IsTransient(err), "unknown database is a configuration error")
}
