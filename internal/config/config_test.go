package config_test

import (
	"os"
	"path/filepath"
	"recipe/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
environment: production
database:
  host: db
  name: recipes
waitForDB:
  databases: [default, replica]
  interval: 250ms
  maxAttempts: 10
media:
  backend: s3
  s3:
    bucket: images
`), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "production", cfg.Environment)
		require.Equal(t, "db", cfg.Database.Host)
		require.Equal(t, "recipes", cfg.Database.DatabaseName)
		require.Equal(t, 5432, cfg.Database.Port)
		require.Equal(t, []string{"default", "replica"}, cfg.WaitForDB.Databases)
		require.Equal(t, 250*time.Millisecond, cfg.WaitForDB.Interval)
		require.Equal(t, 10, cfg.WaitForDB.MaxAttempts)
		require.True(t, cfg.WaitForDB.OnServe)
		require.Equal(t, "s3", cfg.Media.Backend)
		require.Equal(t, "images", cfg.Media.S3.Bucket)
	})

	t.Run("missing file uses environment", func(t *testing.T) {
		t.Setenv("DATABASE_HOST", "from-env")
		t.Setenv("WAIT_FOR_DB_TIMEOUT", "30s")

		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)
		require.Equal(t, "from-env", cfg.Database.Host)
		require.Equal(t, 30*time.Second, cfg.WaitForDB.Timeout)
		require.Equal(t, time.Second, cfg.WaitForDB.Interval)
		require.Equal(t, []string{"default"}, cfg.WaitForDB.Databases)
		require.Equal(t, "file", cfg.Media.Backend)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
database:
  host: prod-db
  port: notanumber
`), 0o600))

		cfg, err := config.Load(path)
		require.Error(t, err)
		require.Nil(t, cfg)
	})

	t.Run("unreadable path is an error", func(t *testing.T) {
		_, err := config.Load(t.TempDir())
		require.Error(t, err)
	})
}
