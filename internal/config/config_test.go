package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDBConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PORT", "")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, 5432, cfg.Port)
	assert.Contains(t, cfg.DSN(), "port=5432")
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}

func TestLoadDBConfig_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", ":memory:")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.SQLitePath)
	assert.Equal(t, 10, cfg.MaxOpenConns)
}

func TestLoadDBConfig_Invalid(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := LoadDBConfig()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_SSLMODE", "sometimes")
	_, err = LoadDBConfig()
	assert.Error(t, err)
}

func TestLoadAppConfig(t *testing.T) {
	t.Setenv("RENTLOK_LOG_LEVEL", "debug")
	t.Setenv("RENTLOK_HEALTH_INTERVAL", "2s")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, 2*time.Second, cfg.HealthInterval)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	t.Setenv("RENTLOK_LOG_LEVEL", "loud")
	_, err = LoadAppConfig()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("RENTLOK_ADMIN_ADDR=127.0.0.1:9999\nDB_NAME=from_file\n"), 0o600))

	t.Setenv("RENTLOK_ADMIN_ADDR", "")
	os.Unsetenv("RENTLOK_ADMIN_ADDR")
	t.Setenv("DB_NAME", "from_env")

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "127.0.0.1:9999", os.Getenv("RENTLOK_ADMIN_ADDR"))
	assert.Equal(t, "from_env", os.Getenv("DB_NAME"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "nothing.env")))
}
