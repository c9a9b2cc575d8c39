package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/config"
	"github.com/Leganyst/rentlok/internal/db"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/repository"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateAndDeactivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentlok.db")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", path)
	t.Setenv("RENTLOK_LOG_LEVEL", "error")
	t.Setenv("RENTLOK_SQL_LOG_LEVEL", "silent")

	_, err := run(t, "migrate")
	require.NoError(t, err)

	gormDB, err := db.NewGormDB(&config.DBConfig{Driver: config.DriverSQLite, SQLitePath: path}, "silent")
	require.NoError(t, err)
	repos := repository.NewGormRepositories(gormDB)
	ctx := context.Background()
	p := &model.Property{Name: "Oak", Address: "1 Elm", NoOfRooms: 2, OwnerID: model.DefaultOwnerID}
	require.NoError(t, repos.Properties.Create(ctx, p))
	for _, no := range []string{"1", "2"} {
		require.NoError(t, repos.Rooms.Create(ctx, &model.Room{RoomNo: no, PropertyID: p.ID, OperationalStatus: model.RoomVacant}))
	}
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	out, err := run(t, "deactivate", "property", p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "property 1 deactivated, 2 dependent records deactivated\n", out)

	_, err = run(t, "deactivate", "tenant", "5")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = run(t, "deactivate", "landlord", "1")
	assert.ErrorContains(t, err, "unknown entity")

	_, err = run(t, "deactivate", "room", "x")
	assert.ErrorContains(t, err, "bad id")
}

func TestInvalidConfigStopsCommand(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := run(t, "migrate")
	assert.ErrorContains(t, err, "invalid DB config")
}
