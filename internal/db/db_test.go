package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/rentlok/internal/config"
	"github.com/Leganyst/rentlok/internal/model"
)

func TestNewGormDB_SQLiteMemory(t *testing.T) {
	gdb, err := NewGormDB(&config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:", MaxOpenConns: 10}, "silent")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, model.AutoMigrate(gdb))
	require.NoError(t, gdb.WithContext(context.Background()).Create(&model.Tenant{Name: "ann", PhoneNo: "1"}).Error)

	var n int64
	require.NoError(t, gdb.Model(&model.Tenant{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestNewGormDB_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentlok.db")
	gdb, err := NewGormDB(&config.DBConfig{Driver: config.DriverSQLite, SQLitePath: path, MaxOpenConns: 4}, "warn")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Ping())
}

func TestNewGormDB_UnknownDriver(t *testing.T) {
	_, err := NewGormDB(&config.DBConfig{Driver: "oracle"}, "")
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, LogLevel("silent"))
	assert.Equal(t, gormlogger.Info, LogLevel("INFO"))
	assert.Equal(t, gormlogger.Warn, LogLevel(""))
}
