package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver          string `validate:"required,oneof=postgres sqlite"`
	Host            string `validate:"required_if=Driver postgres"`
	Port            int    `validate:"min=0,max=65535"`
	User            string `validate:"required_if=Driver postgres"`
	Password        string
	Name            string `validate:"required_if=Driver postgres"`
	SSLMode         string `validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	TimeZone        string
	SQLitePath      string `validate:"required_if=Driver sqlite"`
	MaxOpenConns    int    `validate:"min=0"`
	MaxIdleConns    int    `validate:"min=0"`
	ConnMaxLifeTime int    `validate:"min=0"` // минут
}

func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{
		Driver:          getEnv("DB_DRIVER", DriverPostgres),
		Host:            getEnv("DB_HOST", "postgres"),
		User:            getEnv("DB_USER", "rentlok"),
		Password:        getEnv("DB_PASSWORD", "rentlok"),
		Name:            getEnv("DB_NAME", "rentlok_db"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
		SQLitePath:      getEnv("DB_SQLITE_PATH", "rentlok.db"),
		Port:            getEnvInt("DB_PORT", 5432),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid DB config: %w", err)
	}
	return cfg, nil
}

// DSN строка подключения для postgres.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone,
	)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
