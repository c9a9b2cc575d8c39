package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AppConfig настройки процесса: адреса серверов, уровни логов, период проверки здоровья.
type AppConfig struct {
	GRPCAddr       string        `validate:"required,hostname_port"`
	AdminAddr      string        `validate:"required,hostname_port"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	SQLLogLevel    string        `validate:"oneof=silent error warn info"`
	HealthInterval time.Duration `validate:"gt=0"`
}

// LoadDotEnv подхватывает переменные из файлов .env, если они есть.
// Уже заданные переменные окружения не перезаписываются.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := godotenv.Read(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		GRPCAddr:       getEnv("RENTLOK_GRPC_ADDR", ":50051"),
		AdminAddr:      getEnv("RENTLOK_ADMIN_ADDR", ":8081"),
		LogLevel:       getEnv("RENTLOK_LOG_LEVEL", "info"),
		SQLLogLevel:    getEnv("RENTLOK_SQL_LOG_LEVEL", "warn"),
		HealthInterval: getEnvDuration("RENTLOK_HEALTH_INTERVAL", 10*time.Second),
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return cfg, nil
}

func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
