package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/config"
	"github.com/Leganyst/rentlok/internal/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env конфигурация процесса, общая для всех команд.
type env struct {
	app    *config.AppConfig
	db     *config.DBConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		e       env
	)

	root := &cobra.Command{
		Use:           "rentlok",
		Short:         "Rental consistency core: properties, rooms, tenants, bookings, payments, requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// 1. .env, затем конфиг из окружения.
			if err := config.LoadDotEnv(envFile); err != nil {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			app, err := config.LoadAppConfig()
			if err != nil {
				return err
			}
			dbCfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}

			// 2. Логгер.
			e.app, e.db = app, dbCfg
			e.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: app.SlogLevel()}))
			slog.SetDefault(e.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to .env file (ignored if missing)")

	root.AddCommand(
		newServeCmd(&e),
		newMigrateCmd(&e),
		newDeactivateCmd(&e),
	)
	return root
}

// open подключается к БД и прогоняет миграции.
func (e *env) open() (*gorm.DB, error) {
	gormDB, err := db.NewGormDB(e.db, e.app.SQLLogLevel)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	if err := migrate(gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func closeDB(gormDB *gorm.DB, logger *slog.Logger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close db", slog.Any("error", err))
	}
}
