package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

func migrate(gormDB *gorm.DB) error {
	if err := model.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gormDB, err := e.open()
			if err != nil {
				return err
			}
			defer closeDB(gormDB, e.logger)

			e.logger.Info("schema migrated", slog.String("driver", e.db.Driver))
			return nil
		},
	}
}
