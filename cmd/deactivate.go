package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leganyst/rentlok/internal/metrics"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/repository"
	"github.com/Leganyst/rentlok/internal/service"
)

func newDeactivateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "deactivate <property|room|tenant|booking|payment|request> <id>",
		Short:     "Soft-delete a record, applying the cascade rules",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"property", "room", "tenant", "booking", "payment", "request"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("bad id %q: %w", args[1], err)
			}

			gormDB, err := e.open()
			if err != nil {
				return err
			}
			defer closeDB(gormDB, e.logger)

			// одноразовый процесс: метрики считаются, но не экспортируются
			svc := service.New(
				repository.NewGormTxManager(gormDB),
				repository.NewGormRepositories(gormDB),
				metrics.New(nil),
				e.logger,
			)
			affected, err := svc.Deactivate(cmd.Context(), model.Kind(args[0]), model.ID(id))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d deactivated, %d dependent records deactivated\n", args[0], id, affected)
			return nil
		},
	}
}
