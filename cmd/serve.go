package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/rentlok/internal/admin"
	"github.com/Leganyst/rentlok/internal/health"
	"github.com/Leganyst/rentlok/internal/metrics"
	"github.com/Leganyst/rentlok/internal/repository"
	"github.com/Leganyst/rentlok/internal/service"
)

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC server (health, reflection) and the admin HTTP server (metrics, health, deactivation)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, e)
		},
	}
}

func serve(ctx context.Context, e *env) error {
	logger := e.logger

	// 1. БД и миграции.
	gormDB, err := e.open()
	if err != nil {
		return err
	}
	defer closeDB(gormDB, logger)

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("sql DB: %w", err)
	}

	// 2. Метрики процесса и пула соединений.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, e.db.Driver),
	)

	// 3. Оркестратор с метриками в том же реестре.
	svc := service.New(
		repository.NewGormTxManager(gormDB),
		repository.NewGormRepositories(gormDB),
		metrics.New(reg),
		logger,
	)

	// 4. gRPC: health + reflection.
	grpcServer := grpc.NewServer()
	healthSrv := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	checker := health.NewChecker(sqlDB, healthSrv, e.app.HealthInterval, logger)
	go checker.Run(ctx)

	lis, err := net.Listen("tcp", e.app.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", e.app.GRPCAddr, err)
	}

	// 5. Служебный HTTP.
	adminSrv := admin.NewServer(e.app.AdminAddr, admin.NewRouter(reg, sqlDB, svc, logger))

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", slog.String("addr", e.app.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()
	go func() {
		logger.Info("admin server listening", slog.String("addr", e.app.AdminAddr))
		if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("admin serve: %w", err)
		}
	}()

	// 6. Грейсфул-шатдаун по сигналу или падению одного из серверов.
	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error("server failed", slog.Any("error", err))
	}

	logger.Info("shutting down")
	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := adminSrv.Shutdown(shutdownCtx); serr != nil {
		logger.Warn("admin shutdown", slog.Any("error", serr))
	}
	grpcServer.GracefulStop()
	return err
}
