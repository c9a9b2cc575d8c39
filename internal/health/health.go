// Package health переводит состояние хранилища в статус gRPC health-сервиса.
package health

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName имя сервиса ядра в health-протоколе. Пустое имя ("")
// описывает сервер целиком и обновляется вместе с ним.
const ServiceName = "rentlok.core"

// Pinger проверяет доступность хранилища. *sql.DB подходит как есть.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Checker struct {
	store    Pinger
	server   *health.Server
	interval time.Duration
	timeout  time.Duration
	log      *slog.Logger
}

func NewChecker(store Pinger, server *health.Server, interval time.Duration, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &Checker{store: store, server: server, interval: interval, timeout: timeout, log: logger}
}

// Check пингует хранилище один раз и выставляет статус. Возвращает ошибку пинга.
func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.store.PingContext(ctx)
	status := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		c.log.WarnContext(ctx, "store ping failed", slog.Any("error", err))
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	return err
}

// Run проверяет хранилище сразу и затем каждые interval, пока ctx жив.
func (c *Checker) Run(ctx context.Context) {
	_ = c.Check(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.Check(ctx)
		}
	}
}
