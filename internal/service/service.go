package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/metrics"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/repository"
)

const (
	opCreate     = "create"
	opList       = "list"
	opGet        = "get"
	opUpdate     = "update"
	opDeactivate = "deactivate"
)

// Services — оркестратор жизненного цикла: по одному сервису на тип сущности.
// Каждая изменяющая операция выполняется одной транзакцией.
type Services struct {
	Properties *PropertyService
	Rooms      *RoomService
	Tenants    *TenantService
	Bookings   *BookingService
	Payments   *PaymentService
	Requests   *RequestService
}

// New собирает сервисы. reader используется для чтения вне транзакций,
// tx — для всех изменений.
func New(
	tx repository.TxManager,
	reader *repository.Repositories,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Services {
	if logger == nil {
		logger = slog.Default()
	}
	b := &base{
		tx:      tx,
		repos:   reader,
		metrics: m,
		log:     logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
	return &Services{
		Properties: &PropertyService{base: b},
		Rooms:      &RoomService{base: b},
		Tenants:    &TenantService{base: b},
		Bookings:   &BookingService{base: b},
		Payments:   &PaymentService{base: b},
		Requests:   &RequestService{base: b},
	}
}

// ErrUnknownKind возвращается для вида сущности, которого нет в ядре.
var ErrUnknownKind = errors.New("unknown entity kind")

// Deactivate деактивирует запись указанного вида с каскадом и возвращает
// число погашенных дочерних записей.
func (s *Services) Deactivate(ctx context.Context, kind model.Kind, id model.ID) (int64, error) {
	var (
		affected int64
		err      error
	)
	switch kind {
	case model.KindProperty:
		var res cascade.Result[model.Property]
		res, err = s.Properties.Deactivate(ctx, id)
		affected = res.AffectedCount
	case model.KindRoom:
		_, err = s.Rooms.Deactivate(ctx, id)
	case model.KindTenant:
		_, err = s.Tenants.Deactivate(ctx, id)
	case model.KindBooking:
		var res cascade.Result[model.Booking]
		res, err = s.Bookings.Deactivate(ctx, id)
		affected = res.AffectedCount
	case model.KindPayment:
		_, err = s.Payments.Deactivate(ctx, id)
	case model.KindRequest:
		_, err = s.Requests.Deactivate(ctx, id)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return 0, err
	}
	return affected, nil
}

type base struct {
	tx      repository.TxManager
	repos   *repository.Repositories
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

// observe вызывается через defer с указателем на именованную ошибку операции.
func (b *base) observe(ctx context.Context, kind model.Kind, op string, started time.Time, errp *error) {
	err := *errp
	b.metrics.Observe(kind, op, started, err)
	if err != nil {
		b.log.DebugContext(ctx, "operation failed",
			slog.String("entity", string(kind)),
			slog.String("operation", op),
			slog.String("outcome", metrics.Outcome(err)),
			slog.Any("error", err),
		)
	}
}

// deactivated логирует результат деактивации с каскадом.
func (b *base) deactivated(ctx context.Context, parent, child model.Kind, id model.ID, affected int64) {
	b.metrics.Cascade(parent, child, affected)
	b.log.InfoContext(ctx, "entity deactivated",
		slog.String("entity", string(parent)),
		slog.Uint64("id", uint64(id)),
		slog.String("cascade", string(child)),
		slog.Int64("affected", affected),
	)
}
