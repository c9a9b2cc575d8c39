package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	GetByID(ctx context.Context, id model.ID) (*model.Payment, error)
	List(ctx context.Context, activeOnly bool) ([]model.Payment, error)
	Save(ctx context.Context, payment *model.Payment) error
	Deactivate(ctx context.Context, id model.ID) error
	CountAll(ctx context.Context) (int64, error)
	// Деактивировать все активные платежи бронирования.
	DeactivateByBooking(ctx context.Context, bookingID model.ID) (int64, error)
}

type GormPaymentRepository struct {
	crud[model.Payment]
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{crud[model.Payment]{db: db, pk: "payment_id"}}
}

func (r *GormPaymentRepository) DeactivateByBooking(ctx context.Context, bookingID model.ID) (int64, error) {
	return r.deactivateChildren(ctx, "booking_id", bookingID)
}
