package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories — набор репозиториев, привязанных к одному *gorm.DB
// (соединению или транзакции).
type Repositories struct {
	Properties PropertyRepository
	Rooms      RoomRepository
	Tenants    TenantRepository
	Bookings   BookingRepository
	Payments   PaymentRepository
	Requests   RequestRepository
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Properties: NewGormPropertyRepository(db),
		Rooms:      NewGormRoomRepository(db),
		Tenants:    NewGormTenantRepository(db),
		Bookings:   NewGormBookingRepository(db),
		Payments:   NewGormPaymentRepository(db),
		Requests:   NewGormRequestRepository(db),
	}
}

// TxManager выполняет единицу работы атомарно: либо применяются все
// записи fn, либо ни одной.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(repos *Repositories) error) error
}

type GormTxManager struct {
	db *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) WithinTx(ctx context.Context, fn func(repos *Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormRepositories(tx))
	})
}
