package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

type BookingRepository interface {
	// Создать новое бронирование.
	Create(ctx context.Context, booking *model.Booking) error
	// Получить бронирование по ID.
	GetByID(ctx context.Context, id model.ID) (*model.Booking, error)
	List(ctx context.Context, activeOnly bool) ([]model.Booking, error)
	Save(ctx context.Context, booking *model.Booking) error
	Deactivate(ctx context.Context, id model.ID) error
	CountAll(ctx context.Context) (int64, error)
	// Есть ли у комнаты другое действующее бронирование (активное, статус active).
	OpenForRoomExcept(ctx context.Context, roomID, exceptID model.ID) (bool, error)
}

type GormBookingRepository struct {
	crud[model.Booking]
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{crud[model.Booking]{db: db, pk: "booking_id"}}
}

func (r *GormBookingRepository) OpenForRoomExcept(ctx context.Context, roomID, exceptID model.ID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("room_id = ? AND booking_id <> ?", roomID, exceptID).
		Where("is_active = ? AND status = ?", true, model.BookingStatusActive).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
