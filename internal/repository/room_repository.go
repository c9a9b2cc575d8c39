package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id model.ID) (*model.Room, error)
	List(ctx context.Context, activeOnly bool) ([]model.Room, error)
	Save(ctx context.Context, room *model.Room) error
	Deactivate(ctx context.Context, id model.ID) error
	CountAll(ctx context.Context) (int64, error)
	// Деактивировать все активные комнаты объекта; возвращает число изменённых.
	DeactivateByProperty(ctx context.Context, propertyID model.ID) (int64, error)
	// Условная запись статуса: меняет статус на to, только если текущий входит в from.
	CompareAndSetStatus(ctx context.Context, id model.ID, from []model.OperationalStatus, to model.OperationalStatus) (bool, error)
}

type GormRoomRepository struct {
	crud[model.Room]
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{crud[model.Room]{db: db, pk: "room_id"}}
}

func (r *GormRoomRepository) DeactivateByProperty(ctx context.Context, propertyID model.ID) (int64, error) {
	return r.deactivateChildren(ctx, "property_id", propertyID)
}

func (r *GormRoomRepository) CompareAndSetStatus(
	ctx context.Context,
	id model.ID,
	from []model.OperationalStatus,
	to model.OperationalStatus,
) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}
	tx := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("room_id = ? AND operational_status IN ?", id, from).
		Update("operational_status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
