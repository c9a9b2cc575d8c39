package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/rentlok/internal/model"
)

// crud — общая GORM-реализация операций над записью с флагом is_active.
// pk — имя колонки первичного ключа (property_id, room_id, ...).
type crud[T model.Entity] struct {
	db *gorm.DB
	pk string
}

func (r crud[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

// GetByID ищет запись независимо от флага активности.
func (r crud[T]) GetByID(ctx context.Context, id model.ID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, r.pk+" = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r crud[T]) List(ctx context.Context, activeOnly bool) ([]T, error) {
	return r.list(ctx, activeOnly, r.pk+" ASC")
}

func (r crud[T]) list(ctx context.Context, activeOnly bool, order string) ([]T, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	entities := []T{}
	if err := q.Order(order).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Save перезаписывает все колонки записи (семантика полной замены).
func (r crud[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

// Deactivate помечает запись неактивной. Повторный вызов ничего не меняет.
func (r crud[T]) Deactivate(ctx context.Context, id model.ID) error {
	return r.db.WithContext(ctx).
		Model(new(T)).
		Where(r.pk+" = ?", id).
		Update("is_active", false).
		Error
}

func (r crud[T]) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// deactivateChildren гасит активные дочерние записи по внешнему ключу и
// возвращает число реально изменённых строк.
func (r crud[T]) deactivateChildren(ctx context.Context, fkColumn string, parentID model.ID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(new(T)).
		Where(fkColumn+" = ? AND is_active = ?", parentID, true).
		Update("is_active", false)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
